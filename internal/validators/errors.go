package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName    = errors.New("first name is required")
	ErrEmptyLastName     = errors.New("last name is required")
	ErrUsernameTooShort  = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrEmptyAddress      = errors.New("address is required")
	ErrInvalidContactID  = errors.New("invalid contact ID")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)
