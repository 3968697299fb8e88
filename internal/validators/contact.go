package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contact-manager/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldFirstName targets the required first-name field of a contact.
	FieldFirstName = "first_name"

	// FieldLastName targets the required last-name field of a contact.
	FieldLastName = "last_name"

	// FieldCoordinates targets the latitude/longitude pair of a stored contact.
	FieldCoordinates = "coordinates"

	// FieldContactID targets the storage-assigned contact identifier.
	FieldContactID = "contact_id"

	// FieldUsername targets the username of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the raw password of a credentials pair.
	FieldPassword = "password"
)

// Minimum lengths enforced on signup. The username minimum is measured
// after trimming; the password is taken as-is.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// ContactValidator implements the Validator interface for the
// contact-management domain models: ContactInput, Contact, and
// Credentials.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ContactValidator struct {
}

// NewContactValidator constructs a new ContactValidator
// and returns it as the Validator interface.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.ContactInput / *models.ContactInput
//   - models.Contact / *models.Contact
//   - models.Credentials / *models.Credentials
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactInput:
		return v.validateContactInput(ctx, value, fields...)
	case *models.ContactInput:
		return v.validateContactInput(ctx, *value, fields...)

	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateContactInput validates the boundary form payload of a contact.
//
// Default validated fields (when none specified): FirstName, LastName.
// Names are required non-empty after trimming; every other contact field
// is optional.
func (v *ContactValidator) validateContactInput(ctx context.Context, input models.ContactInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(input.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(input.LastName) == "" {
				return ErrEmptyLastName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContact validates a stored contact record.
//
// Default validated fields: ContactID, FirstName, LastName, Coordinates.
func (v *ContactValidator) validateContact(ctx context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContactID, FieldFirstName, FieldLastName, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldContactID:
			if contact.ContactID <= 0 {
				return ErrInvalidContactID
			}
		case FieldFirstName:
			if strings.TrimSpace(contact.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(contact.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldCoordinates:
			if contact.Latitude < -90 || contact.Latitude > 90 ||
				contact.Longitude < -180 || contact.Longitude > 180 {
				return ErrInvalidCoordinate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials validates a raw username/password pair.
//
// Default validated fields: Username, Password. The username minimum is
// checked after trimming surrounding whitespace.
func (v *ContactValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if len(strings.TrimSpace(creds.Username)) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldPassword:
			if len(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
