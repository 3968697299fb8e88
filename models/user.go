package models

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the storage layer on creation.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// It is trimmed of surrounding whitespace before storage.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the boundary representation of a login or signup form:
// a raw username and password pair, validated before any hashing or
// lookup happens.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
