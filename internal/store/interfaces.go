// Package store implements the persistence layer: SQL-backed user and
// contact repositories (PostgreSQL or embedded SQLite) and a bbolt-backed
// session key/value store.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-manager/models"
)

// UserRepository owns user identity records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// storage-assigned UserID. A duplicate username yields
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername performs a case-sensitive exact-match lookup.
	// A missing user yields [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ContactRepository owns contact records and their geocoded coordinates.
type ContactRepository interface {
	// ListContacts returns all contacts ordered by id. No pagination.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// GetContact returns one contact or [ErrContactNotFound].
	GetContact(ctx context.Context, id int64) (models.Contact, error)

	// CreateContact persists a new contact and returns it with the
	// storage-assigned ContactID.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// UpdateContact overwrites every column of the record identified by
	// contact.ContactID, or returns [ErrContactNotFound].
	UpdateContact(ctx context.Context, contact models.Contact) error

	// DeleteContact removes the record or returns [ErrContactNotFound];
	// deleting a missing id is never a silent success.
	DeleteContact(ctx context.Context, id int64) error
}

// SessionStore is the per-visitor persisted key/value store behind the
// session cookie. Sessions survive process restarts and support explicit
// destruction.
type SessionStore interface {
	// SaveSession persists the session under its token.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the session stored under token.
	// A missing token yields [ErrSessionNotFound]; an expired session is
	// removed and yields [ErrSessionExpired].
	GetSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession destroys the session. Deleting an absent token is a
	// no-op: logout must always succeed.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes every session whose expiry is before
	// now and reports how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)

	// Close releases the underlying database file.
	Close() error
}

// ErrorClassificator inspects driver-level errors so repositories can
// react without knowing which SQL backend is in use.
type ErrorClassificator interface {
	// Classify reports whether a failed operation is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint
	// violation (e.g. a duplicate username).
	IsUniqueViolation(err error) bool
}
