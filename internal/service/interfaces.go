package service

import (
	"context"

	"github.com/MKhiriev/go-contact-manager/models"
)

// AuthService owns user registration and credential verification.
type AuthService interface {
	// RegisterUser validates creds, hashes the password, and persists a
	// new account. A taken username yields store.ErrUsernameAlreadyExists.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies creds against the stored bcrypt hash. A missing
	// account yields store.ErrUserNotFound; a bad password ErrWrongPassword.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// SeedDefaultUser creates the boot-time default account when absent.
	// An already-existing account is not an error.
	SeedDefaultUser(ctx context.Context) error
}

// SessionService owns the session lifecycle on top of the session store.
type SessionService interface {
	// Create establishes a new session for user and returns it with a
	// fresh token and the configured TTL applied.
	Create(ctx context.Context, user models.User) (models.Session, error)

	// Get returns the live session stored under token. Missing and
	// expired tokens surface the store's sentinel errors.
	Get(ctx context.Context, token string) (models.Session, error)

	// Destroy removes the session. Destroying an absent token succeeds.
	Destroy(ctx context.Context, token string) error

	// PurgeExpired removes all expired sessions and reports the count.
	PurgeExpired(ctx context.Context) (int, error)
}

// ContactService owns the contact lifecycle including best-effort
// geocoding of addresses.
type ContactService interface {
	// List returns all contacts ordered by id.
	List(ctx context.Context) ([]models.Contact, error)

	// Get returns one contact or store.ErrContactNotFound.
	Get(ctx context.Context, id int64) (models.Contact, error)

	// Create persists a new contact. A non-empty address is geocoded
	// best-effort: provider failure or no match degrades to the sentinel
	// (0,0) coordinates and the original address text, never aborting
	// the write.
	Create(ctx context.Context, input models.ContactInput) (models.Contact, error)

	// Update overwrites the contact stored under id. The address is
	// re-geocoded only when its trimmed text differs from the stored
	// value; an unchanged address keeps the stored coordinates, a failed
	// re-geocode keeps the previous coordinates, and a cleared address
	// resets to (0,0) with empty text.
	Update(ctx context.Context, id int64, input models.ContactInput) (models.Contact, error)

	// Delete removes the contact or returns store.ErrContactNotFound.
	Delete(ctx context.Context, id int64) error

	// GeocodeAddress resolves a free-form address for the geocode proxy
	// endpoint without touching any stored contact.
	GeocodeAddress(ctx context.Context, address string) ([]models.GeocodeResult, error)
}

// AppInfoService exposes build/runtime information for the health
// endpoint.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService // returns a decorated ContactService applying additional behavior
}
