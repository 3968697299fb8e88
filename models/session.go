package models

import "time"

// Session is the server-side record behind a visitor's session cookie.
// It holds the authenticated identity, if any, and is persisted in the
// session key/value store until logout or expiry.
type Session struct {
	// Token is the opaque session identifier stored in the visitor's
	// cookie. It is a UUID and carries no embedded claims.
	Token string `json:"token"`

	// UserID is the authenticated user's identifier.
	UserID int64 `json:"user_id"`

	// Username is the authenticated user's login, kept alongside the ID
	// so pages can greet the user without a second lookup.
	Username string `json:"username"`

	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the session stops being accepted. Expired
	// sessions are removed lazily on access and eagerly by the sweeper.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
