package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/utils"
	"github.com/MKhiriev/go-contact-manager/models"
)

// sessionService is the concrete implementation of SessionService. It
// issues UUID tokens and delegates persistence to the session store.
type sessionService struct {
	sessions store.SessionStore
	uuidGen  *utils.UUIDGenerator

	// ttl controls how long a newly created session remains valid.
	ttl time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService backed by the given
// session store with the TTL from cfg.
func NewSessionService(sessions store.SessionStore, cfg config.Sessions, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		uuidGen:  utils.NewUUIDGenerator(),
		ttl:      cfg.TTL,
		logger:   logger,
	}
}

// Create establishes a new session for user: a fresh UUID token with the
// configured TTL, persisted before it is returned.
func (s *sessionService) Create(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	session := models.Session{
		Token:     s.uuidGen.Generate(),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error creating session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	return session, nil
}

// Get returns the live session stored under token.
// Missing tokens yield store.ErrSessionNotFound and expired ones
// store.ErrSessionExpired, both unwrapped so callers can match them.
func (s *sessionService) Get(ctx context.Context, token string) (models.Session, error) {
	return s.sessions.GetSession(ctx, token)
}

// Destroy removes the session. Destroying an absent token succeeds, so
// logout never fails on a stale cookie.
func (s *sessionService) Destroy(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("error destroying session")
		return fmt.Errorf("error destroying session: %w", err)
	}

	return nil
}

// PurgeExpired removes all expired sessions and reports the count.
func (s *sessionService) PurgeExpired(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpiredSessions(ctx, time.Now())
}
