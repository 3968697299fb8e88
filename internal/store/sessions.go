package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/models"
)

// sessionsBucket is the single bbolt bucket holding all session records,
// keyed by token.
var sessionsBucket = []byte("sessions")

// boltSessionStore is the bbolt-backed implementation of [SessionStore].
// Each session is stored as a JSON document under its token, so sessions
// survive process restarts and logout can destroy them explicitly.
type boltSessionStore struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltSessionStore opens (creating if necessary) the bbolt session
// database file at cfg.Path and ensures the sessions bucket exists.
func NewBoltSessionStore(cfg config.Sessions, log *logger.Logger) (SessionStore, error) {
	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSessionStore").Str("path", cfg.Path).Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "NewBoltSessionStore").Msg("error creating sessions bucket")
		return nil, fmt.Errorf("error creating sessions bucket: %w", err)
	}

	log.Debug().Str("func", "NewBoltSessionStore").Str("path", cfg.Path).Msg("session store opened")
	return &boltSessionStore{db: db, logger: log}, nil
}

// SaveSession persists the session under its token.
func (s *boltSessionStore) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		log.Err(err).Str("func", "*boltSessionStore.SaveSession").Msg("error marshalling session")
		return fmt.Errorf("error marshalling session: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(session.Token), payload)
	})
	if err != nil {
		log.Err(err).Str("func", "*boltSessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// GetSession returns the session stored under token. An expired session is
// deleted on access and reported as [ErrSessionExpired].
func (s *boltSessionStore) GetSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		payload := tx.Bucket(sessionsBucket).Get([]byte(token))
		if payload == nil {
			return ErrSessionNotFound
		}
		return json.Unmarshal(payload, &session)
	})
	if err != nil {
		if err == ErrSessionNotFound {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*boltSessionStore.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	if session.Expired(time.Now()) {
		// lazy expiry: remove the stale record right away
		if err := s.DeleteSession(ctx, token); err != nil {
			log.Err(err).Str("func", "*boltSessionStore.GetSession").Msg("error removing expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

// DeleteSession destroys the session. Deleting an absent token is a no-op.
func (s *boltSessionStore) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(token))
	})
	if err != nil {
		log.Err(err).Str("func", "*boltSessionStore.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry is before now
// and reports how many were removed.
func (s *boltSessionStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket)
		cursor := bucket.Cursor()

		var expired [][]byte
		for key, payload := cursor.First(); key != nil; key, payload = cursor.Next() {
			var session models.Session
			if err := json.Unmarshal(payload, &session); err != nil {
				// unreadable record: treat as garbage and drop it
				expired = append(expired, append([]byte(nil), key...))
				continue
			}
			if session.Expired(now) {
				expired = append(expired, append([]byte(nil), key...))
			}
		}

		for _, key := range expired {
			if err := bucket.Delete(key); err != nil {
				return err
			}
			removed++
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*boltSessionStore.DeleteExpiredSessions").Msg("error purging sessions")
		return removed, fmt.Errorf("error purging sessions: %w", err)
	}

	return removed, nil
}

// Close releases the underlying database file.
func (s *boltSessionStore) Close() error {
	return s.db.Close()
}
