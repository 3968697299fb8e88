package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
)

// Storages aggregates every persistence backend the application needs:
// SQL repositories for users and contacts plus the bbolt session store.
type Storages struct {
	UserRepository
	ContactRepository
	Sessions SessionStore

	db *DB
}

// NewStorages connects to the relational backend selected by the DSN
// (PostgreSQL for "postgres://" DSNs, embedded SQLite otherwise), runs
// schema migrations, opens the session store, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting to database")
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error running migrations")
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	sessions, err := NewBoltSessionStore(cfg.Sessions, log)
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error opening session store")
		return nil, fmt.Errorf("error opening session store: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ContactRepository: NewContactRepository(db, log),
		Sessions:          sessions,
		db:                db,
	}, nil
}

// Close releases the SQL connection pool and the session database file.
func (s *Storages) Close() error {
	var errs []error
	if err := s.Sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing session store: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing database: %w", err))
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
