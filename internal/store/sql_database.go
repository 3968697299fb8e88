package store

import (
	"database/sql"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/migrations"
)

// DB wraps the database/sql connection together with the dialect it was
// opened for and a matching driver-error classifier. Repositories embed it
// so the same SQL code can run against PostgreSQL or embedded SQLite.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date using the embedded migrations for
// the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the dialect this connection was opened for, one of
// [migrations.DialectPostgres] or [migrations.DialectSQLite].
func (db *DB) Dialect() string {
	return db.dialect
}
