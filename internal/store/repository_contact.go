package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// ListContacts returns every contact ordered by id.
func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		rec, err := scanContactRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, rec.toContact())
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// GetContact returns the contact stored under id or [ErrContactNotFound].
func (r *contactRepository) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetContactQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanContactRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.GetContact").Int64("id", id).Msg("error scanning row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec.toContact(), nil
}

// CreateContact persists a new contact and returns it with the
// storage-assigned id.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	rec := recordFromContact(contact)
	query, args, err := buildCreateContactQuery(rec)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&contact.ContactID); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error executing insert")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return contact, nil
}

// UpdateContact overwrites every column of the addressed row. Zero rows
// affected means the id does not exist → [ErrContactNotFound].
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	rec := recordFromContact(contact)
	query, args, err := buildUpdateContactQuery(rec)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Int64("id", contact.ContactID).Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// DeleteContact removes the addressed row. Zero rows affected means the
// id does not exist → [ErrContactNotFound], never a silent success.
func (r *contactRepository) DeleteContact(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Int64("id", id).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactRecord(row rowScanner) (contactRecord, error) {
	var rec contactRecord
	err := row.Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Address,
		&rec.Phone,
		&rec.Email,
		&rec.Title,
		&rec.ContactByMail,
		&rec.ContactByPhone,
		&rec.ContactByEmail,
		&rec.Latitude,
		&rec.Longitude,
	)
	return rec, err
}
