package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-manager/models"
)

// User queries are static, so they live as plain constants. Contact
// queries are produced with squirrel because the column list is long and
// the update targets every column of one row.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash;`

	findUserByUsername = `SELECT id, username, password_hash
    FROM users
    WHERE username = $1;`
)

// contactColumns is the canonical column order shared by every contact
// query and by the row-scanning helpers.
var contactColumns = []string{
	"id",
	"first_name",
	"last_name",
	"address",
	"phone",
	"email",
	"title",
	"contact_by_mail",
	"contact_by_phone",
	"contact_by_email",
	"latitude",
	"longitude",
}

// psql builds queries with $N placeholders, which both pgx and the
// go-sqlite3 driver accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListContactsQuery() (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From("contacts").
		OrderBy("id").
		ToSql()
}

func buildGetContactQuery(id int64) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateContactQuery(rec contactRecord) (string, []any, error) {
	return psql.
		Insert("contacts").
		Columns(contactColumns[1:]...).
		Values(
			rec.FirstName,
			rec.LastName,
			rec.Address,
			rec.Phone,
			rec.Email,
			rec.Title,
			rec.ContactByMail,
			rec.ContactByPhone,
			rec.ContactByEmail,
			rec.Latitude,
			rec.Longitude,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateContactQuery(rec contactRecord) (string, []any, error) {
	return psql.
		Update("contacts").
		SetMap(map[string]any{
			"first_name":       rec.FirstName,
			"last_name":        rec.LastName,
			"address":          rec.Address,
			"phone":            rec.Phone,
			"email":            rec.Email,
			"title":            rec.Title,
			"contact_by_mail":  rec.ContactByMail,
			"contact_by_phone": rec.ContactByPhone,
			"contact_by_email": rec.ContactByEmail,
			"latitude":         rec.Latitude,
			"longitude":        rec.Longitude,
		}).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
}

func buildDeleteContactQuery(id int64) (string, []any, error) {
	return psql.
		Delete("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// contactRecord is the storage-boundary shape of a contact row. The
// preference flags are INTEGER 0/1 columns; translation to native bools
// happens only here.
type contactRecord struct {
	ID             int64
	FirstName      string
	LastName       string
	Address        string
	Phone          string
	Email          string
	Title          string
	ContactByMail  int64
	ContactByPhone int64
	ContactByEmail int64
	Latitude       float64
	Longitude      float64
}

func recordFromContact(c models.Contact) contactRecord {
	return contactRecord{
		ID:             c.ContactID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		Title:          c.Title,
		ContactByMail:  boolToInt(c.ContactByMail),
		ContactByPhone: boolToInt(c.ContactByPhone),
		ContactByEmail: boolToInt(c.ContactByEmail),
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
	}
}

func (rec contactRecord) toContact() models.Contact {
	return models.Contact{
		ContactID:      rec.ID,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		Address:        rec.Address,
		Phone:          rec.Phone,
		Email:          rec.Email,
		Title:          rec.Title,
		ContactByMail:  rec.ContactByMail != 0,
		ContactByPhone: rec.ContactByPhone != 0,
		ContactByEmail: rec.ContactByEmail != 0,
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
