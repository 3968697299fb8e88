package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-manager/models"
)

// Hand-rolled function mocks: each field defaults to a panic so a test
// that triggers an unexpected call fails loudly.

type userRepositoryMock struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFunc == nil {
		panic("unexpected call to CreateUser")
	}
	return m.createUserFunc(ctx, user)
}

func (m *userRepositoryMock) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFunc == nil {
		panic("unexpected call to FindUserByUsername")
	}
	return m.findUserByUsernameFunc(ctx, username)
}

type contactRepositoryMock struct {
	listContactsFunc  func(ctx context.Context) ([]models.Contact, error)
	getContactFunc    func(ctx context.Context, id int64) (models.Contact, error)
	createContactFunc func(ctx context.Context, contact models.Contact) (models.Contact, error)
	updateContactFunc func(ctx context.Context, contact models.Contact) error
	deleteContactFunc func(ctx context.Context, id int64) error
}

func (m *contactRepositoryMock) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if m.listContactsFunc == nil {
		panic("unexpected call to ListContacts")
	}
	return m.listContactsFunc(ctx)
}

func (m *contactRepositoryMock) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	if m.getContactFunc == nil {
		panic("unexpected call to GetContact")
	}
	return m.getContactFunc(ctx, id)
}

func (m *contactRepositoryMock) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.createContactFunc == nil {
		panic("unexpected call to CreateContact")
	}
	return m.createContactFunc(ctx, contact)
}

func (m *contactRepositoryMock) UpdateContact(ctx context.Context, contact models.Contact) error {
	if m.updateContactFunc == nil {
		panic("unexpected call to UpdateContact")
	}
	return m.updateContactFunc(ctx, contact)
}

func (m *contactRepositoryMock) DeleteContact(ctx context.Context, id int64) error {
	if m.deleteContactFunc == nil {
		panic("unexpected call to DeleteContact")
	}
	return m.deleteContactFunc(ctx, id)
}

type sessionStoreMock struct {
	saveSessionFunc           func(ctx context.Context, session models.Session) error
	getSessionFunc            func(ctx context.Context, token string) (models.Session, error)
	deleteSessionFunc         func(ctx context.Context, token string) error
	deleteExpiredSessionsFunc func(ctx context.Context, now time.Time) (int, error)
}

func (m *sessionStoreMock) SaveSession(ctx context.Context, session models.Session) error {
	if m.saveSessionFunc == nil {
		panic("unexpected call to SaveSession")
	}
	return m.saveSessionFunc(ctx, session)
}

func (m *sessionStoreMock) GetSession(ctx context.Context, token string) (models.Session, error) {
	if m.getSessionFunc == nil {
		panic("unexpected call to GetSession")
	}
	return m.getSessionFunc(ctx, token)
}

func (m *sessionStoreMock) DeleteSession(ctx context.Context, token string) error {
	if m.deleteSessionFunc == nil {
		panic("unexpected call to DeleteSession")
	}
	return m.deleteSessionFunc(ctx, token)
}

func (m *sessionStoreMock) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	if m.deleteExpiredSessionsFunc == nil {
		panic("unexpected call to DeleteExpiredSessions")
	}
	return m.deleteExpiredSessionsFunc(ctx, now)
}

func (m *sessionStoreMock) Close() error { return nil }

type geocoderMock struct {
	geocodeFunc func(ctx context.Context, address string) ([]models.GeocodeResult, error)
}

func (m *geocoderMock) Geocode(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	if m.geocodeFunc == nil {
		panic("unexpected call to Geocode")
	}
	return m.geocodeFunc(ctx, address)
}
