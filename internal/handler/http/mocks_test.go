package http

import (
	"context"

	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/service"
	"github.com/MKhiriev/go-contact-manager/models"
)

type authServiceMock struct {
	registerUserFunc    func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFunc           func(ctx context.Context, creds models.Credentials) (models.User, error)
	seedDefaultUserFunc func(ctx context.Context) error
}

func (m *authServiceMock) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerUserFunc == nil {
		panic("unexpected call to RegisterUser")
	}
	return m.registerUserFunc(ctx, creds)
}

func (m *authServiceMock) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFunc == nil {
		panic("unexpected call to Login")
	}
	return m.loginFunc(ctx, creds)
}

func (m *authServiceMock) SeedDefaultUser(ctx context.Context) error {
	if m.seedDefaultUserFunc == nil {
		panic("unexpected call to SeedDefaultUser")
	}
	return m.seedDefaultUserFunc(ctx)
}

type sessionServiceMock struct {
	createFunc       func(ctx context.Context, user models.User) (models.Session, error)
	getFunc          func(ctx context.Context, token string) (models.Session, error)
	destroyFunc      func(ctx context.Context, token string) error
	purgeExpiredFunc func(ctx context.Context) (int, error)
}

func (m *sessionServiceMock) Create(ctx context.Context, user models.User) (models.Session, error) {
	if m.createFunc == nil {
		panic("unexpected call to Create")
	}
	return m.createFunc(ctx, user)
}

func (m *sessionServiceMock) Get(ctx context.Context, token string) (models.Session, error) {
	if m.getFunc == nil {
		panic("unexpected call to Get")
	}
	return m.getFunc(ctx, token)
}

func (m *sessionServiceMock) Destroy(ctx context.Context, token string) error {
	if m.destroyFunc == nil {
		panic("unexpected call to Destroy")
	}
	return m.destroyFunc(ctx, token)
}

func (m *sessionServiceMock) PurgeExpired(ctx context.Context) (int, error) {
	if m.purgeExpiredFunc == nil {
		panic("unexpected call to PurgeExpired")
	}
	return m.purgeExpiredFunc(ctx)
}

type contactServiceMock struct {
	listFunc           func(ctx context.Context) ([]models.Contact, error)
	getFunc            func(ctx context.Context, id int64) (models.Contact, error)
	createFunc         func(ctx context.Context, input models.ContactInput) (models.Contact, error)
	updateFunc         func(ctx context.Context, id int64, input models.ContactInput) (models.Contact, error)
	deleteFunc         func(ctx context.Context, id int64) error
	geocodeAddressFunc func(ctx context.Context, address string) ([]models.GeocodeResult, error)
}

func (m *contactServiceMock) List(ctx context.Context) ([]models.Contact, error) {
	if m.listFunc == nil {
		panic("unexpected call to List")
	}
	return m.listFunc(ctx)
}

func (m *contactServiceMock) Get(ctx context.Context, id int64) (models.Contact, error) {
	if m.getFunc == nil {
		panic("unexpected call to Get")
	}
	return m.getFunc(ctx, id)
}

func (m *contactServiceMock) Create(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	if m.createFunc == nil {
		panic("unexpected call to Create")
	}
	return m.createFunc(ctx, input)
}

func (m *contactServiceMock) Update(ctx context.Context, id int64, input models.ContactInput) (models.Contact, error) {
	if m.updateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.updateFunc(ctx, id, input)
}

func (m *contactServiceMock) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFunc(ctx, id)
}

func (m *contactServiceMock) GeocodeAddress(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	if m.geocodeAddressFunc == nil {
		panic("unexpected call to GeocodeAddress")
	}
	return m.geocodeAddressFunc(ctx, address)
}

type appInfoServiceMock struct {
	getAppVersionFunc func(ctx context.Context) string
}

func (m *appInfoServiceMock) GetAppVersion(ctx context.Context) string {
	if m.getAppVersionFunc == nil {
		panic("unexpected call to GetAppVersion")
	}
	return m.getAppVersionFunc(ctx)
}

// newTestServices wires the mock implementations into a Services value
// for routing tests.
func newTestServices(auth *authServiceMock, sessions *sessionServiceMock, contacts *contactServiceMock, appInfo *appInfoServiceMock) *service.Services {
	if auth == nil {
		auth = &authServiceMock{}
	}
	if sessions == nil {
		sessions = &sessionServiceMock{}
	}
	if contacts == nil {
		contacts = &contactServiceMock{}
	}
	if appInfo == nil {
		appInfo = &appInfoServiceMock{}
	}

	return &service.Services{
		AuthService:    auth,
		SessionService: sessions,
		ContactService: contacts,
		AppInfoService: appInfo,
	}
}

// newHandlerWithServices builds a Handler over the real embedded
// templates so page tests exercise rendering end to end.
func newHandlerWithServices(services *service.Services) *Handler {
	handler, err := NewHandler(services, logger.Nop())
	if err != nil {
		panic(err)
	}
	return handler
}
