package service

import (
	"github.com/MKhiriev/go-contact-manager/internal/adapter"
	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/store"
)

// Services aggregates all business-logic services consumed by the
// handler and worker layers.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires the services to the storages and the geocoding
// adapter. The contact service is wrapped with boundary validation.
func NewServices(storages *store.Storages, geocoder adapter.Geocoder, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	contactService := NewContactValidationService().
		Wrap(NewContactService(storages.ContactRepository, geocoder, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SessionService: NewSessionService(storages.Sessions, cfg.Storage.Sessions, logger),
		ContactService: contactService,
		AppInfoService: appInfoService,
	}, nil
}
