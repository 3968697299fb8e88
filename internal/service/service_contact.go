package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-manager/internal/adapter"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/models"
)

// contactService is the concrete implementation of ContactService. It
// combines the contact repository with the geocoding adapter: writes that
// carry an address trigger a best-effort geocode, and geocoding problems
// degrade to the (0,0) sentinel instead of failing the write.
type contactService struct {
	contactRepository store.ContactRepository
	geocoder          adapter.Geocoder

	logger *logger.Logger
}

// NewContactService constructs a ContactService backed by the given
// repository and geocoder.
func NewContactService(contactRepository store.ContactRepository, geocoder adapter.Geocoder, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		geocoder:          geocoder,
		logger:            logger,
	}
}

// List implements ContactService.
func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepository.ListContacts(ctx)
}

// Get implements ContactService.
func (s *contactService) Get(ctx context.Context, id int64) (models.Contact, error) {
	return s.contactRepository.GetContact(ctx, id)
}

// Create implements ContactService. A non-empty address is geocoded; on
// success the provider's coordinates and normalized address text replace
// the user's input, on failure or no match the original text is kept with
// the (0,0) sentinel.
func (s *contactService) Create(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact := contactFromInput(input)
	if contact.Address != "" {
		contact.Address, contact.Latitude, contact.Longitude = s.resolveAddress(ctx, contact.Address, 0, 0)
	}

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

// Update implements ContactService. The stored record is fetched first so
// the address-change check and the not-found case happen before any
// geocoding:
//   - unchanged trimmed address → stored coordinates kept (no provider call);
//   - changed non-empty address → re-geocode, failure keeps the previous
//     coordinates with the new text;
//   - cleared address → (0,0) and empty text.
func (s *contactService) Update(ctx context.Context, id int64, input models.ContactInput) (models.Contact, error) {
	log := logger.FromContext(ctx)

	existing, err := s.contactRepository.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	contact := contactFromInput(input)
	contact.ContactID = id

	switch {
	case contact.Address == "":
		contact.Latitude, contact.Longitude = 0, 0
	case contact.Address == existing.Address:
		contact.Latitude, contact.Longitude = existing.Latitude, existing.Longitude
	default:
		contact.Address, contact.Latitude, contact.Longitude = s.resolveAddress(ctx, contact.Address, existing.Latitude, existing.Longitude)
	}

	if err := s.contactRepository.UpdateContact(ctx, contact); err != nil {
		log.Err(err).Int64("id", id).Msg("contact update ended with error")
		return models.Contact{}, err
	}

	return contact, nil
}

// Delete implements ContactService.
func (s *contactService) Delete(ctx context.Context, id int64) error {
	return s.contactRepository.DeleteContact(ctx, id)
}

// GeocodeAddress implements ContactService. Unlike the write paths this
// surfaces provider errors to the caller, because the geocode endpoint
// has no record to degrade to.
func (s *contactService) GeocodeAddress(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	return s.geocoder.Geocode(ctx, address)
}

// resolveAddress geocodes address and returns the text and coordinates to
// store. On a successful match the provider's normalized text and
// coordinates win; on provider failure or zero matches the original text
// is kept with the fallback coordinates.
func (s *contactService) resolveAddress(ctx context.Context, address string, fallbackLat, fallbackLon float64) (string, float64, float64) {
	log := logger.FromContext(ctx)

	results, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Err(err).Str("address", address).Msg("geocoding failed, storing address as-is")
		return address, fallbackLat, fallbackLon
	}
	if len(results) == 0 {
		log.Warn().Str("address", address).Msg("address did not geocode, storing as-is")
		return address, fallbackLat, fallbackLon
	}

	best := results[0]
	if best.FormattedAddress != "" {
		address = best.FormattedAddress
	}
	return address, best.Latitude, best.Longitude
}

// contactFromInput converts the boundary form payload to a domain record,
// trimming the name and address fields.
func contactFromInput(input models.ContactInput) models.Contact {
	return models.Contact{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Address:        strings.TrimSpace(input.Address),
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		Title:          strings.TrimSpace(input.Title),
		ContactByMail:  input.ContactByMail,
		ContactByPhone: input.ContactByPhone,
		ContactByEmail: input.ContactByEmail,
	}
}
