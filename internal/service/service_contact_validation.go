package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-manager/internal/validators"
	"github.com/MKhiriev/go-contact-manager/models"
)

// ContactValidationService decorates a ContactService with boundary
// validation so invalid form payloads never reach geocoding or storage.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

// NewContactValidationService constructs the validating decorator. The
// wrapped service is supplied later via Wrap.
func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

// List implements ContactService by delegating to the wrapped service.
func (v *ContactValidationService) List(ctx context.Context) ([]models.Contact, error) {
	return v.inner.List(ctx)
}

// Get implements ContactService by delegating to the wrapped service.
func (v *ContactValidationService) Get(ctx context.Context, id int64) (models.Contact, error) {
	return v.inner.Get(ctx, id)
}

// Create implements ContactService. The form payload is validated before
// the wrapped service runs.
func (v *ContactValidationService) Create(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, input)
}

// Update implements ContactService. The form payload is validated before
// the wrapped service runs.
func (v *ContactValidationService) Update(ctx context.Context, id int64, input models.ContactInput) (models.Contact, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, input)
}

// Delete implements ContactService by delegating to the wrapped service.
func (v *ContactValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

// GeocodeAddress implements ContactService by delegating to the wrapped
// service.
func (v *ContactValidationService) GeocodeAddress(ctx context.Context, address string) ([]models.GeocodeResult, error) {
	return v.inner.GeocodeAddress(ctx, address)
}

// Wrap implements ContactServiceWrapper.
func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}
