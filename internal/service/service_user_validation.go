package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-coffee/internal/validators"
	"github.com/MKhiriev/campus-coffee/models"
)

// UserValidationService rejects malformed upsert requests and login names
// before they reach the wrapped UserService. Every other call passes straight
// through.
//
// Identifiers and login names that no stored user can carry (id <= 0, a
// login name with whitespace or over 255 chars) are reported as NotFound,
// the same as any other missing record. Only an empty login name and an
// invalid profile are ErrInvalidDataProvided.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Clear(ctx context.Context) error {
	return v.inner.Clear(ctx)
}

func (v *UserValidationService) GetAll(ctx context.Context) ([]models.User, error) {
	return v.inner.GetAll(ctx)
}

func (v *UserValidationService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *UserValidationService) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	if loginName == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidLoginName)
	}
	if err := v.validator.Validate(ctx, loginName); err != nil {
		return models.User{}, userNotFoundByLoginName(loginName)
	}

	return v.inner.GetByLoginName(ctx, loginName)
}

func (v *UserValidationService) Upsert(ctx context.Context, request models.UpsertRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldProfile); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if id, existing := request.ID(); existing && id <= 0 {
		return models.User{}, userNotFoundByID(id)
	}

	return v.inner.Upsert(ctx, request)
}

func (v *UserValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
