package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// UserValidationService checks the create input before it reaches storage.
// The remaining operations accept any input and are passed through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, fields models.UserFields) (models.User, error) {
	// all five fields must be present, empty strings are fine
	err := v.validator.Validate(ctx, fields,
		validators.FieldName,
		validators.FieldEmail,
		validators.FieldPassword,
		validators.FieldCPF,
		validators.FieldNumber,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, fields)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return v.inner.UpdateUser(ctx, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
