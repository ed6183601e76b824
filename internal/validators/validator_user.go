package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/models"
)

// Field name constants used to restrict validation to a subset of the user
// fields. They match the JSON keys of [models.User].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldCPF      = "cpf"
	FieldNumber   = "number"
)

// userFields is the default field set, in the order the errors are reported.
var userFields = []string{FieldName, FieldEmail, FieldPassword, FieldCPF, FieldNumber}

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks presence of the requested fields (all of them when none are
// given). Only presence is checked: empty strings are valid values.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserFields:
		return v.validateUserFields(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserFields(ctx context.Context, data models.UserFields, fields ...string) error {
	if len(fields) == 0 {
		fields = userFields
	}

	for _, f := range fields {
		var slot *string
		switch f {
		case FieldName:
			slot = data.Name
		case FieldEmail:
			slot = data.Email
		case FieldPassword:
			slot = data.Password
		case FieldCPF:
			slot = data.CPF
		case FieldNumber:
			slot = data.Number
		default:
			return ErrUnknownField
		}

		if slot == nil {
			return fmt.Errorf("%s %w", f, ErrFieldRequired)
		}
	}

	return nil
}
