package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrFieldRequired is wrapped together with the name of the missing field,
	// e.g. "email is required".
	ErrFieldRequired = errors.New("is required")
)
