package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService is the business layer between the HTTP handlers and
// [store.UserRepository]. Errors from the store are returned unchanged so that
// the handlers can match them with errors.Is.
type UserService interface {
	// CreateUser stores a new user. Every slot of fields must be set,
	// otherwise an error wrapping ErrInvalidDataProvided is returned.
	CreateUser(ctx context.Context, fields models.UserFields) (models.User, error)

	GetUser(ctx context.Context, id int64) (models.User, error)

	// UpdateUser merges update.Fields into the stored user; any subset of
	// fields is accepted.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
