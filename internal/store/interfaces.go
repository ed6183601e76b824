package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for [models.User] rows.
//
// Every method returns [ErrUserNotFound] (possibly wrapped) when the
// requested id has no row; any other error is a storage failure.
type UserRepository interface {
	// CreateUser inserts user (its ID is ignored) and returns the stored
	// record with the ID assigned by the database.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID performs a primary-key lookup.
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUser merges update.Fields into the stored row inside a single
	// transaction and returns the record after the update.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the row with the given id.
	DeleteUser(ctx context.Context, id int64) error

	// ListUsers returns every row in storage-native order. The result is
	// never nil.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ErrorClassificator decides whether a failed database operation could
// succeed if attempted again. It is used for diagnostics only; the service
// never retries.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
