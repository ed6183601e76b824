// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the users API.
//
// [UserAdapter] decouples callers (the command-line client) from the
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is], e.g.
// [ErrNotFound] for 404.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserAdapter is a transport-agnostic client of the users API.
type UserAdapter interface {
	// CreateUser sends all five fields and returns the stored user with its
	// new id.
	CreateUser(ctx context.Context, fields models.UserFields) (models.User, error)

	// GetUser returns [ErrNotFound] (wrapped) when the id does not exist.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// UpdateUser sends only the set slots of fields and returns the user
	// after the update.
	UpdateUser(ctx context.Context, id int64, fields models.UserFields) (models.User, error)

	DeleteUser(ctx context.Context, id int64) (models.MessageResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetVersion returns the build version reported by the server.
	GetVersion(ctx context.Context) (string, error)
}
