// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// The users API only checks presence: a create request must carry every
// writable field of a user, while an update may carry any subset. Values
// themselves (email format, CPF checksum) are never inspected.
package validators

import "context"

// Validator checks obj and returns the first violation found.
//
// When fields is empty every known field of obj is checked; otherwise only
// the named fields are, in the given order.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
