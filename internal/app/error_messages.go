// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users API handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording identical between the server and the
// tests of its clients.
package app

const (
	// MsgUserNotFound is returned when no row matches the requested id.
	MsgUserNotFound = "User not found"

	// MsgInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidUserID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidUserID = "user id must be an integer"

	// MsgInvalidGzip is returned when a body sent with
	// "Content-Encoding: gzip" cannot be decompressed.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgUserDeleted acknowledges a successful delete.
	MsgUserDeleted = "User deleted successfully"
)
