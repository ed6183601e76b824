package http

import (
	"errors"

	"github.com/MKhiriev/go-users-api/internal/app"
)

// Request decoding errors. Both are reported to the client as 400.
var (
	errInvalidJSON   = errors.New(app.MsgInvalidJSON)
	errInvalidUserID = errors.New(app.MsgInvalidUserID)
)

// errTrailingData is only logged; the client sees errInvalidJSON.
var errTrailingData = errors.New("unexpected data after JSON object")
