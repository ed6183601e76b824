package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:                 http.StatusBadRequest,
	errInvalidUserID:               http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrUnsupportedDSN:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the message sent to the client. Storage details
// never leave the server.
func detailFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusNotFound:
		return app.MsgUserNotFound
	default:
		return http.StatusText(status)
	}
}
