package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// getServerVersion answers GET /version with the plain build version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getServerVersion").Msg("write version response")
	}
}
