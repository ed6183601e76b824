package handler

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/handler/http"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
)

// Handlers groups the transports of the users API. HTTP is the only one.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http handlers")
	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
