package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// appInfoService serves the build version of the running users API.
type appInfoService struct {
	version string
}

// NewAppInfoService requires a non-empty version: main fills it from the
// build info when the configuration does not set one.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("func", "appInfoService.GetAppVersion").Msg("version requested")
	return s.version
}
