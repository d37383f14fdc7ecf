package service

import (
	"fmt"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
)

type Services struct {
	StagingService StagingService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, fetcher staging.Fetcher, logger *logger.Logger) (*Services, error) {
	stagingService, err := NewStagingService(cfg, fetcher, utils.NewUUIDGenerator(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating staging service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		StagingService: NewStagingLoggingService().Wrap(stagingService),
		AppInfoService: appInfoService,
	}, nil
}
