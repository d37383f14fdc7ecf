package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-upload-stager/internal/adapter"
	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/tui"
	"github.com/MKhiriev/go-upload-stager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("upload-stager-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	fetcher, err := adapter.NewFetcher(ctx, cfg.Fetcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create fetchers")
	}
	defer fetcher.Close()

	ui, err := tui.New(*cfg, fetcher, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	files, err := ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}

	for _, f := range files {
		fmt.Printf("%s\t%s\t%d\t%s\n", f.Name, f.MIMEType, f.Size, f.Digest)
	}
}
