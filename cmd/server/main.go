package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-upload-stager/internal/adapter"
	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/handler"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/server"
	"github.com/MKhiriev/go-upload-stager/internal/service"
	"github.com/MKhiriev/go-upload-stager/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("upload-stager-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	fetcher, err := adapter.NewFetcher(context.Background(), cfg.Fetcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fetchers")
	}
	defer fetcher.Close()

	services, err := service.NewServices(*cfg, fetcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewSessionJanitor(services.StagingService, cfg.Workers.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
