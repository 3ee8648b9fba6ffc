package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/handler"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/server"
	"github.com/MKhiriev/campus-coffee/internal/service"
	"github.com/MKhiriev/campus-coffee/internal/store"
	"github.com/MKhiriev/campus-coffee/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("campus-coffee-server")
	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("rate_limit", cfg.Server.RateLimit).
		Bool("migrate", cfg.Storage.DB.Migrate).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
