package main

import (
	"context"
	"flag"
	"os"

	"github.com/MKhiriev/campus-coffee/internal/adapter"
	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("campus-coffee-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	users, err := adapter.NewHTTPUserClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	cli := &commandLine{
		users:     users,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		out:       os.Stdout,
	}
	if err = cli.run(context.Background(), flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
