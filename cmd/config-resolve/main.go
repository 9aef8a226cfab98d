package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-layered-config/internal/config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
	"github.com/MKhiriev/go-layered-config/internal/printer"
	"github.com/MKhiriev/go-layered-config/internal/resolver"
	"github.com/MKhiriev/go-layered-config/internal/source"
	"github.com/MKhiriev/go-layered-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("config-resolve")
	environ := config.ProcessEnvironment()

	cfg, err := config.GetCLIConfig(environ, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("settings", cfg.Settings).Msg("received configs")

	tree, err := resolver.NewResolver(cfg.Settings, environ, source.NewDocumentLoader(), source.NewDotenvLoader(), log).Resolve()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	if err = printer.Write(os.Stdout, tree, cfg.Format); err != nil {
		log.Fatal().Err(err).Msg("error printing configuration")
	}
}
