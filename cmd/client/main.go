package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/julekalender/internal/adapter"
	"github.com/MKhiriev/julekalender/internal/client"
	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/tui"
	"github.com/MKhiriev/julekalender/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("julekalender-launcher")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	hostAdapter, err := adapter.NewHTTPHostAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create host adapter")
	}

	ui := tui.New(hostAdapter, buildInfo, log)

	app, err := client.NewApp(hostAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Println(info.String())
}
