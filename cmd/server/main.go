// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/handler"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/server"
	"github.com/MKhiriev/julekalender/internal/service"
	"github.com/MKhiriev/julekalender/internal/store"
	"github.com/MKhiriev/julekalender/internal/window"
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

	log := logger.NewLogger("julekalender-host")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	services.ParticipantService.ImportLegacy(ctx, cfg.Storage.Files.LegacyNamesFile)

	windowLog := log.WithComponent("window")
	manager := window.NewManager(
		services.VisualizationService,
		services.ParticipantService,
		window.NewChromeFactory(cfg.Window, windowLog),
		windowLog,
	)

	handlers, err := handler.NewHandlers(services.Launcher(manager, log), services.AppInfoService, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// The window closes before the store so a pending injection never
	// reads from a closed store.
	srv, err := server.NewServer(handlers, cfg.Server, log, manager, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Println(info.String())
}
