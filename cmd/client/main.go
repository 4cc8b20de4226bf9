// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/client"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/service"
	"github.com/MKhiriev/match-point/internal/session"
	"github.com/MKhiriev/match-point/internal/store"
	"github.com/MKhiriev/match-point/internal/tui"
	"github.com/MKhiriev/match-point/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("match-point-client", cfg.App.LogPath)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	r := router.New(log)
	sess := session.New(serverAdapter, localStorage, r, log)
	services := service.NewServices(serverAdapter, buildInfo, *cfg, log)

	ui, err := tui.New(ctx, tui.Deps{Router: r, Session: sess, Services: services}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app := client.NewApp(sess, localStorage, serverAdapter, ui, *cfg, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "match-point: %v\n", err)
		os.Exit(1)
	}
}
