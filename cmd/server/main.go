// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agro-pest-api/internal/config"
	"github.com/MKhiriev/agro-pest-api/internal/handler"
	"github.com/MKhiriev/agro-pest-api/internal/logger"
	"github.com/MKhiriev/agro-pest-api/internal/server"
	"github.com/MKhiriev/agro-pest-api/internal/service"
	"github.com/MKhiriev/agro-pest-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// defaultAppVersion is reported by /api/version when neither the config nor
// the linker provides one.
const defaultAppVersion = "1.0.0"

func main() {
	printBuildInfo()

	log := logger.NewLogger("agro-pest-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = appVersion()
	}
	if cfg.UsesDefaultTokenSignKey() {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, using the built-in development key")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	db, err := store.NewConnectDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func appVersion() string {
	if buildVersion != "" {
		return buildVersion
	}
	return defaultAppVersion
}

func printBuildInfo() {
	version := buildVersion
	if version == "" {
		version = "N/A"
	}

	date := buildDate
	if date == "" {
		date = "N/A"
	}

	commit := buildCommit
	if commit == "" {
		commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}
