package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-manager/internal/adapter"
	"github.com/MKhiriev/go-contact-manager/internal/config"
	httpHandler "github.com/MKhiriev/go-contact-manager/internal/handler/http"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/server"
	"github.com/MKhiriev/go-contact-manager/internal/service"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("contact-manager")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	geocoder, err := adapter.NewNominatimGeocoder(cfg.Geocoder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}

	services, err := service.NewServices(storages, geocoder, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err := services.AuthService.SeedDefaultUser(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding default user")
	}

	handler, err := httpHandler.NewHandler(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handler")
	}

	router, err := handler.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing routes")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

	srv, err := server.NewServer(router, cfg.Server, log)
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
