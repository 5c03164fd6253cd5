package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/aura/internal/adapter"
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/handler"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/server"
	"github.com/MKhiriev/aura/internal/service"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/internal/workers"
	"github.com/MKhiriev/aura/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("aura-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailer, err := adapter.NewMailer(cfg.Adapter.Mail, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}
	dispatcher := workers.NewMailDispatcher(mailer, cfg.Workers, log)

	services, err := service.NewServices(storages, dispatcher, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(dispatcher), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
