package main

import (
	"context"
	"fmt"
	"time"

	"calhub/internal/config"
	"calhub/internal/crypto"
	handlerhttp "calhub/internal/handler/http"
	"calhub/internal/logger"
	"calhub/internal/provider"
	"calhub/internal/secrets"
	"calhub/internal/server"
	"calhub/internal/service"
	"calhub/internal/store"
	"calhub/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("server")

	cfg, err := config.GetConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("error loading product timezone")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	cipher, err := crypto.NewSecretCipher(cfg.App.SecretKey, cfg.App.SecretSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret cipher")
	}

	secretStore := secrets.NewStore(storages.Secrets, cipher, log)

	factory := provider.NewFactory(
		provider.Credentials{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
		},
		secretStore,
		cfg.Sync,
		loc,
		log,
	)

	services := service.NewServices(service.Deps{
		Storages: storages,
		Secrets:  secretStore,
		Factory:  factory,
		SyncCfg:  cfg.Sync,
		Location: loc,
		Logger:   log,
	})

	handler := handlerhttp.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	syncWorker := workers.NewSyncWorker(services.Sync, storages.Settings, cfg.Workers, log)
	background := workers.NewWorkers(syncWorker)
	background.Run()
	defer background.Stop()

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
