package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jfarabee/signon/internal/config"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/server"
	"github.com/jfarabee/signon/internal/store"
	"github.com/jfarabee/signon/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("signon-provider")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.OpenDatabase(ctx, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}

	userStore := store.NewUserStore(db, log)
	defer func() {
		if err := userStore.Close(); err != nil {
			log.Err(err).Msg("error closing user store")
		}
	}()

	validator := validators.NewCredentialValidator()
	handler := server.NewHandler(userStore, validator, cfg.TokenSecret, cfg.TokenTTL, log)
	httpServer := server.NewHTTPServer(cfg.Address, handler.Init(), log)

	go func() {
		<-ctx.Done()
		httpServer.Shutdown()
	}()

	if err = httpServer.Run(); err != nil {
		log.Fatal().Err(err).Msg("http server error")
	}
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
