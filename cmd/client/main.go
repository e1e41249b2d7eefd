package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfarabee/signon/internal/adapter"
	"github.com/jfarabee/signon/internal/config"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/service"
	"github.com/jfarabee/signon/internal/tui"
	"github.com/jfarabee/signon/internal/validators"
	"github.com/jfarabee/signon/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("signon-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	providerAdapter := adapter.NewHTTPProviderAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.RequestTimeout,
	})

	validator := validators.NewCredentialValidator()
	coordinator := service.NewCoordinator(providerAdapter, validator, log)

	prober := workers.NewReadinessProber(providerAdapter, coordinator, cfg.Workers.ProbeInterval, log)
	workers.NewWorkers(prober).Run()
	defer prober.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui := tui.New(coordinator, log)
	if err = ui.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
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
