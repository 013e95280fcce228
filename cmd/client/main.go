package main

import (
	"fmt"

	"waylog/internal/adapter"
	"waylog/internal/client"
	"waylog/internal/config"
	"waylog/internal/logger"
	"waylog/internal/service"
	"waylog/internal/store"
	"waylog/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("waylog-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, utils.NewUUIDGenerator(), log)

	app, err := client.NewApp(cfg, localStorage, serverAdapter, services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
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
