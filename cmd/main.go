// Package main runs the BookLeaf royalty API.
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/bookleaf/cmd/httpserver"
	"github.com/go-petr/bookleaf/internal/ledgerrepo"
	"github.com/go-petr/bookleaf/internal/middleware"
	"github.com/go-petr/bookleaf/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	seed, err := ledgerrepo.LoadSeed(config.SeedFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load seed data")
	}

	ledger, err := ledgerrepo.NewRepoMem(seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create ledger")
	}

	if config.Environement != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := httpserver.New(ledger, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress()).Msg("BOOKLEAF API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress())
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
