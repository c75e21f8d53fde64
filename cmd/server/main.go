// BuyMove - Vehicle Marketplace Backend
// Copyright 2026 BuyMove Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buymove/backend

// Package main is the entry point for the BuyMove API server.
//
// BuyMove is a vehicle marketplace backend. It exposes a REST API for
// user registration and login, vehicle listings with filtered search
// and pagination, similarity-based recommendations, and per-user
// favorites.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from defaults, config file and environment (Koanf v2)
//  2. Database: Connect to MongoDB and ensure collection indexes
//  3. Stores: Users, vehicles and favorites repositories
//  4. Authentication: JWT token manager and bearer middleware
//  5. HTTP Server: Chi router with CORS, rate limiting and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (MONGODB_URI, JWT_SECRET, HTTP_PORT, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the MongoDB client last
//
// # Example Usage
//
// Development against a local MongoDB:
//
//	export MONGODB_URI=mongodb://localhost:27017
//	./buymove
//
// Production:
//
//	export APP_ENVIRONMENT=production
//	export MONGODB_URI=mongodb://mongo:27017
//	export JWT_SECRET=$(openssl rand -base64 32)
//	./buymove
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buymove/backend/internal/api"
	"github.com/buymove/backend/internal/auth"
	"github.com/buymove/backend/internal/config"
	"github.com/buymove/backend/internal/database"
	"github.com/buymove/backend/internal/logging"
	"github.com/buymove/backend/internal/store"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.App.Environment).
		Str("mongo_database", cfg.Mongo.Database).
		Msg("Starting BuyMove API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connection failures are non-fatal here. Connect already logged a
	// warning and the health endpoint reports the degraded state; Mongo
	// is retried on the first query once it comes back.
	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure MongoDB client")
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to ensure indexes (continuing)")
	}

	users := store.NewUsers(db)
	vehicles := store.NewVehicles(db, cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	favorites := store.NewFavorites(db)

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authMiddleware := auth.NewMiddleware(jwtManager, users)

	handler := api.NewHandler(users, vehicles, favorites, jwtManager, cfg, db)
	router := api.NewRouter(handler, authMiddleware, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
