// IdleHero API server.
//
// Tracks phone usage sync, detox rules, daily bosses, quests, and the
// player's kingdom. Progression is resolved server-side from usage logs
// uploaded by the companion app.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/IdleHero_Go/internal/bootstrap"
	"github.com/osse101/IdleHero_Go/internal/config"
	"github.com/osse101/IdleHero_Go/internal/database"
	"github.com/osse101/IdleHero_Go/internal/database/migrations"
	"github.com/osse101/IdleHero_Go/internal/handler"
	"github.com/osse101/IdleHero_Go/internal/kingdom"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/quest"
	"github.com/osse101/IdleHero_Go/internal/rules"
	"github.com/osse101/IdleHero_Go/internal/server"
	"github.com/osse101/IdleHero_Go/internal/usage"
	"github.com/osse101/IdleHero_Go/internal/user"
	"github.com/osse101/IdleHero_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logger writes to stdout and a timestamped session file
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	// Request validation (custom app-package format validator)
	handler.InitValidator()

	ctx := context.Background()

	// Database pool and migrations
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := migrations.Up(ctx, dbPool); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// Event bus and resilient publisher
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		logger.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		logger.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	// Validate config files against their schemas before loading anything
	if err := bootstrap.ValidateGameConfigs(); err != nil {
		logger.Error("Game config validation failed", "error", err)
		os.Exit(1)
	}

	// Game engine with JSON tuning overlays
	engine, err := bootstrap.InitializeEngine()
	if err != nil {
		logger.Error("Failed to initialize game engine", "error", err)
		os.Exit(1)
	}

	// Repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	userService := user.NewService(repos.User, repos.Stats, repos.Rule, repos.Quest, repos.Building, resilientPublisher)
	ruleService := rules.NewService(repos.Rule, repos.User)
	usageService := usage.NewService(repos.TxManager, repos.User, repos.Stats, repos.Boss, engine, resilientPublisher)
	kingdomService := kingdom.NewService(repos.TxManager, repos.Stats, repos.Building, engine, resilientPublisher)

	questService, err := quest.NewService(repos.Quest, repos.TxManager, engine, resilientPublisher)
	if err != nil {
		logger.Error("Failed to initialize quest service", "error", err)
		os.Exit(1)
	}

	// Push the quest catalog into the database before serving traffic
	if err := bootstrap.SeedQuestDefinitions(ctx, questService); err != nil {
		logger.Error("Failed to seed quest definitions", "error", err)
		os.Exit(1)
	}

	// Nightly quest reset at 00:00 UTC
	dailyResetWorker := worker.NewDailyResetWorker(questService)
	dailyResetWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, userService, ruleService, usageService, questService, kingdomService)

	// Run the server until interrupted
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			DailyResetWorker:   dailyResetWorker,
			ResilientPublisher: resilientPublisher,
		})
	}
}
