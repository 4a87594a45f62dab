package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/Janus/adapters/analysisapi"
	"github.com/XavierBriggs/Janus/internal/config"
	"github.com/XavierBriggs/Janus/internal/dashboard"
	"github.com/XavierBriggs/Janus/internal/handlers"
	"github.com/XavierBriggs/Janus/internal/hub"
	"github.com/XavierBriggs/Janus/internal/logger"
	"github.com/XavierBriggs/Janus/internal/registry"
	"github.com/XavierBriggs/Janus/internal/session"
	"github.com/XavierBriggs/Janus/internal/sweeper"
	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
)

func main() {
	fmt.Println("=== Janus Betting Analysis Dashboard ===")

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range cfg.Warnings {
		fmt.Printf("⚠ %s\n", warning)
	}

	log := logger.New(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	// Initialize sport registry
	sportRegistry, err := registry.NewSportRegistry(baseball_mlb.NewModule(cfg.TeamLogos))
	if err != nil {
		fmt.Printf("❌ Failed to register sports: %v\n", err)
		os.Exit(1)
	}
	sport, err := sportRegistry.Resolve(cfg.Sport)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Sport: %s\n", sport.GetDisplayName())

	analysis := analysisapi.NewClient(cfg.Analysis.BaseURL, cfg.Analysis.Timeout)
	fmt.Printf("✓ Analysis service: %s\n", cfg.Analysis.BaseURL)

	// Session state store
	var (
		store       contracts.SessionStore
		pruner      sweeper.Pruner
		redisClient *redis.Client
	)
	if cfg.UseRedis() {
		opts, err := cfg.RedisOptions()
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		redisStore := session.NewRedisStore(redisClient, cfg.Session.TTL)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisStore.Ping(pingCtx)
		cancel()
		if err != nil {
			fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}
		store = redisStore
		fmt.Println("✓ Connected to Redis")
	} else {
		memoryStore := session.NewMemoryStore(cfg.Session.TTL)
		store = memoryStore
		pruner = memoryStore
		fmt.Println("✓ Using in-memory session store")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Patch hub
	patchHub := hub.NewHub(log)
	go patchHub.Run(ctx)

	manager := dashboard.NewManager(dashboard.Deps{
		Source:    analysis,
		Sport:     sport,
		Publisher: patchHub,
		Logger:    log,
		Location:  loc,
	}, store, cfg.Session.TTL)

	sweep := sweeper.NewSweeper(manager, pruner, cfg.Session.SweepInterval, log)
	sweep.Start(ctx)

	handler := handlers.NewHandler(ctx, handlers.Options{
		Manager:        manager,
		Hub:            patchHub,
		Analysis:       analysis,
		Logger:         log,
		AllowedOrigins: cfg.CORSOrigins,
		SessionTTL:     cfg.Session.TTL,
	})

	// Write timeout stays off so WebSocket connections are not cut
	srv := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     handler.Routes(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Janus listening on %s\n", cfg.Server.Addr)
		fmt.Printf("  Session TTL: %v (sweep every %v)\n", cfg.Session.TTL, cfg.Session.SweepInterval)
		fmt.Printf("  Timezone: %s\n", loc)
		fmt.Println()
		serverErrors <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("❌ Server error: %v\n", err)
			os.Exit(1)
		}

	case sig := <-sigChan:
		fmt.Printf("\n✓ Received signal %v, shutting down gracefully...\n", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠ Graceful shutdown failed: %v\n", err)
			srv.Close()
		}

		sweep.Stop()
		manager.Close()
		cancel()

		if redisClient != nil {
			redisClient.Close()
		}

		fmt.Println("✓ Janus stopped")
	}
}
