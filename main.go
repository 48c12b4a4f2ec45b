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

	"hotelops/config"
	"hotelops/controllers"
	"hotelops/routes"
	"hotelops/services"
	"hotelops/services/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	clock, err := services.NewHotelClock(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	store, sqlDB, err := config.NewStore(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	redisCli, err := config.ConnectRedis(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	router, m, c, err := config.InitApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	app := services.NewContainer(services.ContainerOptions{
		Store:         store,
		Redis:         redisCli,
		Melody:        m,
		Clock:         clock,
		Logger:        appLogger,
		BoardCacheTTL: cfg.BoardCacheTTL,
	})

	if err := config.InitCronJobs(c, app); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	var pinger controllers.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	routes.SetupRoutes(router, app, m, routes.Options{
		JWTSecret: cfg.JWTSecret,
		DB:        pinger,
		Redis:     redisCli,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	<-c.Stop().Done()
	if err := m.Close(); err != nil {
		appLogger.Error("close websocket sessions: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}
	if redisCli != nil {
		_ = redisCli.Close()
	}
	if sqlDB != nil {
		_ = sqlDB.Close()
	}
	appLogger.Info("Server stopped gracefully")
}
