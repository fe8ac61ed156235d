package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrave/cmd"
	httpin "qrave/internal/adapters/in/http"
	"qrave/internal/adapters/out/postgres"
	"qrave/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := postgres.Open(cfg.DB().DSN())
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	if err := postgres.Migrate(db); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}
	zapLogger.Info("database connected")

	app, err := cmd.NewCompositionRoot(cfg, db, zapLogger)
	if err != nil {
		zapLogger.Fatal("building application", zap.Error(err))
	}
	if err := app.Start(); err != nil {
		zapLogger.Fatal("starting background jobs", zap.Error(err))
	}

	server := httpin.NewServer(app.Handlers(), app.Hub(), cfg.SSEKeepAlive, zapLogger)
	e, err := httpin.NewEcho(server, zapLogger)
	if err != nil {
		zapLogger.Fatal("building http server", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		zapLogger.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	// Closing the hub first ends open event streams, which would otherwise
	// hold Shutdown until its deadline.
	app.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zapLogger.Info("server stopped gracefully")
}
