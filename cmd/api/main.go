// @title           Student Planner API
// @version         1.0
// @description     Task/note planner with productivity statistics, recurring tasks and deadline reminders.
// @host            localhost:8080
// @BasePath        /api/v1
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

	"github.com/AvishekRimal/student-planner/internal/app"
	"github.com/AvishekRimal/student-planner/internal/config"
	"github.com/AvishekRimal/student-planner/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/AvishekRimal/student-planner/docs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("config loaded, connecting to DB and Redis")

	application, err := app.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("app init", zap.Error(err))
	}

	application.StartJobs()

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	zapLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown", zap.Error(err))
	}

	if err := application.Close(ctx); err != nil {
		zapLogger.Error("app close", zap.Error(err))
	}
	zapLogger.Info("shutdown complete")
}
