package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	spec "github.com/teamhealth/teamhealth/api"
	"github.com/teamhealth/teamhealth/internal/api"
	"github.com/teamhealth/teamhealth/internal/assessment"
	"github.com/teamhealth/teamhealth/internal/config"
	"github.com/teamhealth/teamhealth/internal/database"
	"github.com/teamhealth/teamhealth/internal/question"
	"github.com/teamhealth/teamhealth/internal/results"
	"github.com/teamhealth/teamhealth/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Tables and the question catalog must exist before serving traffic.
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()
	if err := db.EnsureSchema(initCtx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	questionRepo := question.NewRepository(db.Pool())
	if err := questionRepo.SeedIfEmpty(initCtx); err != nil {
		slog.Error("failed to seed question catalog", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterDeps{
		DBPinger:          db,
		Version:           cfg.Version,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		TeamRepo:          team.NewRepository(db.Pool()),
		QuestionRepo:      questionRepo,
		AssessmentRepo:    assessment.NewRepository(db.Pool()),
		ResultsRepo:       results.NewRepository(db.Pool()),
		OpenAPISpec:       spec.OpenAPISpec,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting team health check server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
