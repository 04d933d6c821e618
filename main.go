package main

import (
	"log/slog"
	"net/http"
	"os"

	"timesheet/config"
	"timesheet/database"
	"timesheet/handlers"
)

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)

	if err := database.Init(cfg.DatabaseURL); err != nil {
		logger.Error("init database", slog.Any("error", err))
		os.Exit(1)
	}

	router := handlers.NewRouter(handlers.New(logger), cfg.CORSOrigins)

	logger.Info("server starting", slog.String("addr", cfg.ServerAddr))
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
