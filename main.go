package main

import (
	"log/slog"
	"os"

	"github.com/Eyabennessib/rooma/internal/config"
	"github.com/Eyabennessib/rooma/internal/database"
	"github.com/Eyabennessib/rooma/internal/logging"
	"github.com/Eyabennessib/rooma/internal/server"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	srv := server.New(db, cfg)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
