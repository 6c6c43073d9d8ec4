package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/contas/internal/access"
	accessStore "github.com/MrJamesThe3rd/contas/internal/access/store"
	"github.com/MrJamesThe3rd/contas/internal/config"
	"github.com/MrJamesThe3rd/contas/internal/database"
	contasHttp "github.com/MrJamesThe3rd/contas/internal/http"
	accessHandler "github.com/MrJamesThe3rd/contas/internal/http/access"
	recordHandler "github.com/MrJamesThe3rd/contas/internal/http/record"
	"github.com/MrJamesThe3rd/contas/internal/ratelimit"
	"github.com/MrJamesThe3rd/contas/internal/record"
	recordStore "github.com/MrJamesThe3rd/contas/internal/record/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		accessService = access.NewService(accessStore.New(db))
		recordService = record.NewService(recordStore.New(db))
	)

	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	var (
		accessH = accessHandler.NewHandler(accessService)
		recordH = recordHandler.NewHandler(recordService)
	)

	router := contasHttp.New(limiter, accessH, recordH, cfg.CORS.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
