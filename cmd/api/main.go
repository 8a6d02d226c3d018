package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/config"
	"github.com/atelierhq/atelier/internal/database"
	atelierHttp "github.com/atelierhq/atelier/internal/http"
	bootstrapHandler "github.com/atelierhq/atelier/internal/http/bootstrap"
	catalogHandler "github.com/atelierhq/atelier/internal/http/catalog"
	clientHandler "github.com/atelierhq/atelier/internal/http/client"
	quoteHandler "github.com/atelierhq/atelier/internal/http/quote"
	receiptHandler "github.com/atelierhq/atelier/internal/http/receipt"
	settingsHandler "github.com/atelierhq/atelier/internal/http/settings"
	txHandler "github.com/atelierhq/atelier/internal/http/transaction"
	"github.com/atelierhq/atelier/internal/sync"
	"github.com/atelierhq/atelier/internal/sync/remote"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store := appdata.NewFileStore(cfg.Snapshot.Path)

	// The remote mirror is optional. Any failure here leaves the app running
	// local-only against the snapshot file.
	var mirror sync.Remote

	if cfg.RemoteEnabled() {
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Warn("remote database unreachable, running local-only", "error", err)
		} else {
			defer db.Close()

			if err := database.Migrate(db, "migrations"); err != nil {
				slog.Warn("remote migrations failed, running local-only", "error", err)
			} else {
				mirror = remote.New(db)
			}
		}
	} else {
		slog.Info("no remote database configured, running local-only")
	}

	engine := sync.NewEngine(
		store,
		mirror,
		sync.NewPromRecorder(prometheus.DefaultRegisterer),
		slog.Default(),
		cfg.Sync.Timeout,
	)
	defer engine.Wait()

	engine.FetchAll(context.Background())

	service := app.NewService(store, engine)

	var (
		bootstrapH = bootstrapHandler.NewHandler(engine)
		catalogH   = catalogHandler.NewHandler(service)
		clientH    = clientHandler.NewHandler(service)
		quoteH     = quoteHandler.NewHandler(service)
		receiptH   = receiptHandler.NewHandler(service)
		txH        = txHandler.NewHandler(service)
		settingsH  = settingsHandler.NewHandler(service)
	)

	router := atelierHttp.New(bootstrapH, catalogH, clientH, quoteH, receiptH, txH, settingsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
