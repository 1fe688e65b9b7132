// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/router"
	"github.com/danielhkuo/idea-board/storage"
)

func main() {
	var err error

	// A .env file is optional; deployments set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the storage backend
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := openStore(openCtx, cfg)
	cancelOpen()
	if err != nil {
		slog.Error("storage connection failed", "type", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	slog.Info("Storage ready", "type", cfg.StorageType)

	// Create router
	handler := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Release the long-lived storage connection
	closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelClose()
	if err := store.Close(closeCtx); err != nil {
		slog.Error("storage close failed", "error", err)
	}
}

// openStore opens the backend selected by cfg.StorageType.
// The sqlite and postgres backends share one implementation; only the
// driver name differs.
func openStore(ctx context.Context, cfg cliparse.Config) (storage.Store, error) {
	switch cfg.StorageType {
	case cliparse.StorageMongo:
		return storage.OpenMongo(ctx, cfg.StorageURL, cfg.DBName)
	case cliparse.StorageSQLite:
		return storage.OpenSQL("sqlite", cfg.StorageURL)
	case cliparse.StoragePostgres:
		return storage.OpenSQL("postgres", cfg.StorageURL)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.StorageType)
	}
}
