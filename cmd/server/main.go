// Package main runs the tracker REST API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	app "github.com/resetapp/tracker/internal/app"
	"github.com/resetapp/tracker/internal/app/httpapi"
	mongostore "github.com/resetapp/tracker/internal/app/storage/mongo"
	"github.com/resetapp/tracker/internal/config"
	"github.com/resetapp/tracker/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may be set by the shell.
	_ = godotenv.Load()

	log := logger.NewDefault("server")
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var stores app.Stores
	if cfg.MongoURI != "" {
		store, client, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.WithError(err).Error("mongodb connection failed")
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		log.WithField("database", cfg.MongoDatabase).Info("mongodb connected")
		stores = app.Stores{Tasks: store, Habits: store, Moods: store}
	} else {
		log.Warn("MONGO_URI not set; using in-memory store, data will not survive restarts")
	}

	application := app.New(stores, log)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      httpapi.NewRouter(application, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("tracker API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown did not complete cleanly")
		}
		log.Info("server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped unexpectedly")
			os.Exit(1)
		}
	}
}
