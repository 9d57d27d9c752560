package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloudvault/internal/app/server/api"
	"cloudvault/internal/app/server/config"
	"cloudvault/internal/infrastructure/blob"
	"cloudvault/internal/infrastructure/identity"
	"cloudvault/internal/infrastructure/storage/postgres"
	"cloudvault/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	blobs, err := blob.NewFS(cfg.Files.UploadDir)
	if err != nil {
		log.Error("blob store init failed", "error", err)
		os.Exit(1)
	}

	verifier := identity.NewClient(cfg.Identity.Endpoint, cfg.Identity.APIKey, log)

	router := api.New(cfg, storage, blobs, verifier, log)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: router,
	}

	go func() {
		log.Info("server started", "address", cfg.Server.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
