package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"

	"github.com/inkwellapp/streak-service/internal/auth"
	"github.com/inkwellapp/streak-service/internal/config"
	"github.com/inkwellapp/streak-service/internal/events"
	"github.com/inkwellapp/streak-service/internal/httpapi"
	"github.com/inkwellapp/streak-service/internal/journal"
	"github.com/inkwellapp/streak-service/internal/logging"
	"github.com/inkwellapp/streak-service/internal/server"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger("streak-service")

	repo, cleanup, err := newRepository(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("datastore error: %w", err))
	}
	defer cleanup()

	publisher := events.NewLogPublisher(logger)
	service := journal.NewService(repo, publisher, logger)

	verifier, err := auth.NewVerifier(auth.Config{
		Mode:        cfg.Auth.Mode,
		JWKSURL:     cfg.Auth.JWKSURL,
		Audience:    cfg.Auth.Audience,
		Issuer:      cfg.Auth.Issuer,
		JWKSRefresh: cfg.Auth.JWKSRefresh,
	})
	if err != nil {
		panic(fmt.Errorf("auth verifier error: %w", err))
	}

	router := server.NewRouter("streak-service", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(verifier))
			httpapi.RegisterRoutes(r, service)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func newRepository(ctx context.Context, cfg config.Config) (journal.Repository, func(), error) {
	switch cfg.DataStore {
	case config.DataStoreFirestore:
		client, err := firestore.NewClientWithDatabase(ctx, cfg.GCPProjectID, cfg.Firestore.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("firestore client: %w", err)
		}
		return journal.NewFirestoreRepository(client), func() { client.Close() }, nil
	case config.DataStoreMemory:
		return journal.NewMemoryRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}
}
