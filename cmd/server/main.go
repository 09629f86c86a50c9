package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fileharbor/internal/api"
	"fileharbor/internal/api/handlers"
	"fileharbor/internal/auth"
	"fileharbor/internal/config"
	"fileharbor/internal/repositories"
	"fileharbor/internal/storage"
)

// @title File Manager API
// @version 1.0
// @description Authenticated file upload, listing, content search and download over object storage.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	files := repositories.NewFileRepo(db)

	var store storage.ObjectStore
	switch cfg.StorageBackend {
	case "memory":
		store = storage.NewMemoryStore()
	default:
		store, err = storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			log.Fatal("Failed to initialize object store: ", err)
		}
	}

	var resolver auth.Resolver
	switch cfg.AuthMode {
	case "static":
		users, err := auth.ParseStaticUsers(cfg.StaticUsers)
		if err != nil {
			log.Fatal("Bad STATIC_USERS: ", err)
		}
		resolver = auth.NewStaticResolver(users, cfg.AdminEmails)
	default:
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is required in jwt auth mode")
		}
		resolver = auth.NewJWTResolver(cfg.JWTSecret, cfg.AdminEmails)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, resolver, handlers.New(files, store)),
		// Timeouts prevent resource exhaustion from slow clients; the
		// write timeout is generous because downloads stream.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting server on port: %s", cfg.Port)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
