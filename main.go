package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/dcode-github/property_valuation/cache"
	"github.com/dcode-github/property_valuation/config"
	"github.com/dcode-github/property_valuation/routes"
	"github.com/dcode-github/property_valuation/storage"
	"github.com/dcode-github/property_valuation/utils"
	"github.com/dcode-github/property_valuation/valuation"
)

func openStore(ctx context.Context, cfg *config.Config) (storage.ValuationStore, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return storage.NewPostgresStore(ctx, cfg.PostgresDSN)
	default:
		client, err := config.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := storage.NewMongoStore(client.Database(cfg.DBName))
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Printf("Could not ensure valuation indexes: %v", err)
		}
		return store, nil
	}
}

func openCache(ctx context.Context, cfg *config.Config) cache.ListCache {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADD not set, saved valuations are read without a cache")
		return cache.NoCache{}
	}
	client, err := config.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Printf("%v; continuing without a cache", err)
		return cache.NoCache{}
	}
	return cache.New(client, cfg.CacheTTL)
}

func newEngine(cfg *config.Config) *valuation.Engine {
	if cfg.RandomSeed != 0 {
		log.Printf("Using seeded random source (seed %d)", cfg.RandomSeed)
		return valuation.New(valuation.WithSource(valuation.NewSeededSource(cfg.RandomSeed)))
	}
	return valuation.New()
}

func main() {
	cfg := config.Load()

	if cfg.JWTKey == "" {
		log.Println("JWT_KEY not set, /api routes will reject every request")
	}
	utils.SetSigningKey(cfg.JWTKey)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStore(startCtx, cfg)
	if err != nil {
		cancelStart()
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	listCache := openCache(startCtx, cfg)
	cancelStart()

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Printf("Error closing store: %v", err)
		}
		log.Println("Store connection closed")
	}()

	router := mux.NewRouter()
	routes.Routes(router, newEngine(cfg), store, listCache)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
