package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/virtual-tryon-platform/internal/analytics"
	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"
	"github.com/iliyamo/virtual-tryon-platform/internal/config"
	"github.com/iliyamo/virtual-tryon-platform/internal/database"
	"github.com/iliyamo/virtual-tryon-platform/internal/handler"
	"github.com/iliyamo/virtual-tryon-platform/internal/middleware"
	"github.com/iliyamo/virtual-tryon-platform/internal/queue"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
	"github.com/iliyamo/virtual-tryon-platform/internal/router"
	"github.com/iliyamo/virtual-tryon-platform/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Catalog/user-directory collaborator: MySQL when configured,
	// otherwise the in-memory fixtures with simulated latency. The
	// database also switches the auth backend from the stub to real
	// credential checks against the directory.
	var (
		source  catalog.Source
		tokens  repository.TokenStore
		users   *repository.UserRepo
		authFor backend.AuthBackend
	)
	if cfg.UseDatabase() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		sqlSource := catalog.NewSQL(db)
		source = sqlSource
		tokens = repository.NewTokenRepo(db)
		users = sqlSource.Users
		authFor = backend.NewDirectoryAuth(users)
	} else {
		source = catalog.NewMemory(cfg.CatalogDelay)
		tokens = repository.NewMemoryTokenStore()
		authFor = backend.NewMockAuth(cfg.AuthDelay)
	}

	// Core state containers and their collaborators.
	sessionStore := store.NewAuthStore(authFor)
	tryOnStore := store.NewTryOnStore(backend.NewMockRecommender(cfg.RecoDelay))
	stats := analytics.NewAggregator()

	// Consume tryon.completed events in the background; the consumer
	// reconnects forever and feeds the analytics aggregator.
	go func() {
		if err := queue.StartTryOnConsumer(stats); err != nil {
			log.Printf("tryon consumer stopped: %v", err)
		}
	}()

	e := echo.New()

	// Redis is optional: without it rate limiting and catalog caching
	// fall through to no-ops.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	authHandler := handler.NewAuthHandler(cfg, sessionStore, tokens, source)
	tryOnHandler := handler.NewTryOnHandler(tryOnStore, sessionStore, source, &backend.StubCamera{}, stats)
	catalogHandler := handler.NewCatalogHandler(source)
	directoryHandler := handler.NewDirectoryHandler(source, sessionStore, users, cfg.BcryptCost)
	analyticsHandler := handler.NewAnalyticsHandler(stats)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterCatalog(e, catalogHandler, cacheMW)
	router.RegisterTryOn(e, tryOnHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, directoryHandler, analyticsHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
