package main

import (
	"context"
	"log"

	"puja_site_echo/internal/config"
	"puja_site_echo/internal/countdown"
	"puja_site_echo/internal/middleware"
	"puja_site_echo/internal/router"
	"puja_site_echo/internal/sections"
	"puja_site_echo/internal/services"
)

func main() {
	cfg := config.Load()

	sectionRouter, err := sections.NewSiteRouter(cfg.DefaultRoute)
	if err != nil {
		log.Fatalf("Invalid section setup: %v", err)
	}

	deps := router.Deps{
		Sections:  sectionRouter,
		Schedule:  countdown.DefaultSchedule(),
		MediaDir:  cfg.MediaDir,
		Secure:    cfg.IsProduction(),
	}

	// Initialize Firebase
	authClient, err := services.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Admin routes are open until valid credentials are provided")
	} else {
		deps.Verifier = middleware.FirebaseVerifier(authClient)
		deps.Issuer = authClient
	}

	// Initialize Redis
	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
		} else {
			defer cache.Close()
			deps.Cache = cache
		}
	}

	// Initialize visitor storage
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Fatal("STORAGE_BACKEND=postgres requires DATABASE_URL")
		}
		db, err := services.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		deps.Storage = services.NewDBStorage(db)
	case config.StorageRedis:
		if deps.Cache == nil {
			log.Fatal("STORAGE_BACKEND=redis requires a reachable REDIS_URL")
		}
		deps.Storage = services.NewRedisStorage(deps.Cache)
	default:
		log.Println("Warning: using in-memory storage, data is lost on restart")
		deps.Storage = services.NewMemoryStorage()
	}
	log.Printf("Visitor storage backend: %s", cfg.StorageBackend)

	e := router.New(deps)

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
