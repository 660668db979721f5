package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE_BACKEND
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds the process settings read from the environment
type Config struct {
	Port                    string
	Env                     string
	DatabaseURL             string
	RedisURL                string
	StorageBackend          string
	FirebaseCredentialsPath string
	DefaultRoute            string
	MediaDir                string
}

// Load reads .env (if present) and the environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment only
func FromEnv() Config {
	cfg := Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		RedisURL:                os.Getenv("REDIS_URL"),
		StorageBackend:          strings.ToLower(os.Getenv("STORAGE_BACKEND")),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		DefaultRoute:            getEnv("DEFAULT_ROUTE", "/home"),
		MediaDir:                getEnv("MEDIA_DIR", "media"),
	}

	// Pick a backend from what is configured when none is set explicitly
	if cfg.StorageBackend == "" {
		switch {
		case cfg.DatabaseURL != "":
			cfg.StorageBackend = StoragePostgres
		case cfg.RedisURL != "":
			cfg.StorageBackend = StorageRedis
		default:
			cfg.StorageBackend = StorageMemory
		}
	}

	return cfg
}

// IsProduction reports whether cookies should be marked secure
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
