package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port string

	StoreDriver string
	MongoURI    string
	DBName      string
	PostgresDSN string

	RedisAddr string
	RedisPass string
	CacheTTL  time.Duration

	JWTKey string

	// RandomSeed makes estimates reproducible when non-zero.
	RandomSeed uint64
}

// Load reads the .env file, if any, and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded (%v), falling back to system env vars", err)
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		StoreDriver: getEnv("STORE_DRIVER", DriverMongo),
		MongoURI:    os.Getenv("MONGOURI"),
		DBName:      getEnv("DB", "property_valuation"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		RedisAddr: os.Getenv("REDIS_ADD"),
		RedisPass: os.Getenv("REDIS_PASS"),
		CacheTTL:  time.Duration(getEnvInt("CACHE_TTL_MINUTES", 10)) * time.Minute,

		JWTKey: os.Getenv("JWT_KEY"),

		RandomSeed: getEnvUint("RANDOM_SEED", 0),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
		log.Printf("Ignoring invalid %s=%q: %v", key, val, err)
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseUint(val, 10, 64)
		if err == nil {
			return n
		}
		log.Printf("Ignoring invalid %s=%q: %v", key, val, err)
	}
	return fallback
}
