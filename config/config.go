package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Bidding  BiddingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	// URL is a Postgres connection string. Empty selects the in-memory store.
	URL string
}

type RedisConfig struct {
	// Addr is host:port of the read-path cache. Empty disables caching.
	Addr     string
	Password string
	DB       int
}

type BiddingConfig struct {
	// AdmissionRetries bounds transparent retries of a bid admission that lost
	// an optimistic-update race before the conflict is surfaced to the caller.
	AdmissionRetries int
	// SeedDemoData populates the in-memory store with sample auctions on boot.
	SeedDemoData bool
	// CacheTTLSeconds bounds staleness of cached highest-bid snapshots.
	CacheTTLSeconds int
}

// Load reads configuration from the environment, with .env support and defaults.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	retries, _ := strconv.Atoi(getEnv("BID_ADMISSION_RETRIES", "5"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "2"))
	seed, _ := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Bidding: BiddingConfig{
			AdmissionRetries: retries,
			SeedDemoData:     seed,
			CacheTTLSeconds:  cacheTTL,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
