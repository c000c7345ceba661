package config

import (
	"os"
	"strconv"
	"time"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

type Config struct {
	Port            string
	AppEnv          string
	CatalogURL      string
	FetchTimeout    time.Duration
	CartStore       string // memory | file | redis
	CartStorageKey  string
	CartFile        string
	RedisAddr       string
	DefaultPageSize int
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		CatalogURL:      getEnv("CATALOG_URL", "https://dummyjson.com/products"),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", 10*time.Second),
		CartStore:       getEnv("CART_STORE", StoreMemory),
		CartStorageKey:  getEnv("CART_STORAGE_KEY", "cart"),
		CartFile:        getEnv("CART_FILE", "storefront-cart.json"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		DefaultPageSize: getInt("DEFAULT_PAGE_SIZE", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
