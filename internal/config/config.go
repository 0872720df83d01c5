// Package config reads runtime settings from the environment, optionally seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMaxUploadBytes = 10 << 20

// Storage backends accepted by STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var (
	LogLevel         string
	ServerRunAddress string
	DatabaseURI      string
	Storage          string
	MigrateOnStart   bool
	UploadDir        string
	StaticDir        string
	MaxUploadBytes   int64
	AdminPassword    string
	TokenSecret      string
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	Load()
}

// Load (re)reads every setting from the current environment.
func Load() {
	LogLevel = getEnv("LOG_LEVEL", "info")
	ServerRunAddress = getEnv("SERVER_RUN_ADDRESS", "0.0.0.0:8080")
	DatabaseURI = getEnv("DATABASE_URI", "host=db user=postgres password=password dbname=tracker sslmode=disable")

	Storage = strings.ToLower(getEnv("STORAGE", StoragePostgres))
	if Storage != StorageMemory {
		Storage = StoragePostgres
	}

	MigrateOnStart = true
	if raw := os.Getenv("MIGRATE_ON_START"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			MigrateOnStart = value
		}
	}

	UploadDir = getEnv("UPLOAD_DIR", "./public/uploads")
	StaticDir = os.Getenv("STATIC_DIR")

	MaxUploadBytes = defaultMaxUploadBytes
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil && value > 0 {
			MaxUploadBytes = value
		}
	}

	AdminPassword = os.Getenv("ADMIN_PASSWORD")
	TokenSecret = getEnv("TOKEN_SECRET", "supersecretkey")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
