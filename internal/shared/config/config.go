package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	Port            string
	Env             string
	StoragePath     string
	EnableScheduler bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
		StoragePath:     os.Getenv("STORAGE_PATH"),
		EnableScheduler: os.Getenv("ENABLE_SCHEDULER") == "true",
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = "storage"
	}

	return cfg
}
