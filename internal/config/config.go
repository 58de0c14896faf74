package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-wide configuration. The JWT secret and the
// password pepper are fixed at startup and read-only afterwards.
type Config struct {
	DBConnString   string
	JWTSecret      string
	PasswordPepper string
	HTTPAddr       string
}

// Load reads the .env file (if present) and the environment. It fails when a
// required value is missing so the server never starts half-configured.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		DBConnString:   os.Getenv("DB_CONNECTION_STRING"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		PasswordPepper: os.Getenv("PASSWORD_PEPPER"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("no JWT_SECRET provided")
	}
	if cfg.PasswordPepper == "" {
		return nil, errors.New("no PASSWORD_PEPPER provided")
	}
	if cfg.DBConnString == "" {
		return nil, errors.New("no DB_CONNECTION_STRING provided")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	return cfg, nil
}
