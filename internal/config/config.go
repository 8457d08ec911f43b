// Package config loads the gateway configuration from the environment.
// The resulting Config is immutable and handed to every component at
// startup; nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string
	AppVersion string
	ServerPort int

	SecretKey      string
	TokenAlgorithm string
	AccessTokenTTL time.Duration

	BackendURL     string
	HTTPTimeout    time.Duration
	HTTPMaxRetries int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	LogLevel string
}

func Load() (*Config, error) {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		AppName:        envDefault("APP_NAME", "workshop-gateway"),
		AppVersion:     envDefault("APP_VERSION", "dev"),
		ServerPort:     envIntDefault("SERVER_PORT", 8080),
		SecretKey:      os.Getenv("SECRET_KEY"),
		TokenAlgorithm: envDefault("TOKEN_ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(envIntDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 480)) * time.Minute,
		BackendURL:     os.Getenv("BACKEND_URL"),
		HTTPTimeout:    time.Duration(envIntDefault("HTTP_TIMEOUT_SECONDS", 40)) * time.Second,
		HTTPMaxRetries: envIntDefault("HTTP_MAX_RETRIES", 3),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       envIntDefault("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		LogLevel:       envDefault("LOG_LEVEL", "info"),
	}

	for name, value := range map[string]string{
		"SECRET_KEY":  cfg.SecretKey,
		"BACKEND_URL": cfg.BackendURL,
		"SMTP_HOST":   cfg.SMTPHost,
		"SMTP_USER":   cfg.SMTPUser,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required env %s", name)
		}
	}

	return cfg, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
