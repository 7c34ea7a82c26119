package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionTTL    time.Duration
	SecureCookies bool

	// Uploads
	UploadDir      string
	MaxUploadBytes int64

	// Server
	Port        string
	CORSOrigins string
	Environment string
}

func Load() *Config {
	env := getEnv("APP_ENV", "development")
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "stonevault_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionTTL:    parseDuration(getEnv("SESSION_TTL", "720h")),
		SecureCookies: env == "production",

		UploadDir:      getEnv("UPLOAD_DIR", "./public/uploads"),
		MaxUploadBytes: 5 * 1024 * 1024,

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		Environment: env,
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}
