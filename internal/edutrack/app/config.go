package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer      string        // Optional: issuer claim for tokens (default: edutrack)
	TokenSecret string        // Required: shared secret for HS256 token signing
	TokenTTL    time.Duration // Optional: access token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./edutrack.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SMTPAddr     string // Optional: SMTP relay host:port for grade notifications
	SMTPFrom     string // Optional: From address for grade notifications
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Best effort: a missing .env file is not an error
	_ = godotenv.Load()

	cfg := Config{
		Issuer:      getEnvOrDefault("EDUTRACK_ISSUER", "edutrack"),
		TokenSecret: os.Getenv("EDUTRACK_TOKEN_SECRET"),
		TokenTTL:    getEnvDurationOrDefault("EDUTRACK_TOKEN_TTL", 24*time.Hour),

		DatabaseFile: getEnvOrDefault("EDUTRACK_DATABASE_FILE", "edutrack.db"),
		PepperFile:   getEnvOrDefault("EDUTRACK_PEPPER_FILE", "pepper"),

		SMTPAddr:     os.Getenv("SMTP_ADDR"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
