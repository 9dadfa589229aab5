package app

import (
	"os"
	"strconv"
	"time"

	"github.com/critiqhq/critiq/pkg/confirmcode"
	"github.com/critiqhq/critiq/pkg/jwtx"
)

type Config struct {
	SecretKey string // Required: keyed-hash secret for confirmation codes and JWT signing

	Issuer       string        // Optional: issuer claim for tokens (default: critiq)
	AccessTTL    time.Duration // Optional: access token lifetime (default: 24h)
	CodeWindow   time.Duration // Optional: confirmation-code bucket size (default: 24h)
	CodeMaxAge   int           // Optional: max windows a code stays valid, 0 = no expiry
	DatabaseFile string        // Optional: path to SQLite database file (default: ./critiq.db)

	SMTPHost string // Optional: SMTP relay; empty means log-only code delivery
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	SuperuserName  string // Optional: bootstrap superuser created at startup if absent
	SuperuserEmail string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SecretKey: os.Getenv("CRITIQ_SECRET_KEY"),

		Issuer:       getEnvOrDefault("CRITIQ_ISSUER", "critiq"),
		AccessTTL:    getEnvDurationOrDefault("CRITIQ_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		CodeWindow:   getEnvDurationOrDefault("CRITIQ_CODE_WINDOW", confirmcode.DefaultWindow),
		CodeMaxAge:   getEnvIntOrDefault("CRITIQ_CODE_MAX_WINDOWS", 0),
		DatabaseFile: getEnvOrDefault("CRITIQ_DATABASE_FILE", "critiq.db"),

		SMTPHost: os.Getenv("CRITIQ_SMTP_HOST"),
		SMTPPort: getEnvIntOrDefault("CRITIQ_SMTP_PORT", 587),
		SMTPUser: os.Getenv("CRITIQ_SMTP_USER"),
		SMTPPass: os.Getenv("CRITIQ_SMTP_PASS"),
		MailFrom: getEnvOrDefault("CRITIQ_MAIL_FROM", "noreply@critiq.local"),

		SuperuserName:  os.Getenv("CRITIQ_SUPERUSER_USERNAME"),
		SuperuserEmail: os.Getenv("CRITIQ_SUPERUSER_EMAIL"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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
