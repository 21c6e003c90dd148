// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTLHours int

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Cleanup job
	CleanupIntervalHours int
	RejectedRetainDays   int
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	tokenTTL, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	ratePerMinute, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30"))
	cleanupInterval, _ := strconv.Atoi(getEnv("CLEANUP_INTERVAL_HOURS", "24"))
	rejectedRetain, _ := strconv.Atoi(getEnv("REJECTED_RETAIN_DAYS", "30"))

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/friendlink?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTLHours: tokenTTL,

		// Email settings (notifications are skipped when SMTP_HOST is empty)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@friendlink.app"),
		FromName:     getEnv("FROM_NAME", "FriendLink"),

		RateLimitPerMinute: ratePerMinute,
		RateLimitBurst:     rateBurst,

		CleanupIntervalHours: cleanupInterval,
		RejectedRetainDays:   rejectedRetain,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
