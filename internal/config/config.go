package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment. A .env
// file is honored for local development; real deployments set the variables
// directly.
type Config struct {
	Server struct {
		Port           int
		AllowedOrigins []string
	}

	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Auth struct {
		JWTSecret  string
		JWTExpiry  time.Duration
		BcryptCost int
		OTPExpiry  time.Duration
	}

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}

	RateLimit struct {
		RequestsPerSecond float64
		Burst             int
	}

	Logging struct {
		Development bool
	}
}

func Load() (*Config, error) {
	// Best effort: absence of a .env file is normal outside local dev.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server.Port = getEnvInt("PORT", 8080)
	cfg.Server.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", []string{"*"})

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "bahathjobs")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", "")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.Auth.JWTExpiry = getEnvDuration("JWT_EXPIRY", 24*time.Hour)
	cfg.Auth.BcryptCost = getEnvInt("BCRYPT_COST", 10)
	cfg.Auth.OTPExpiry = getEnvDuration("OTP_EXPIRY", 10*time.Minute)

	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "no-reply@bahathjobs.com")

	cfg.RateLimit.RequestsPerSecond = getEnvFloat("RATE_LIMIT_RPS", 20)
	cfg.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", 40)

	cfg.Logging.Development = getEnvBool("LOG_DEVELOPMENT", false)

	return cfg, nil
}

// DSN builds the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Database.Host, c.Database.User, c.Database.Password,
		c.Database.Name, c.Database.Port, c.Database.SSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
