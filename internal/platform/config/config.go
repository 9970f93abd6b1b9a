// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server needs to start.
type Config struct {
	Addr     string
	LogLevel string

	PostgresURL string

	Redis RedisConfig

	Kafka KafkaConfig

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// AdminTokenHash is the bcrypt hash of the token required on the
	// reference-data admin endpoints.
	AdminTokenHash string

	ShutdownTimeout time.Duration
}

// RedisConfig configures the reference-data cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig configures the outbound event stream. Empty brokers disable
// publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv reads configuration from the environment, applying development
// defaults where a value is absent.
func FromEnv() Config {
	cfg := Config{
		Addr:            envOr("CONTACT_REGISTRY_ADDR", ":8080"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		JWTSigningKey:   envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:       envOr("JWT_ISSUER", "contact-registry"),
		JWTAudience:     envOr("JWT_AUDIENCE", "contact-registry-api"),
		AdminTokenHash:  os.Getenv("ADMIN_TOKEN_HASH"),
		ShutdownTimeout: 10 * time.Second,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			CacheTTL:     durationOr("REFDATA_CACHE_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Topic: envOr("KAFKA_TOPIC", "contact-registry-events"),
		},
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
