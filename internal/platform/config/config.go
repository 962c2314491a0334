// Package config reads the process configuration from the environment so
// main stays lean. Empty optional values (database, redis, kafka) select the
// in-memory fallbacks.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr               string
	DatabaseURL        string
	Redis              RedisConfig
	Kafka              KafkaConfig
	ConfirmationSecret string
	ConfirmationTTL    time.Duration
	SetupTokenTTL      time.Duration
	ProfessionCatalog  []string
	LogLevel           string
}

// RedisConfig holds the connection settings for the notification sent-set.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds the event export settings. Empty Brokers disables the
// Kafka publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr:               envOr("HELPERHUB_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ConfirmationSecret: os.Getenv("CONFIRMATION_SECRET"),
		ConfirmationTTL:    durationOr("CONFIRMATION_TTL", 48*time.Hour),
		SetupTokenTTL:      durationOr("SETUP_TOKEN_TTL", 24*time.Hour),
		LogLevel:           envOr("LOG_LEVEL", "info"),
	}
	if cfg.ConfirmationSecret == "" {
		// Development default, must be overridden in production.
		cfg.ConfirmationSecret = "dev-secret-change-in-production"
	}
	if catalog := os.Getenv("PROFESSION_CATALOG"); catalog != "" {
		cfg.ProfessionCatalog = strings.Split(catalog, ",")
	}

	cfg.Redis = RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka = KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   envOr("KAFKA_TOPIC", "helper-events"),
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
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
