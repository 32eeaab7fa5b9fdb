package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. DatabaseURL and KafkaBrokers are
// optional: without them the app runs on the in-memory store and a no-op
// event publisher.
type Config struct {
	Port   string `envconfig:"PORT" default:"8000"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	JWTSecret         string `envconfig:"JWT_SECRET"`
	AttestationSecret string `envconfig:"ATTESTATION_SECRET"`

	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"coffee.orders.completed"`

	R2AccessKey     string `envconfig:"R2_ACCESS_KEY" default:""`
	R2SecretKey     string `envconfig:"R2_SECRET_KEY" default:""`
	R2BucketName    string `envconfig:"R2_BUCKET_NAME" default:""`
	R2Endpoint      string `envconfig:"R2_ENDPOINT" default:""`
	R2PublicBaseURL string `envconfig:"R2_PUBLIC_BASE_URL" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads a .env file outside production, then the environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.AttestationSecret == "" {
		return nil, errors.New("ATTESTATION_SECRET is required")
	}

	return &cfg, nil
}

// R2Configured reports whether all object-storage settings are present.
func (c *Config) R2Configured() bool {
	return c.R2AccessKey != "" &&
		c.R2SecretKey != "" &&
		c.R2BucketName != "" &&
		c.R2Endpoint != "" &&
		c.R2PublicBaseURL != ""
}
