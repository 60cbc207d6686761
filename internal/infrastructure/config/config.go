package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the service configuration. Every value comes from the
// environment; a .env file is loaded beforehand by cmd/api.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"local"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	AWS    AWSConfig
	Tables TablesConfig
	Cache  CacheConfig
}

// AWSConfig holds the DynamoDB connection settings. Local DynamoDB does not
// validate credentials but the SDK requires them, hence the defaults.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT" env-default:""`
}

type TablesConfig struct {
	Quotes    string `env:"QUOTES_TABLE" env-default:"quotes"`
	Invoices  string `env:"INVOICES_TABLE" env-default:"invoices"`
	Customers string `env:"CUSTOMERS_TABLE" env-default:"customers"`
}

// CacheConfig controls the snapshot placeholder and the view memo.
// An empty SnapshotDir disables the snapshot placeholder.
type CacheConfig struct {
	SnapshotDir string        `env:"SNAPSHOT_CACHE_DIR" env-default:""`
	ViewTTL     time.Duration `env:"VIEW_CACHE_TTL" env-default:"5m"`
	ViewCleanup time.Duration `env:"VIEW_CACHE_CLEANUP" env-default:"10m"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Cache.ViewTTL <= 0 {
		return fmt.Errorf("VIEW_CACHE_TTL must be positive, got %s", c.Cache.ViewTTL)
	}
	if c.Cache.ViewCleanup < 0 {
		return fmt.Errorf("VIEW_CACHE_CLEANUP must not be negative, got %s", c.Cache.ViewCleanup)
	}
	return nil
}

// IsProduction reports whether the service runs in a production environment.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
