package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "AWS_REGION", "DYNAMODB_ENDPOINT",
		"QUOTES_TABLE", "INVOICES_TABLE", "CUSTOMERS_TABLE",
		"SNAPSHOT_CACHE_DIR", "VIEW_CACHE_TTL", "VIEW_CACHE_CLEANUP",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Errorf("unexpected port: %q", cfg.Port)
	}
	if cfg.AWS.Region != "us-east-1" || cfg.AWS.AccessKeyID == "" {
		t.Errorf("unexpected aws config: %+v", cfg.AWS)
	}
	if cfg.Tables.Quotes != "quotes" || cfg.Tables.Invoices != "invoices" || cfg.Tables.Customers != "customers" {
		t.Errorf("unexpected tables: %+v", cfg.Tables)
	}
	if cfg.Cache.ViewTTL != 5*time.Minute || cfg.Cache.ViewCleanup != 10*time.Minute {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.IsProduction() {
		t.Errorf("expected non-production default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("QUOTES_TABLE", "crm_quotes")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("SNAPSHOT_CACHE_DIR", "/var/cache/pipeline")
	t.Setenv("VIEW_CACHE_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected Port=9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production environment")
	}
	if cfg.Tables.Quotes != "crm_quotes" {
		t.Errorf("expected quotes table override, got %s", cfg.Tables.Quotes)
	}
	if cfg.AWS.DynamoDBEndpoint != "http://dynamodb:8000" {
		t.Errorf("unexpected endpoint %s", cfg.AWS.DynamoDBEndpoint)
	}
	if cfg.Cache.SnapshotDir != "/var/cache/pipeline" || cfg.Cache.ViewTTL != 30*time.Second {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("VIEW_CACHE_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non positive ttl", func(t *testing.T) {
		t.Setenv("VIEW_CACHE_TTL", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
