package config

import (
	"testing"
	"time"

	"github.com/inkwellapp/streak-service/internal/auth"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATASTORE", "")
	t.Setenv("AUTH_MODE", "")
	t.Setenv("CLERK_JWKS_REFRESH_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DataStore != DataStoreMemory {
		t.Fatalf("expected memory datastore, got %s", cfg.DataStore)
	}
	if cfg.Auth.Mode != auth.ModeNoop {
		t.Fatalf("expected noop auth, got %s", cfg.Auth.Mode)
	}
	if cfg.Auth.JWKSRefresh != 10*time.Minute {
		t.Fatalf("expected 10m JWKS refresh, got %s", cfg.Auth.JWKSRefresh)
	}
}

func TestLoadReadsJWKSRefresh(t *testing.T) {
	t.Setenv("CLERK_JWKS_REFRESH_MINUTES", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Auth.JWKSRefresh != 30*time.Minute {
		t.Fatalf("expected 30m JWKS refresh, got %s", cfg.Auth.JWKSRefresh)
	}
}

func TestLoadRejectsIncompleteFirestoreConfig(t *testing.T) {
	t.Setenv("DATASTORE", "firestore")
	t.Setenv("GCP_PROJECT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when firestore datastore has no project id")
	}
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	t.Setenv("DATASTORE", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported datastore")
	}

	t.Setenv("DATASTORE", "memory")
	t.Setenv("AUTH_MODE", "basic")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported auth mode")
	}
}
