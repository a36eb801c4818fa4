package db

import (
	"context"
	"testing"
	"time"
)

func TestOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 3 {
		t.Fatalf("expected MaxOpenConns 3, got %d", opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected ConnMaxLifetime 30m, got %v", opts.ConnMaxLifetime)
	}
	if opts.MaxIdleConns != DefaultServerOptions().MaxIdleConns {
		t.Fatalf("expected untouched MaxIdleConns default")
	}
}

func TestOptionsFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != DefaultServerOptions().MaxOpenConns {
		t.Fatalf("expected default MaxOpenConns, got %d", opts.MaxOpenConns)
	}
}

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}
