package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mmynk/finapi/internal/config"
	"github.com/mmynk/finapi/internal/events"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := openStore(ctx, config.DBConfig{Driver: config.DriverMemory})
		if err != nil {
			t.Fatalf("openStore failed: %v", err)
		}
		store.Close()
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "finapi.db")
		store, err := openStore(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: path})
		if err != nil {
			t.Fatalf("openStore failed: %v", err)
		}
		store.Close()
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := openStore(ctx, config.DBConfig{Driver: "mysql"}); err == nil {
			t.Error("Expected error for unknown driver")
		}
	})
}

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	publisher := newPublisher(config.KafkaConfig{Topic: "statement_created"}, slog.Default())
	if _, ok := publisher.(events.NopPublisher); !ok {
		t.Errorf("Expected NopPublisher, got %T", publisher)
	}
}
