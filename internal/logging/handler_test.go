// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/nexiotech/sitegate/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "sitegate-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return db
}

func testLogger(db *sql.DB) *slog.Logger {
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewEventLogHandler(inner, db))
}

func TestWarnIsMirroredToEventLog(t *testing.T) {
	db := testDB(t)
	logger := testLogger(db)

	logger.Warn("strapi fetch failed", "entity", "products", "status", 503)

	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	e := events[0]
	if e.Level != EventLevelWarning {
		t.Errorf("Level = %q", e.Level)
	}
	if e.Category != EventCategoryContent {
		t.Errorf("Category = %q, want content", e.Category)
	}
	if e.Message != "strapi fetch failed" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestInfoIsNotMirrored(t *testing.T) {
	db := testDB(t)
	logger := testLogger(db)

	logger.Info("server started", "addr", "localhost:8080")

	events, _ := store.New(db).ListRecentEvents(context.Background(), 10)
	if len(events) != 0 {
		t.Errorf("info record mirrored: %+v", events)
	}
}

func TestExplicitCategoryWins(t *testing.T) {
	db := testDB(t)
	logger := testLogger(db)

	logger.Error("strapi provider rejected event", "category", EventCategoryAnalytics)

	events, _ := store.New(db).ListRecentEvents(context.Background(), 10)
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].Category != EventCategoryAnalytics {
		t.Errorf("Category = %q, want analytics", events[0].Category)
	}
	if events[0].Level != EventLevelError {
		t.Errorf("Level = %q, want error", events[0].Level)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		if logger := NewLogger(level); logger == nil {
			t.Errorf("NewLogger(%q) returned nil", level)
		}
	}
}
