// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
)

// testDB creates a temporary migrated test database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "sitegate-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
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

func TestContactSubmissionRoundTrip(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	id, err := q.CreateContactSubmission(ctx, CreateContactSubmissionParams{
		PublicID: "sub-1",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Hello",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission: %v", err)
	}

	s, err := q.GetContactSubmission(ctx, id)
	if err != nil {
		t.Fatalf("GetContactSubmission: %v", err)
	}
	if s.Name != "Jane Doe" || s.Email != "jane@example.com" || s.Forwarded {
		t.Errorf("unexpected submission: %+v", s)
	}

	if err := q.MarkContactForwarded(ctx, id); err != nil {
		t.Fatalf("MarkContactForwarded: %v", err)
	}
	s, _ = q.GetContactSubmission(ctx, id)
	if !s.Forwarded {
		t.Error("expected forwarded flag set")
	}

	n, err := q.CountContactSubmissions(ctx)
	if err != nil || n != 1 {
		t.Errorf("count = %d, err %v", n, err)
	}
}

func TestNewsletterDuplicateIsNoop(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	if err := q.CreateNewsletterSignup(ctx, "a@b.co"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if err := q.CreateNewsletterSignup(ctx, "a@b.co"); err != nil {
		t.Fatalf("duplicate signup should not error: %v", err)
	}
}

func TestEventLog(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	if err := q.CreateEvent(ctx, CreateEventParams{
		Level:    "warning",
		Category: "content",
		Message:  "strapi fetch failed",
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].Metadata != "{}" {
		t.Errorf("empty metadata should default to {}, got %q", events[0].Metadata)
	}
}

func TestSiteSettings(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	v, err := q.GetSiteSetting(ctx, "STRAPI_API_TOKEN")
	if err != nil || v != "" {
		t.Fatalf("absent setting: %q, %v", v, err)
	}

	if err := q.SetSiteSetting(ctx, "STRAPI_API_TOKEN", "tok1"); err != nil {
		t.Fatalf("SetSiteSetting: %v", err)
	}
	if err := q.SetSiteSetting(ctx, "STRAPI_API_TOKEN", "tok2"); err != nil {
		t.Fatalf("SetSiteSetting upsert: %v", err)
	}

	v, err = q.GetSiteSetting(ctx, "STRAPI_API_TOKEN")
	if err != nil || v != "tok2" {
		t.Errorf("got %q, %v; want tok2", v, err)
	}
}

func TestContentSnapshots(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	payload, _, err := q.GetContentSnapshot(ctx, "products")
	if err != nil || payload != nil {
		t.Fatalf("absent snapshot: %v, %v", payload, err)
	}

	if err := q.SaveContentSnapshot(ctx, "products", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("SaveContentSnapshot: %v", err)
	}

	payload, fetchedAt, err := q.GetContentSnapshot(ctx, "products")
	if err != nil {
		t.Fatalf("GetContentSnapshot: %v", err)
	}
	if string(payload) != `[{"id":1}]` {
		t.Errorf("payload = %s", payload)
	}
	if fetchedAt.IsZero() {
		t.Error("fetchedAt not recorded")
	}
}
