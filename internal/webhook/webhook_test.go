// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package webhook

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type recordingCache struct {
	mu      sync.Mutex
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *recordingCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.deleted...)
}

func notification(model, slug string) Notification {
	n := Notification{Event: "entry.update", Model: model}
	n.Entry.Slug = slug
	return n
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		model string
		slug  string
		want  []string
	}{
		{"product", "", []string{"products"}},
		{"api::product.product", "", []string{"products"}},
		{"team-member", "", []string{"team"}},
		{"page", "about", []string{"page:about"}},
		{"page", "", nil},
		{"unknown-model", "", nil},
	}

	for _, tt := range tests {
		got := notification(tt.model, tt.slug).CacheKeys()
		if len(got) != len(tt.want) {
			t.Errorf("CacheKeys(%q, %q) = %v, want %v", tt.model, tt.slug, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("CacheKeys(%q, %q) = %v, want %v", tt.model, tt.slug, got, tt.want)
			}
		}
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	cache := &recordingCache{}
	d := NewDebouncer(cache, slog.Default(), DebounceConfig{
		Interval: 20 * time.Millisecond,
		MaxWait:  time.Second,
	})
	defer d.Stop()

	// Five rapid saves of the same product collapse into one purge.
	for i := 0; i < 5; i++ {
		d.Notify(notification("product", ""))
	}
	if got := d.PendingCount(); got != 1 {
		t.Fatalf("PendingCount() = %d, want 1", got)
	}

	deadline := time.Now().Add(time.Second)
	for len(cache.keys()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	keys := cache.keys()
	if len(keys) != 1 || keys[0] != "products" {
		t.Errorf("deleted keys = %v, want [products]", keys)
	}
}

func TestDebouncerSeparatesEntities(t *testing.T) {
	cache := &recordingCache{}
	d := NewDebouncer(cache, slog.Default(), DebounceConfig{
		Interval: 10 * time.Millisecond,
		MaxWait:  time.Second,
	})

	d.Notify(notification("product", ""))
	d.Notify(notification("page", "about"))
	if got := d.PendingCount(); got != 2 {
		t.Fatalf("PendingCount() = %d, want 2", got)
	}

	d.Stop()

	keys := cache.keys()
	if len(keys) != 2 {
		t.Fatalf("deleted keys = %v, want 2 entries", keys)
	}
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen["products"] || !seen["page:about"] {
		t.Errorf("deleted keys = %v, want products and page:about", keys)
	}
}

func TestDebouncerIgnoresUnmappedModels(t *testing.T) {
	cache := &recordingCache{}
	d := NewDebouncer(cache, slog.Default(), DefaultDebounceConfig())
	defer d.Stop()

	d.Notify(notification("navigation", ""))
	if got := d.PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d, want 0", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	cache := &recordingCache{}
	d := NewDebouncer(cache, slog.Default(), DebounceConfig{
		Interval: time.Hour, // never fires on its own
		MaxWait:  2 * time.Hour,
	})

	d.Notify(notification("service", ""))
	d.Stop()

	keys := cache.keys()
	if len(keys) != 1 || keys[0] != "services" {
		t.Errorf("deleted keys after Stop = %v, want [services]", keys)
	}
}
