// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package webhook

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Invalidator removes a cached entry. Satisfied by the cache backend.
type Invalidator interface {
	Delete(ctx context.Context, key string) error
}

// DebounceConfig holds debouncer configuration.
type DebounceConfig struct {
	// Interval is the debounce window. Notifications for the same entity
	// within this window coalesce into a single invalidation.
	Interval time.Duration
	// MaxWait is the maximum time a notification may be held back. Even
	// under a steady edit stream, invalidation happens within this bound.
	MaxWait time.Duration
}

// DefaultDebounceConfig returns default debounce configuration.
func DefaultDebounceConfig() DebounceConfig {
	return DebounceConfig{
		Interval: 2 * time.Second,
		MaxWait:  10 * time.Second,
	}
}

// pendingInvalidation tracks a debounced notification.
type pendingInvalidation struct {
	notification Notification
	timer        *time.Timer
	firstSeen    time.Time
}

// Debouncer coalesces CMS notifications into cache invalidations.
type Debouncer struct {
	cache  Invalidator
	logger *slog.Logger
	config DebounceConfig

	mu      sync.Mutex
	pending map[string]*pendingInvalidation
	wg      sync.WaitGroup
}

// NewDebouncer creates a debouncer purging through the given cache.
func NewDebouncer(cache Invalidator, logger *slog.Logger, config DebounceConfig) *Debouncer {
	if config.Interval <= 0 {
		config = DefaultDebounceConfig()
	}
	return &Debouncer{
		cache:   cache,
		logger:  logger,
		config:  config,
		pending: make(map[string]*pendingInvalidation),
	}
}

// Notify queues a notification for debounced invalidation. Notifications for
// entities with no cache mapping are dropped.
func (d *Debouncer) Notify(n Notification) {
	if len(n.CacheKeys()) == 0 {
		d.logger.Debug("webhook for unmapped model ignored", "model", n.Model)
		return
	}

	key := n.dedupeKey()
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.pending[key]; ok {
		existing.notification = n

		if now.Sub(existing.firstSeen) >= d.config.MaxWait {
			d.purgeLocked(key)
			return
		}

		existing.timer.Reset(d.config.Interval)
		return
	}

	pe := &pendingInvalidation{
		notification: n,
		firstSeen:    now,
	}
	pe.timer = time.AfterFunc(d.config.Interval, func() {
		d.mu.Lock()
		d.purgeLocked(key)
		d.mu.Unlock()
	})
	d.pending[key] = pe
}

// purgeLocked invalidates a pending notification. Must be called with the
// lock held.
func (d *Debouncer) purgeLocked(key string) {
	pe, ok := d.pending[key]
	if !ok {
		return
	}
	pe.timer.Stop()
	delete(d.pending, key)

	d.wg.Add(1)
	go func(n Notification) {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, cacheKey := range n.CacheKeys() {
			if err := d.cache.Delete(ctx, cacheKey); err != nil {
				d.logger.Warn("cache invalidation failed",
					"key", cacheKey, "model", n.Model, "error", err)
				continue
			}
			d.logger.Info("cache invalidated by cms webhook",
				"key", cacheKey, "model", n.Model, "event", n.Event)
		}
	}(pe.notification)
}

// Flush immediately invalidates all pending notifications.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key := range d.pending {
		d.purgeLocked(key)
	}
}

// Stop flushes pending notifications and waits for in-flight invalidations.
func (d *Debouncer) Stop() {
	d.Flush()
	d.wg.Wait()
}

// PendingCount returns the number of held-back notifications.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
