// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
)

func TestNew(t *testing.T) {
	logger := slog.Default()

	// Creation without a content service or ERP client is allowed.
	s := New(nil, nil, time.Minute, logger)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cron == nil {
		t.Error("New() scheduler has nil cron")
	}
	if s.logger != logger {
		t.Error("New() scheduler has wrong logger")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	logger := slog.Default()
	s := New(nil, nil, time.Minute, logger)

	err := s.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got := len(s.cron.Entries()); got != 2 {
		t.Errorf("Start() registered %d jobs, want 2", got)
	}

	s.Stop()
}

func TestScheduler_WarmIntervalFollowsCacheTTL(t *testing.T) {
	s := New(nil, nil, 90*time.Second, slog.Default())
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	// The warm job runs on a fixed delay matching the cache TTL, so
	// entries are refreshed before they go stale.
	var found bool
	for _, e := range s.cron.Entries() {
		d, ok := e.Schedule.(cron.ConstantDelaySchedule)
		if !ok {
			continue
		}
		found = true
		if d.Delay != 90*time.Second {
			t.Errorf("warm delay = %v, want 90s", d.Delay)
		}
	}
	if !found {
		t.Error("no interval-based warm job registered")
	}
}

func TestScheduler_WarmIntervalDefault(t *testing.T) {
	s := New(nil, nil, 0, slog.Default())
	if s.warmEvery != 2*time.Minute {
		t.Errorf("warmEvery = %v, want 2m", s.warmEvery)
	}
}

func TestScheduler_NilDependenciesSkipJobs(t *testing.T) {
	s := New(nil, nil, time.Minute, slog.Default())

	// Neither job should panic when its dependency is absent.
	s.warmContent()
	s.pingERP()
}
