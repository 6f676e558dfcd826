// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nexiotech/sitegate/internal/content"
	"github.com/nexiotech/sitegate/internal/erpnext"
)

// warmTimeout bounds a single cache refresh cycle so a slow upstream
// cannot stall the next tick.
const warmTimeout = 30 * time.Second

// Scheduler runs background jobs: periodic content cache warmup and an
// ERP reachability probe.
type Scheduler struct {
	content   *content.Service
	erp       *erpnext.Client
	warmEvery time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// New creates a new scheduler instance. warmEvery is the content cache
// refresh period and should match the cache TTL so entries are re-fetched
// before they expire.
func New(contentSvc *content.Service, erp *erpnext.Client, warmEvery time.Duration, logger *slog.Logger) *Scheduler {
	if warmEvery <= 0 {
		warmEvery = 2 * time.Minute
	}
	return &Scheduler{
		content:   contentSvc,
		erp:       erp,
		warmEvery: warmEvery,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers the recurring jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@every "+s.warmEvery.String(), func() {
		s.warmContent()
	})
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc("*/5 * * * *", func() {
		s.pingERP()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) warmContent() {
	if s.content == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	start := time.Now()
	s.content.Warm(ctx)
	s.logger.Debug("content cache warmed", "duration", time.Since(start))
}

func (s *Scheduler) pingERP() {
	if s.erp == nil || !s.erp.Configured() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.erp.Ping(ctx); err != nil {
		s.logger.Warn("erp unreachable", "error", err)
	}
}
