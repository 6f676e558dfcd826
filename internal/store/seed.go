// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nexiotech/sitegate/internal/fallback"
)

// Seed stores the bundled content as snapshots so a fresh database has a
// last-known-good payload for every entity before the first upstream fetch.
// It is idempotent: existing snapshots are never overwritten.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}
	queries := New(db)

	payload, _, err := queries.GetContentSnapshot(ctx, "products")
	if err != nil {
		return fmt.Errorf("checking for existing snapshots: %w", err)
	}
	if payload != nil {
		slog.Info("content snapshots already present, skipping seed")
		return nil
	}

	entities := map[string]any{
		"products":     fallback.Products(),
		"services":     fallback.Services(),
		"testimonials": fallback.Testimonials(),
		"team":         fallback.TeamMembers(),
		"case_studies": fallback.CaseStudies(),
		"industries":   fallback.Industries(),
		"jobs":         fallback.JobListings(),
		"client_logos": fallback.ClientLogos(),
		"faqs":         fallback.FAQItems(),
		"pages":        fallback.Pages(),
	}

	for entity, data := range entities {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encoding %s seed: %w", entity, err)
		}
		if err := queries.SaveContentSnapshot(ctx, entity, raw); err != nil {
			return fmt.Errorf("seeding %s snapshot: %w", entity, err)
		}
	}

	slog.Info("seeded content snapshots", "entities", len(entities))
	return nil
}
