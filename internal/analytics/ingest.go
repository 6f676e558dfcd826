// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mileusna/useragent"

	"github.com/nexiotech/sitegate/internal/geoip"
	"github.com/nexiotech/sitegate/internal/model"
	"github.com/nexiotech/sitegate/internal/store"
)

// Envelope is the wire form of a first-party ingest event.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestMeta carries the request attributes used for enrichment.
type RequestMeta struct {
	UserAgent string
	RemoteIP  string
	UserID    string
}

// Enrichment is derived server-side from the request.
type Enrichment struct {
	Browser string `json:"browser,omitempty"`
	OS      string `json:"os,omitempty"`
	Device  string `json:"device,omitempty"`
	Country string `json:"country,omitempty"`
	Bot     bool   `json:"bot,omitempty"`
}

// Ingestor accepts browser-posted events, enriches them and forwards them
// into the manager. Page views are additionally recorded in the operator
// event log with their enrichment, mirroring what a first-party analytics
// view needs.
type Ingestor struct {
	manager *Manager
	geo     *geoip.Resolver
	queries *store.Queries
	logger  *slog.Logger
}

// NewIngestor creates an Ingestor. geo and queries may be nil; enrichment
// and persistence degrade gracefully.
func NewIngestor(manager *Manager, geo *geoip.Resolver, queries *store.Queries, logger *slog.Logger) *Ingestor {
	return &Ingestor{manager: manager, geo: geo, queries: queries, logger: logger}
}

// Enrich derives browser, OS, device class and country from the request.
func (i *Ingestor) Enrich(meta RequestMeta) Enrichment {
	var e Enrichment
	if meta.UserAgent != "" {
		ua := useragent.Parse(meta.UserAgent)
		e.Browser = ua.Name
		e.OS = ua.OS
		e.Bot = ua.Bot
		switch {
		case ua.Mobile:
			e.Device = "mobile"
		case ua.Tablet:
			e.Device = "tablet"
		case ua.Bot:
			e.Device = "bot"
		default:
			e.Device = "desktop"
		}
	}
	if i.geo != nil && meta.RemoteIP != "" {
		e.Country = i.geo.Country(meta.RemoteIP)
	}
	return e
}

// Ingest decodes one envelope and dispatches it. Bot traffic is dropped
// after enrichment. Unknown envelope types are an error so clients notice
// schema drift.
func (i *Ingestor) Ingest(ctx context.Context, env Envelope, meta RequestMeta) error {
	enrichment := i.Enrich(meta)
	if enrichment.Bot {
		i.logger.Debug("ingest dropped bot traffic", "browser", enrichment.Browser)
		return nil
	}
	if meta.UserID != "" {
		ctx = WithUserID(ctx, meta.UserID)
	}

	switch env.Type {
	case "page_view":
		var e model.PageViewEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackPageView(ctx, e)
		i.recordPageView(ctx, e, enrichment)
	case "event":
		var e model.AnalyticsEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackEvent(ctx, e)
	case "ecommerce":
		var e model.EcommerceEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackEcommerce(ctx, e)
	case "user_interaction":
		var e model.UserInteractionEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackUserInteraction(ctx, e)
	case "form":
		var e model.FormEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackFormSubmission(ctx, e)
	case "content":
		var e model.ContentEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackContentEngagement(ctx, e)
	case "search":
		var e model.SearchEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackSearch(ctx, e)
	case "language":
		var e model.LanguageEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackLanguageChange(ctx, e)
	case "performance":
		var e model.PerformanceEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackPerformance(ctx, e)
	case "error":
		var e model.ErrorEvent
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
		i.manager.TrackError(ctx, e)
	default:
		return fmt.Errorf("unknown ingest event type %q", env.Type)
	}
	return nil
}

// recordPageView appends an enriched page view to the operator event log.
func (i *Ingestor) recordPageView(ctx context.Context, e model.PageViewEvent, enrichment Enrichment) {
	if i.queries == nil {
		return
	}

	metadata, err := json.Marshal(struct {
		Path string `json:"path"`
		Enrichment
	}{Path: e.Path, Enrichment: enrichment})
	if err != nil {
		return
	}

	if err := i.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:    "INFO",
		Category: "analytics",
		Message:  "page view",
		Metadata: string(metadata),
	}); err != nil {
		i.logger.Warn("recording page view failed", "error", err)
	}
}
