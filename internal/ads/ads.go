// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ads serves the promotional slide rotation. Slides come from the
// CMS when one is configured and from a small bundled set otherwise, with
// the same degrade-to-fallback policy as the rest of the content layer.
package ads

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/nexiotech/sitegate/internal/cache"
	"github.com/nexiotech/sitegate/internal/model"
	"github.com/nexiotech/sitegate/internal/strapi"
)

// Slide is one promo slide.
type Slide struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Image      string     `json:"image,omitempty"`
	TargetURL  string     `json:"targetUrl"`
	Audiences  []string   `json:"audiences"` // empty = every audience
	Priority   int        `json:"priority"`
	StartsAt   *time.Time `json:"startsAt,omitempty"`
	EndsAt     *time.Time `json:"endsAt,omitempty"`
	TrackingID string     `json:"trackingId,omitempty"`
}

// FromCMS converts the flattened CMS slide, parsing its date window.
// Unparseable dates leave the window side open rather than dropping the
// slide.
func FromCMS(raw strapi.RawAdSlide) Slide {
	return Slide{
		ID:         raw.ID,
		Title:      raw.Title,
		Image:      raw.Image,
		TargetURL:  raw.TargetURL,
		Audiences:  raw.Audiences,
		Priority:   raw.Priority,
		StartsAt:   parseTime(raw.StartsAt),
		EndsAt:     parseTime(raw.EndsAt),
		TrackingID: raw.TrackingID,
	}
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// Source lists the slides from the remote provider.
type Source interface {
	List(ctx context.Context) ([]Slide, error)
}

// Tracker receives click events. Satisfied by the analytics manager.
type Tracker interface {
	TrackEvent(ctx context.Context, e model.AnalyticsEvent)
}

// Manager resolves, filters and click-tracks slides.
type Manager struct {
	configured func() bool
	source     Source
	cache      *cache.Typed[[]Slide]
	tracker    Tracker
	logger     *slog.Logger
}

// Deps wires the manager.
type Deps struct {
	Configured func() bool
	Source     Source
	Cache      cache.Cacher
	TTL        time.Duration
	Tracker    Tracker
	Logger     *slog.Logger
}

// New builds a Manager.
func New(d Deps) *Manager {
	return &Manager{
		configured: d.Configured,
		source:     d.Source,
		cache:      cache.NewTyped[[]Slide](d.Cache, d.TTL),
		tracker:    d.Tracker,
		logger:     d.Logger,
	}
}

// resolve applies the content resolution policy to the slide set.
func (m *Manager) resolve(ctx context.Context) []Slide {
	if !m.configured() {
		return defaultSlides()
	}
	if hit, ok := m.cache.Get(ctx, "ads"); ok {
		return *hit
	}

	slides, err := m.source.List(ctx)
	if err != nil {
		m.logger.Warn("ad slide fetch failed, serving fallback", "error", err)
		return defaultSlides()
	}
	if len(slides) == 0 {
		return defaultSlides()
	}

	if err := m.cache.Set(ctx, "ads", &slides); err != nil {
		m.logger.Warn("ad slide cache store failed", "error", err)
	}
	return slides
}

// Active returns the slides whose date window contains now and whose
// audience tags admit the requested audience, sorted by priority descending
// then id ascending. An empty audience matches every slide.
func (m *Manager) Active(ctx context.Context, now time.Time, audience string) []Slide {
	var active []Slide
	for _, s := range m.resolve(ctx) {
		if s.StartsAt != nil && now.Before(*s.StartsAt) {
			continue
		}
		if s.EndsAt != nil && now.After(*s.EndsAt) {
			continue
		}
		if !audienceMatch(s.Audiences, audience) {
			continue
		}
		active = append(active, s)
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].ID < active[j].ID
	})
	if active == nil {
		active = []Slide{}
	}
	return active
}

func audienceMatch(tags []string, audience string) bool {
	if audience == "" || len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if t == audience {
			return true
		}
	}
	return false
}

// Click records a click on the slide and returns its target URL. The second
// return is false for an unknown slide id or one the given audience is not
// currently served; a slide outside its date window cannot collect clicks.
// Tracking is fire-and-forget.
func (m *Manager) Click(ctx context.Context, id int64, audience string) (string, bool) {
	for _, s := range m.Active(ctx, time.Now(), audience) {
		if s.ID != id {
			continue
		}
		label := s.TrackingID
		if label == "" {
			label = s.Title
		}
		m.tracker.TrackEvent(ctx, model.AnalyticsEvent{
			Action:   "ad_click",
			Category: "ads",
			Label:    label,
		})
		return s.TargetURL, true
	}
	return "", false
}

// defaultSlides is the bundled rotation shown when no CMS is configured or
// reachable.
func defaultSlides() []Slide {
	return []Slide{
		{
			ID:        1,
			Title:     "Entry-E: ERP for growing teams",
			Image:     "/img/ads/entry-e.webp",
			TargetURL: "/products/entry-e",
			Audiences: []string{},
			Priority:  10,
		},
		{
			ID:        2,
			Title:     "Business in a Box",
			Image:     "/img/ads/business-in-a-box.webp",
			TargetURL: "/products/business-in-a-box",
			Audiences: []string{},
			Priority:  5,
		},
		{
			ID:        3,
			Title:     "Book a free consultation",
			TargetURL: "/booking",
			Audiences: []string{"returning"},
			Priority:  1,
		},
	}
}
