// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/nexiotech/sitegate/internal/httpx"
	"github.com/nexiotech/sitegate/internal/model"
)

// MatomoOptions configures the Matomo HTTP Tracking API provider.
type MatomoOptions struct {
	BaseURL string // Matomo instance root
	SiteID  string
	Timeout time.Duration
}

// Matomo dispatches events through a self-hosted Matomo instance.
type Matomo struct {
	http   *httpx.Client
	siteID string

	mu      sync.RWMutex
	userID  string
	consent bool
}

// NewMatomo creates the provider. The instance URL is validated in Init.
func NewMatomo(opts MatomoOptions) *Matomo {
	return &Matomo{
		http:    httpx.New(httpx.Options{BaseURL: opts.BaseURL, Timeout: opts.Timeout}),
		siteID:  opts.SiteID,
		consent: true,
	}
}

// Name identifies the provider in logs.
func (m *Matomo) Name() string { return "matomo" }

// Init validates the configuration.
func (m *Matomo) Init(context.Context) error {
	if m.siteID == "" {
		return fmt.Errorf("matomo site id missing")
	}
	return nil
}

// send issues one tracking hit. Matomo's API is query-parameter based.
func (m *Matomo) send(ctx context.Context, params url.Values) error {
	m.mu.RLock()
	consent, userID := m.consent, m.userID
	m.mu.RUnlock()
	if !consent {
		return nil
	}
	if id := UserIDFromContext(ctx); id != "" {
		userID = id
	}

	params.Set("idsite", m.siteID)
	params.Set("rec", "1")
	params.Set("apiv", "1")
	if userID != "" {
		params.Set("uid", userID)
	}
	return m.http.Get(ctx, "/matomo.php", params, nil)
}

// TrackPageView sends an action_name hit.
func (m *Matomo) TrackPageView(ctx context.Context, e model.PageViewEvent) error {
	q := url.Values{}
	q.Set("action_name", e.Title)
	q.Set("url", e.Path)
	if e.Referrer != "" {
		q.Set("urlref", e.Referrer)
	}
	if e.Language != "" {
		q.Set("lang", e.Language)
	}
	return m.send(ctx, q)
}

// TrackEvent sends an e_c/e_a/e_n/e_v event hit.
func (m *Matomo) TrackEvent(ctx context.Context, e model.AnalyticsEvent) error {
	q := url.Values{}
	q.Set("e_c", e.Category)
	q.Set("e_a", e.Action)
	if e.Label != "" {
		q.Set("e_n", e.Label)
	}
	if e.Value != 0 {
		q.Set("e_v", strconv.FormatInt(e.Value, 10))
	}
	return m.send(ctx, q)
}

// TrackEcommerce sends the commerce action as an event with revenue.
func (m *Matomo) TrackEcommerce(ctx context.Context, e model.EcommerceEvent) error {
	q := url.Values{}
	q.Set("e_c", "ecommerce")
	q.Set("e_a", e.Action)
	if e.Value != 0 {
		q.Set("revenue", strconv.FormatFloat(e.Value, 'f', 2, 64))
	}
	return m.send(ctx, q)
}

// TrackUserInteraction sends an interaction event hit.
func (m *Matomo) TrackUserInteraction(ctx context.Context, e model.UserInteractionEvent) error {
	q := url.Values{}
	q.Set("e_c", "interaction")
	q.Set("e_a", e.Action)
	q.Set("e_n", e.Element)
	return m.send(ctx, q)
}

// TrackFormSubmission sends a form event hit.
func (m *Matomo) TrackFormSubmission(ctx context.Context, e model.FormEvent) error {
	q := url.Values{}
	q.Set("e_c", "form")
	q.Set("e_a", e.Step)
	q.Set("e_n", e.Form)
	return m.send(ctx, q)
}

// TrackContentEngagement uses Matomo's content tracking parameters.
func (m *Matomo) TrackContentEngagement(ctx context.Context, e model.ContentEvent) error {
	q := url.Values{}
	q.Set("c_n", e.ContentID)
	q.Set("c_p", e.ContentType)
	if e.Action != "view" {
		q.Set("c_i", e.Action)
	}
	return m.send(ctx, q)
}

// TrackSearch uses Matomo's site search parameters.
func (m *Matomo) TrackSearch(ctx context.Context, e model.SearchEvent) error {
	q := url.Values{}
	q.Set("search", e.Query)
	q.Set("search_count", strconv.Itoa(e.Results))
	return m.send(ctx, q)
}

// TrackLanguageChange sends a language event hit.
func (m *Matomo) TrackLanguageChange(ctx context.Context, e model.LanguageEvent) error {
	q := url.Values{}
	q.Set("e_c", "language")
	q.Set("e_a", "change")
	q.Set("e_n", e.From+">"+e.To)
	return m.send(ctx, q)
}

// TrackPerformance sends a performance event hit.
func (m *Matomo) TrackPerformance(ctx context.Context, e model.PerformanceEvent) error {
	q := url.Values{}
	q.Set("e_c", "performance")
	q.Set("e_a", e.Metric)
	q.Set("e_v", strconv.FormatFloat(e.Value, 'f', 2, 64))
	return m.send(ctx, q)
}

// TrackError sends an error event hit.
func (m *Matomo) TrackError(ctx context.Context, e model.ErrorEvent) error {
	q := url.Values{}
	q.Set("e_c", "error")
	q.Set("e_a", e.Message)
	if e.Source != "" {
		q.Set("e_n", e.Source)
	}
	return m.send(ctx, q)
}

// SetUserID attaches a uid to subsequent hits.
func (m *Matomo) SetUserID(id string) {
	m.mu.Lock()
	m.userID = id
	m.mu.Unlock()
}

// SetUserProperties is unsupported by the tracking API; ignored.
func (m *Matomo) SetUserProperties(map[string]string) {}

// SetConsent suppresses dispatch entirely when consent is withdrawn.
func (m *Matomo) SetConsent(granted bool) {
	m.mu.Lock()
	m.consent = granted
	m.mu.Unlock()
}
