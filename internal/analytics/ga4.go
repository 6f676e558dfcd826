// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexiotech/sitegate/internal/httpx"
	"github.com/nexiotech/sitegate/internal/model"
)

const ga4Endpoint = "https://www.google-analytics.com"

// GA4Options configures the Google Analytics 4 Measurement Protocol provider.
type GA4Options struct {
	MeasurementID string
	APISecret     string
	BaseURL       string // override for tests; defaults to the Google endpoint
	Timeout       time.Duration
}

// GA4 dispatches events through the GA4 Measurement Protocol.
type GA4 struct {
	http          *httpx.Client
	measurementID string
	apiSecret     string

	// clientID identifies this server instance to GA4; the protocol
	// requires one even for server-side hits.
	clientID string

	mu      sync.RWMutex
	userID  string
	props   map[string]string
	consent bool
}

// NewGA4 creates the provider. Credentials are validated in Init.
func NewGA4(opts GA4Options) *GA4 {
	base := opts.BaseURL
	if base == "" {
		base = ga4Endpoint
	}
	return &GA4{
		http:          httpx.New(httpx.Options{BaseURL: base, Timeout: opts.Timeout}),
		measurementID: opts.MeasurementID,
		apiSecret:     opts.APISecret,
		clientID:      uuid.NewString(),
		consent:       true,
	}
}

// Name identifies the provider in logs.
func (g *GA4) Name() string { return "ga4" }

// Init validates the credentials.
func (g *GA4) Init(context.Context) error {
	if g.measurementID == "" || g.apiSecret == "" {
		return fmt.Errorf("ga4 measurement id or api secret missing")
	}
	return nil
}

func (g *GA4) send(ctx context.Context, name string, params map[string]any) error {
	g.mu.RLock()
	consent, userID, props := g.consent, g.userID, g.props
	g.mu.RUnlock()
	if !consent {
		return nil
	}
	if id := UserIDFromContext(ctx); id != "" {
		userID = id
	}

	payload := map[string]any{
		"client_id": g.clientID,
		"events": []map[string]any{
			{"name": name, "params": params},
		},
	}
	if userID != "" {
		payload["user_id"] = userID
	}
	if len(props) > 0 {
		userProps := make(map[string]any, len(props))
		for k, v := range props {
			userProps[k] = map[string]any{"value": v}
		}
		payload["user_properties"] = userProps
	}

	q := url.Values{}
	q.Set("measurement_id", g.measurementID)
	q.Set("api_secret", g.apiSecret)
	return g.http.Post(ctx, "/mp/collect?"+q.Encode(), payload, nil)
}

// TrackPageView sends a page_view hit.
func (g *GA4) TrackPageView(ctx context.Context, e model.PageViewEvent) error {
	return g.send(ctx, "page_view", map[string]any{
		"page_location": e.Path,
		"page_title":    e.Title,
		"page_referrer": e.Referrer,
		"language":      e.Language,
	})
}

// TrackEvent sends a custom event named after the action.
func (g *GA4) TrackEvent(ctx context.Context, e model.AnalyticsEvent) error {
	return g.send(ctx, e.Action, map[string]any{
		"event_category": e.Category,
		"event_label":    e.Label,
		"value":          e.Value,
	})
}

// TrackEcommerce sends the commerce action with its item list.
func (g *GA4) TrackEcommerce(ctx context.Context, e model.EcommerceEvent) error {
	items := make([]map[string]any, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, map[string]any{
			"item_id":   it.ID,
			"item_name": it.Name,
			"price":     it.Price,
			"quantity":  it.Quantity,
		})
	}
	return g.send(ctx, e.Action, map[string]any{
		"currency": e.Currency,
		"value":    e.Value,
		"items":    items,
	})
}

// TrackUserInteraction sends a user_interaction event.
func (g *GA4) TrackUserInteraction(ctx context.Context, e model.UserInteractionEvent) error {
	return g.send(ctx, "user_interaction", map[string]any{
		"element": e.Element,
		"action":  e.Action,
		"page":    e.Page,
	})
}

// TrackFormSubmission sends a form lifecycle event.
func (g *GA4) TrackFormSubmission(ctx context.Context, e model.FormEvent) error {
	return g.send(ctx, "form_"+e.Step, map[string]any{
		"form":   e.Form,
		"reason": e.Reason,
	})
}

// TrackContentEngagement sends a content engagement event.
func (g *GA4) TrackContentEngagement(ctx context.Context, e model.ContentEvent) error {
	return g.send(ctx, "content_engagement", map[string]any{
		"content_type": e.ContentType,
		"content_id":   e.ContentID,
		"action":       e.Action,
	})
}

// TrackSearch sends a search event.
func (g *GA4) TrackSearch(ctx context.Context, e model.SearchEvent) error {
	return g.send(ctx, "search", map[string]any{
		"search_term": e.Query,
		"results":     e.Results,
	})
}

// TrackLanguageChange sends a language_change event.
func (g *GA4) TrackLanguageChange(ctx context.Context, e model.LanguageEvent) error {
	return g.send(ctx, "language_change", map[string]any{
		"from": e.From,
		"to":   e.To,
	})
}

// TrackPerformance sends a performance_metric event.
func (g *GA4) TrackPerformance(ctx context.Context, e model.PerformanceEvent) error {
	return g.send(ctx, "performance_metric", map[string]any{
		"metric": e.Metric,
		"value":  e.Value,
		"page":   e.Page,
	})
}

// TrackError sends an exception event.
func (g *GA4) TrackError(ctx context.Context, e model.ErrorEvent) error {
	return g.send(ctx, "exception", map[string]any{
		"description": e.Message,
		"source":      e.Source,
		"fatal":       e.Fatal,
	})
}

// SetUserID attaches a user id to subsequent hits.
func (g *GA4) SetUserID(id string) {
	g.mu.Lock()
	g.userID = id
	g.mu.Unlock()
}

// SetUserProperties attaches user properties to subsequent hits.
func (g *GA4) SetUserProperties(props map[string]string) {
	g.mu.Lock()
	g.props = props
	g.mu.Unlock()
}

// SetConsent suppresses dispatch entirely when consent is withdrawn.
func (g *GA4) SetConsent(granted bool) {
	g.mu.Lock()
	g.consent = granted
	g.mu.Unlock()
}
