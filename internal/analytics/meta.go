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

const metaEndpoint = "https://graph.facebook.com/v18.0"

// MetaOptions configures the Meta Conversions API provider.
type MetaOptions struct {
	PixelID     string
	AccessToken string
	BaseURL     string // override for tests
	Timeout     time.Duration
}

// Meta dispatches events through the Meta (Facebook) Conversions API.
type Meta struct {
	http        *httpx.Client
	pixelID     string
	accessToken string

	mu      sync.RWMutex
	userID  string
	consent bool
}

// NewMeta creates the provider. Credentials are validated in Init.
func NewMeta(opts MetaOptions) *Meta {
	base := opts.BaseURL
	if base == "" {
		base = metaEndpoint
	}
	return &Meta{
		http:        httpx.New(httpx.Options{BaseURL: base, Timeout: opts.Timeout}),
		pixelID:     opts.PixelID,
		accessToken: opts.AccessToken,
		consent:     true,
	}
}

// Name identifies the provider in logs.
func (m *Meta) Name() string { return "meta" }

// Init validates the credentials.
func (m *Meta) Init(context.Context) error {
	if m.pixelID == "" || m.accessToken == "" {
		return fmt.Errorf("meta pixel id or access token missing")
	}
	return nil
}

func (m *Meta) send(ctx context.Context, eventName string, customData map[string]any) error {
	m.mu.RLock()
	consent, userID := m.consent, m.userID
	m.mu.RUnlock()
	if !consent {
		return nil
	}
	if id := UserIDFromContext(ctx); id != "" {
		userID = id
	}

	event := map[string]any{
		"event_name":    eventName,
		"event_time":    time.Now().Unix(),
		"event_id":      uuid.NewString(),
		"action_source": "website",
	}
	if len(customData) > 0 {
		event["custom_data"] = customData
	}
	if userID != "" {
		event["user_data"] = map[string]any{"external_id": userID}
	}

	q := url.Values{}
	q.Set("access_token", m.accessToken)
	path := fmt.Sprintf("/%s/events?%s", m.pixelID, q.Encode())
	return m.http.Post(ctx, path, map[string]any{"data": []map[string]any{event}}, nil)
}

// TrackPageView sends a PageView event.
func (m *Meta) TrackPageView(ctx context.Context, e model.PageViewEvent) error {
	return m.send(ctx, "PageView", map[string]any{"page": e.Path, "title": e.Title})
}

// TrackEvent sends a custom event named after the action.
func (m *Meta) TrackEvent(ctx context.Context, e model.AnalyticsEvent) error {
	return m.send(ctx, e.Action, map[string]any{
		"category": e.Category,
		"label":    e.Label,
		"value":    e.Value,
	})
}

// TrackEcommerce maps the commerce action onto Meta's standard events.
func (m *Meta) TrackEcommerce(ctx context.Context, e model.EcommerceEvent) error {
	name := "ViewContent"
	switch e.Action {
	case "begin_checkout":
		name = "InitiateCheckout"
	case "purchase":
		name = "Purchase"
	case "add_to_cart":
		name = "AddToCart"
	}
	ids := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		ids = append(ids, it.ID)
	}
	return m.send(ctx, name, map[string]any{
		"currency":    e.Currency,
		"value":       e.Value,
		"content_ids": ids,
	})
}

// TrackUserInteraction sends a custom interaction event.
func (m *Meta) TrackUserInteraction(ctx context.Context, e model.UserInteractionEvent) error {
	return m.send(ctx, "UserInteraction", map[string]any{
		"element": e.Element,
		"action":  e.Action,
		"page":    e.Page,
	})
}

// TrackFormSubmission maps successful submits onto Lead, the rest onto a
// custom event.
func (m *Meta) TrackFormSubmission(ctx context.Context, e model.FormEvent) error {
	name := "FormStep"
	if e.Step == "success" {
		name = "Lead"
	}
	return m.send(ctx, name, map[string]any{"form": e.Form, "step": e.Step})
}

// TrackContentEngagement sends a ViewContent event.
func (m *Meta) TrackContentEngagement(ctx context.Context, e model.ContentEvent) error {
	return m.send(ctx, "ViewContent", map[string]any{
		"content_type": e.ContentType,
		"content_ids":  []string{e.ContentID},
		"action":       e.Action,
	})
}

// TrackSearch sends a Search event.
func (m *Meta) TrackSearch(ctx context.Context, e model.SearchEvent) error {
	return m.send(ctx, "Search", map[string]any{
		"search_string": e.Query,
		"results":       e.Results,
	})
}

// TrackLanguageChange sends a custom event.
func (m *Meta) TrackLanguageChange(ctx context.Context, e model.LanguageEvent) error {
	return m.send(ctx, "LanguageChange", map[string]any{"from": e.From, "to": e.To})
}

// TrackPerformance is not meaningful for conversion tracking; dropped.
func (m *Meta) TrackPerformance(context.Context, model.PerformanceEvent) error {
	return nil
}

// TrackError is not meaningful for conversion tracking; dropped.
func (m *Meta) TrackError(context.Context, model.ErrorEvent) error {
	return nil
}

// SetUserID attaches an external id to subsequent events.
func (m *Meta) SetUserID(id string) {
	m.mu.Lock()
	m.userID = id
	m.mu.Unlock()
}

// SetUserProperties is unsupported by the Conversions API; ignored.
func (m *Meta) SetUserProperties(map[string]string) {}

// SetConsent suppresses dispatch entirely when consent is withdrawn.
func (m *Meta) SetConsent(granted bool) {
	m.mu.Lock()
	m.consent = granted
	m.mu.Unlock()
}
