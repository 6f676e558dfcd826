// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package analytics fans tracking events out to every configured provider.
// Dispatch is synchronous and best-effort: events are never queued or
// retried, one provider failing never blocks another, and nothing a
// provider does can surface as an error to the call site.
package analytics

import (
	"context"

	"github.com/nexiotech/sitegate/internal/model"
)

// Provider is one analytics backend. Track methods report their own
// delivery failure; the manager logs it and moves on.
type Provider interface {
	Name() string
	Init(ctx context.Context) error

	TrackPageView(ctx context.Context, e model.PageViewEvent) error
	TrackEvent(ctx context.Context, e model.AnalyticsEvent) error
	TrackEcommerce(ctx context.Context, e model.EcommerceEvent) error
	TrackUserInteraction(ctx context.Context, e model.UserInteractionEvent) error
	TrackFormSubmission(ctx context.Context, e model.FormEvent) error
	TrackContentEngagement(ctx context.Context, e model.ContentEvent) error
	TrackSearch(ctx context.Context, e model.SearchEvent) error
	TrackLanguageChange(ctx context.Context, e model.LanguageEvent) error
	TrackPerformance(ctx context.Context, e model.PerformanceEvent) error
	TrackError(ctx context.Context, e model.ErrorEvent) error

	SetUserID(id string)
	SetUserProperties(props map[string]string)
	SetConsent(granted bool)
}
