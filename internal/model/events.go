// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// The analytics event family. Events are transient: constructed at the call
// site, dispatched to every active provider, and discarded. Nothing is
// queued or retried.

// PageViewEvent records one page view.
type PageViewEvent struct {
	Path     string `json:"path"`
	Title    string `json:"title,omitempty"`
	Referrer string `json:"referrer,omitempty"`
	Language string `json:"language,omitempty"`
}

// AnalyticsEvent is the generic action/category/label/value event.
type AnalyticsEvent struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	Label    string `json:"label,omitempty"`
	Value    int64  `json:"value,omitempty"`
}

// EcommerceItem is one item in an ecommerce event.
type EcommerceItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
}

// EcommerceEvent records a commerce action (view_item, begin_checkout, ...).
type EcommerceEvent struct {
	Action   string          `json:"action"`
	Currency string          `json:"currency,omitempty"`
	Value    float64         `json:"value,omitempty"`
	Items    []EcommerceItem `json:"items,omitempty"`
}

// UserInteractionEvent records a UI interaction (click, scroll, video play).
type UserInteractionEvent struct {
	Element string `json:"element"`
	Action  string `json:"action"`
	Page    string `json:"page,omitempty"`
}

// FormEvent records a form lifecycle step (start, submit, success, error).
type FormEvent struct {
	Form   string `json:"form"`
	Step   string `json:"step"`
	Reason string `json:"reason,omitempty"` // populated for error steps
}

// ContentEvent records engagement with a content entity.
type ContentEvent struct {
	ContentType string `json:"contentType"` // product, service, case-study, ...
	ContentID   string `json:"contentId"`
	Action      string `json:"action"` // view, expand, share
}

// SearchEvent records an on-site search.
type SearchEvent struct {
	Query   string `json:"query"`
	Results int    `json:"results"`
}

// LanguageEvent records a language switch.
type LanguageEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PerformanceEvent records a client-side timing metric.
type PerformanceEvent struct {
	Metric string  `json:"metric"` // LCP, FID, CLS, TTFB
	Value  float64 `json:"value"`
	Page   string  `json:"page,omitempty"`
}

// ErrorEvent records a client-side error.
type ErrorEvent struct {
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
	Fatal   bool   `json:"fatal"`
}
