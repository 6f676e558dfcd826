// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package webhook receives CMS change notifications and turns them into
// cache invalidations. Rapid-fire edits to the same entry are debounced so
// an editing session does not purge the cache on every keystroke save.
package webhook

import (
	"strings"
)

// Notification is the change payload the CMS posts on entry create, update,
// delete, publish and unpublish.
type Notification struct {
	Event string `json:"event"`
	Model string `json:"model"`
	Entry struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
	} `json:"entry"`
}

// modelKeys maps CMS model names to the content cache key they populate.
var modelKeys = map[string]string{
	"product":     "products",
	"service":     "services",
	"testimonial": "testimonials",
	"team-member": "team",
	"case-study":  "case-studies",
	"industry":    "industries",
	"job":         "jobs",
	"client-logo": "client-logos",
	"faq":         "faqs",
	"ad-slide":    "ads",
}

// normalizeModel reduces fully-qualified CMS UIDs ("api::product.product")
// to the bare model name.
func normalizeModel(model string) string {
	if i := strings.LastIndex(model, "::"); i >= 0 {
		model = model[i+2:]
	}
	if i := strings.LastIndex(model, "."); i >= 0 {
		model = model[i+1:]
	}
	return model
}

// CacheKeys returns the cache keys this notification invalidates. Unknown
// models yield none.
func (n Notification) CacheKeys() []string {
	model := normalizeModel(n.Model)
	if model == "page" {
		if n.Entry.Slug == "" {
			return nil
		}
		return []string{"page:" + n.Entry.Slug}
	}
	if key, ok := modelKeys[model]; ok {
		return []string{key}
	}
	return nil
}

// dedupeKey identifies the notification for debouncing: edits to the same
// model (and page slug) coalesce.
func (n Notification) dedupeKey() string {
	model := normalizeModel(n.Model)
	if model == "page" {
		return "page:" + n.Entry.Slug
	}
	return model
}
