// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nexiotech/sitegate/internal/middleware"
)

// RouterDeps collects everything the API router serves.
type RouterDeps struct {
	Content *ContentHandler
	Forms   *FormHandler
	Ads     *AdsHandler
	Track   *TrackHandler
	Status  *StatusHandler
	SEO     *SEOHandler     // optional; robots.txt and sitemap.xml when set
	Webhook *WebhookHandler // optional; CMS invalidation webhook when set

	CORSOrigins []string
	APIKeys     []string
	Locales     []string
	// FormRPS limits form and track submissions per client IP.
	FormRPS   float64
	FormBurst int
}

// NewRouter assembles the API router. Read endpoints are public; write
// endpoints are rate limited per client IP, and all of /api/v1 requires an
// API key when keys are configured.
func NewRouter(d RouterDeps) http.Handler {
	if d.FormRPS <= 0 {
		d.FormRPS = 2
	}
	if d.FormBurst <= 0 {
		d.FormBurst = 5
	}
	if len(d.Locales) == 0 {
		d.Locales = []string{"en"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(d.CORSOrigins))
	r.Use(middleware.Locale(d.Locales...))

	writeLimiter := middleware.NewRateLimiter(d.FormRPS, d.FormBurst)

	if d.SEO != nil {
		r.Get("/robots.txt", d.SEO.robots)
		r.Get("/sitemap.xml", d.SEO.sitemap)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.APIKeyAuth(d.APIKeys))

		d.Content.Mount(api)
		d.Status.Mount(api)
		api.Get("/ads", d.Ads.list)

		api.Group(func(writes chi.Router) {
			writes.Use(writeLimiter.Middleware())
			d.Forms.Mount(writes)
			d.Track.Mount(writes)
			writes.Post("/ads/{id}/click", d.Ads.click)
			if d.Webhook != nil {
				d.Webhook.Mount(writes)
			}
		})
	})

	return r
}
