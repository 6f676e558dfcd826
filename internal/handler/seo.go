// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/nexiotech/sitegate/internal/content"
	"github.com/nexiotech/sitegate/internal/fallback"
	"github.com/nexiotech/sitegate/internal/seo"
)

// SEOHandler serves robots.txt and sitemap.xml for the site's public host.
type SEOHandler struct {
	content     *content.Service
	siteURL     string
	disallowAll bool
}

// NewSEOHandler creates the handler. siteURL is the site's public base URL;
// disallowAll blocks crawlers entirely (staging deployments).
func NewSEOHandler(svc *content.Service, siteURL string, disallowAll bool) *SEOHandler {
	return &SEOHandler{
		content:     svc,
		siteURL:     siteURL,
		disallowAll: disallowAll,
	}
}

func (h *SEOHandler) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(h.siteURL, h.disallowAll)))
}

// sitemap renders the site routes from whatever the content façade currently
// serves. A degraded façade yields the bundled content's routes, never an
// error page.
func (h *SEOHandler) sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	b := seo.NewSitemapBuilder(h.siteURL)
	b.AddHomepage()

	for _, p := range fallback.Pages() {
		b.AddPage(p.Slug)
	}
	for _, p := range h.content.Products(ctx).Data {
		b.AddEntity("products", p.Slug)
	}
	for _, s := range h.content.Services(ctx).Data {
		b.AddEntity("services", s.Slug)
	}
	for _, c := range h.content.CaseStudies(ctx).Data {
		b.AddEntity("case-studies", c.Slug)
	}
	for _, m := range h.content.TeamMembers(ctx).Data {
		b.AddEntity("team", m.Slug)
	}
	for _, j := range h.content.Jobs(ctx).Data {
		b.AddEntity("careers", j.Slug)
	}

	out, err := b.Build()
	if err != nil {
		http.Error(w, "sitemap generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}
