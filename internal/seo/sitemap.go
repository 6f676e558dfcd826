// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo generates the crawler surface of the marketing site:
// sitemap.xml from the served content and robots.txt.
package seo

import (
	"encoding/xml"
	"strings"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder collects site routes and renders the sitemap XML.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder rooted at siteURL.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddPage adds a top-level site page ("/about", "/contact").
func (b *SitemapBuilder) AddPage(slug string) {
	if slug == "" || slug == "home" {
		return
	}
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + slug,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.8",
	})
}

// AddEntity adds a detail page under a collection prefix
// ("/products/entry-e", "/team/jane-doe").
func (b *SitemapBuilder) AddEntity(prefix, slug string) {
	if slug == "" {
		return
	}
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/" + prefix + "/" + slug,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.6",
	})
}

// AddEntities adds detail pages for every slug under the prefix.
func (b *SitemapBuilder) AddEntities(prefix string, slugs []string) {
	for _, s := range slugs {
		b.AddEntity(prefix, s)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
