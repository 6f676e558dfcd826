// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model contains the provider-agnostic entities served by the
// gateway. Transform layers in the strapi and erpnext packages map remote
// payloads onto these shapes; every optional field has a documented default
// so consumers never see nil where a collection is declared.
package model

// Product is a productized offering shown on the products page.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"` // sanitized HTML
	Features    []string `json:"features"`    // never nil, may be empty
	Image       string   `json:"image,omitempty"`
	CTALabel    string   `json:"ctaLabel,omitempty"`
	CTAURL      string   `json:"ctaUrl,omitempty"`
}

// Service is a consulting service offering.
type Service struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"` // sanitized HTML
	Icon        string   `json:"icon,omitempty"`
	Image       string   `json:"image,omitempty"`
	Benefits    []string `json:"benefits"` // never nil, may be empty
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID       int64  `json:"id"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Role     string `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Rating   int    `json:"rating,omitempty"` // 1..5, 0 when not provided
	Featured bool   `json:"featured"`
}

// TeamMember is a person shown on the team page. Backed by the CMS or, when
// configured, by ERP employee records.
type TeamMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// CaseStudy is a project write-up.
type CaseStudy struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Client   string   `json:"client,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"` // sanitized HTML
	Results  []string `json:"results"`
	Image    string   `json:"image,omitempty"`
	Tags     []string `json:"tags"`
}

// Industry is a vertical the consultancy serves.
type Industry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
}

// JobListing is an open position. Backed by the CMS or ERP job openings.
type JobListing struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Department   string   `json:"department,omitempty"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type,omitempty"` // full-time, part-time, contract
	Description  string   `json:"description"`    // sanitized HTML
	Requirements []string `json:"requirements"`
	Active       bool     `json:"active"`
}

// ClientLogo is a client's logo for the trust bar.
type ClientLogo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url,omitempty"`
}

// FAQItem is a question/answer pair.
type FAQItem struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"` // sanitized HTML
	Category string `json:"category,omitempty"`
	Order    int    `json:"order"`
}
