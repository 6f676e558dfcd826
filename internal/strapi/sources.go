// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"context"
	"net/url"

	"github.com/nexiotech/sitegate/internal/model"
)

// listCollection fetches a collection and maps every entry through the given
// transform. Transforms are pure; all I/O happens here.
func listCollection[R any, T any](ctx context.Context, c *Client, collection string, query url.Values, transform func(int64, R) T) ([]T, error) {
	entries, err := c.list(ctx, collection, query)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(entries))
	for _, e := range entries {
		var raw R
		if err := decodeAttributes(e, &raw); err != nil {
			return nil, err
		}
		items = append(items, transform(e.ID, raw))
	}
	return items, nil
}

// oneBySlug fetches the collection filtered server-side by slug and returns
// the first match, or nil when the slug is unknown.
func oneBySlug[R any, T any](ctx context.Context, c *Client, collection, slug string, transform func(int64, R) T) (*T, error) {
	query := url.Values{}
	query.Set("filters[slug][$eq]", slug)

	items, err := listCollection(ctx, c, collection, query, transform)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// oneByID fetches a single entry by id, or nil when absent.
func oneByID[R any, T any](ctx context.Context, c *Client, collection string, id int64, transform func(int64, R) T) (*T, error) {
	e, err := c.one(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	var raw R
	if err := decodeAttributes(*e, &raw); err != nil {
		return nil, err
	}
	item := transform(e.ID, raw)
	return &item, nil
}

// --- products ---

type productAttrs struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"` // markdown
	Features    []string `json:"features"`
	Image       media    `json:"image"`
	CTALabel    string   `json:"ctaLabel"`
	CTAURL      string   `json:"ctaUrl"`
}

// TransformProduct maps a raw Strapi product onto the internal shape.
func TransformProduct(id int64, a productAttrs) model.Product {
	features := a.Features
	if features == nil {
		features = []string{}
	}
	return model.Product{
		ID:          id,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		Description: RenderMarkdown(a.Description),
		Features:    features,
		Image:       a.Image.URL(),
		CTALabel:    a.CTALabel,
		CTAURL:      a.CTAURL,
	}
}

// ProductSource serves the products collection.
type ProductSource struct{ c *Client }

// NewProductSource creates a ProductSource over the given client.
func NewProductSource(c *Client) *ProductSource { return &ProductSource{c: c} }

// List returns all products.
func (s *ProductSource) List(ctx context.Context) ([]model.Product, error) {
	return listCollection(ctx, s.c, "products", nil, TransformProduct)
}

// BySlug returns the product with the given slug, or nil.
func (s *ProductSource) BySlug(ctx context.Context, slug string) (*model.Product, error) {
	return oneBySlug(ctx, s.c, "products", slug, TransformProduct)
}

// ByID returns the product with the given id, or nil.
func (s *ProductSource) ByID(ctx context.Context, id int64) (*model.Product, error) {
	return oneByID(ctx, s.c, "products", id, TransformProduct)
}

// --- services ---

type serviceAttrs struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"` // markdown
	Icon        string   `json:"icon"`
	Image       media    `json:"image"`
	Benefits    []string `json:"benefits"`
}

// TransformService maps a raw Strapi service onto the internal shape.
func TransformService(id int64, a serviceAttrs) model.Service {
	benefits := a.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return model.Service{
		ID:          id,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		Description: RenderMarkdown(a.Description),
		Icon:        a.Icon,
		Image:       a.Image.URL(),
		Benefits:    benefits,
	}
}

// ServiceSource serves the services collection.
type ServiceSource struct{ c *Client }

// NewServiceSource creates a ServiceSource over the given client.
func NewServiceSource(c *Client) *ServiceSource { return &ServiceSource{c: c} }

// List returns all services.
func (s *ServiceSource) List(ctx context.Context) ([]model.Service, error) {
	return listCollection(ctx, s.c, "services", nil, TransformService)
}

// BySlug returns the service with the given slug, or nil.
func (s *ServiceSource) BySlug(ctx context.Context, slug string) (*model.Service, error) {
	return oneBySlug(ctx, s.c, "services", slug, TransformService)
}

// --- testimonials ---

type testimonialAttrs struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Avatar   media  `json:"avatar"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

// TransformTestimonial maps a raw Strapi testimonial onto the internal shape.
func TransformTestimonial(id int64, a testimonialAttrs) model.Testimonial {
	return model.Testimonial{
		ID:       id,
		Quote:    a.Quote,
		Author:   a.Author,
		Role:     a.Role,
		Company:  a.Company,
		Avatar:   a.Avatar.URL(),
		Rating:   a.Rating,
		Featured: a.Featured,
	}
}

// TestimonialSource serves the testimonials collection.
type TestimonialSource struct{ c *Client }

// NewTestimonialSource creates a TestimonialSource over the given client.
func NewTestimonialSource(c *Client) *TestimonialSource { return &TestimonialSource{c: c} }

// List returns all testimonials.
func (s *TestimonialSource) List(ctx context.Context) ([]model.Testimonial, error) {
	return listCollection(ctx, s.c, "testimonials", nil, TransformTestimonial)
}

// --- team members ---

type teamMemberAttrs struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Role     string `json:"role"`
	Bio      string `json:"bio"` // markdown
	Photo    media  `json:"photo"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}

// TransformTeamMember maps a raw Strapi team member onto the internal shape.
func TransformTeamMember(id int64, a teamMemberAttrs) model.TeamMember {
	return model.TeamMember{
		ID:       id,
		Name:     a.Name,
		Slug:     a.Slug,
		Role:     a.Role,
		Bio:      RenderMarkdown(a.Bio),
		Photo:    a.Photo.URL(),
		Email:    a.Email,
		LinkedIn: a.LinkedIn,
	}
}

// TeamSource serves the team-members collection.
type TeamSource struct{ c *Client }

// NewTeamSource creates a TeamSource over the given client.
func NewTeamSource(c *Client) *TeamSource { return &TeamSource{c: c} }

// List returns all team members.
func (s *TeamSource) List(ctx context.Context) ([]model.TeamMember, error) {
	return listCollection(ctx, s.c, "team-members", nil, TransformTeamMember)
}

// BySlug returns the team member with the given slug, or nil.
func (s *TeamSource) BySlug(ctx context.Context, slug string) (*model.TeamMember, error) {
	return oneBySlug(ctx, s.c, "team-members", slug, TransformTeamMember)
}

// --- case studies ---

type caseStudyAttrs struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Client   string   `json:"client"`
	Industry string   `json:"industry"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"` // markdown
	Results  []string `json:"results"`
	Image    media    `json:"image"`
	Tags     []string `json:"tags"`
}

// TransformCaseStudy maps a raw Strapi case study onto the internal shape.
func TransformCaseStudy(id int64, a caseStudyAttrs) model.CaseStudy {
	results := a.Results
	if results == nil {
		results = []string{}
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.CaseStudy{
		ID:       id,
		Title:    a.Title,
		Slug:     a.Slug,
		Client:   a.Client,
		Industry: a.Industry,
		Summary:  a.Summary,
		Body:     RenderMarkdown(a.Body),
		Results:  results,
		Image:    a.Image.URL(),
		Tags:     tags,
	}
}

// CaseStudySource serves the case-studies collection.
type CaseStudySource struct{ c *Client }

// NewCaseStudySource creates a CaseStudySource over the given client.
func NewCaseStudySource(c *Client) *CaseStudySource { return &CaseStudySource{c: c} }

// List returns all case studies.
func (s *CaseStudySource) List(ctx context.Context) ([]model.CaseStudy, error) {
	return listCollection(ctx, s.c, "case-studies", nil, TransformCaseStudy)
}

// BySlug returns the case study with the given slug, or nil.
func (s *CaseStudySource) BySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	return oneBySlug(ctx, s.c, "case-studies", slug, TransformCaseStudy)
}

// --- industries ---

type industryAttrs struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       media  `json:"image"`
}

// TransformIndustry maps a raw Strapi industry onto the internal shape.
func TransformIndustry(id int64, a industryAttrs) model.Industry {
	return model.Industry{
		ID:          id,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		Image:       a.Image.URL(),
	}
}

// IndustrySource serves the industries collection.
type IndustrySource struct{ c *Client }

// NewIndustrySource creates an IndustrySource over the given client.
func NewIndustrySource(c *Client) *IndustrySource { return &IndustrySource{c: c} }

// List returns all industries.
func (s *IndustrySource) List(ctx context.Context) ([]model.Industry, error) {
	return listCollection(ctx, s.c, "industries", nil, TransformIndustry)
}

// --- job listings ---

type jobAttrs struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"` // markdown
	Requirements []string `json:"requirements"`
	Active       bool     `json:"active"`
}

// TransformJob maps a raw Strapi job listing onto the internal shape.
func TransformJob(id int64, a jobAttrs) model.JobListing {
	requirements := a.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return model.JobListing{
		ID:           id,
		Title:        a.Title,
		Slug:         a.Slug,
		Department:   a.Department,
		Location:     a.Location,
		Type:         a.Type,
		Description:  RenderMarkdown(a.Description),
		Requirements: requirements,
		Active:       a.Active,
	}
}

// JobSource serves the job-listings collection.
type JobSource struct{ c *Client }

// NewJobSource creates a JobSource over the given client.
func NewJobSource(c *Client) *JobSource { return &JobSource{c: c} }

// List returns all job listings.
func (s *JobSource) List(ctx context.Context) ([]model.JobListing, error) {
	return listCollection(ctx, s.c, "job-listings", nil, TransformJob)
}

// BySlug returns the job listing with the given slug, or nil.
func (s *JobSource) BySlug(ctx context.Context, slug string) (*model.JobListing, error) {
	return oneBySlug(ctx, s.c, "job-listings", slug, TransformJob)
}

// --- client logos ---

type clientLogoAttrs struct {
	Name string `json:"name"`
	Logo media  `json:"logo"`
	URL  string `json:"url"`
}

// TransformClientLogo maps a raw Strapi client logo onto the internal shape.
func TransformClientLogo(id int64, a clientLogoAttrs) model.ClientLogo {
	return model.ClientLogo{
		ID:   id,
		Name: a.Name,
		Logo: a.Logo.URL(),
		URL:  a.URL,
	}
}

// ClientLogoSource serves the client-logos collection.
type ClientLogoSource struct{ c *Client }

// NewClientLogoSource creates a ClientLogoSource over the given client.
func NewClientLogoSource(c *Client) *ClientLogoSource { return &ClientLogoSource{c: c} }

// List returns all client logos.
func (s *ClientLogoSource) List(ctx context.Context) ([]model.ClientLogo, error) {
	return listCollection(ctx, s.c, "client-logos", nil, TransformClientLogo)
}

// --- FAQ items ---

type faqAttrs struct {
	Question string `json:"question"`
	Answer   string `json:"answer"` // markdown
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// TransformFAQ maps a raw Strapi FAQ item onto the internal shape.
func TransformFAQ(id int64, a faqAttrs) model.FAQItem {
	return model.FAQItem{
		ID:       id,
		Question: a.Question,
		Answer:   RenderMarkdown(a.Answer),
		Category: a.Category,
		Order:    a.Order,
	}
}

// FAQSource serves the faqs collection.
type FAQSource struct{ c *Client }

// NewFAQSource creates a FAQSource over the given client.
func NewFAQSource(c *Client) *FAQSource { return &FAQSource{c: c} }

// List returns all FAQ items.
func (s *FAQSource) List(ctx context.Context) ([]model.FAQItem, error) {
	return listCollection(ctx, s.c, "faqs", nil, TransformFAQ)
}

// --- ad slides ---

type adSlideAttrs struct {
	Title      string   `json:"title"`
	Image      media    `json:"image"`
	TargetURL  string   `json:"targetUrl"`
	Audiences  []string `json:"audiences"`
	Priority   int      `json:"priority"`
	StartsAt   string   `json:"startsAt"` // RFC3339, optional
	EndsAt     string   `json:"endsAt"`   // RFC3339, optional
	TrackingID string   `json:"trackingId"`
}

// RawAdSlide is the flattened ad slide before date parsing; the ads package
// owns the parsed form.
type RawAdSlide struct {
	ID         int64
	Title      string
	Image      string
	TargetURL  string
	Audiences  []string
	Priority   int
	StartsAt   string
	EndsAt     string
	TrackingID string
}

// TransformAdSlide maps a raw Strapi ad slide onto the flattened shape.
func TransformAdSlide(id int64, a adSlideAttrs) RawAdSlide {
	audiences := a.Audiences
	if audiences == nil {
		audiences = []string{}
	}
	return RawAdSlide{
		ID:         id,
		Title:      a.Title,
		Image:      a.Image.URL(),
		TargetURL:  a.TargetURL,
		Audiences:  audiences,
		Priority:   a.Priority,
		StartsAt:   a.StartsAt,
		EndsAt:     a.EndsAt,
		TrackingID: a.TrackingID,
	}
}

// AdSource serves the ad-slides collection.
type AdSource struct{ c *Client }

// NewAdSource creates an AdSource over the given client.
func NewAdSource(c *Client) *AdSource { return &AdSource{c: c} }

// List returns all ad slides.
func (s *AdSource) List(ctx context.Context) ([]RawAdSlide, error) {
	return listCollection(ctx, s.c, "ad-slides", nil, TransformAdSlide)
}
