// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nexiotech/sitegate/internal/cache"
	"github.com/nexiotech/sitegate/internal/fallback"
	"github.com/nexiotech/sitegate/internal/middleware"
	"github.com/nexiotech/sitegate/internal/model"
)

// Lister fetches the full collection for one entity type.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ListerFunc adapts a plain fetch function to the Lister interface.
type ListerFunc[T any] func(ctx context.Context) ([]T, error)

// List calls f.
func (f ListerFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

// PageFinder fetches one page by slug; a nil page means the slug is unknown
// to the provider.
type PageFinder interface {
	BySlug(ctx context.Context, slug string) (*model.PageContent, error)
}

// SnapshotStore persists the last successfully fetched provider payload per
// entity, giving a degraded provider a warmer fallback than the bundled
// constants. Satisfied by *store.Queries.
type SnapshotStore interface {
	SaveContentSnapshot(ctx context.Context, entity string, payload []byte) error
	GetContentSnapshot(ctx context.Context, entity string) ([]byte, time.Time, error)
}

// Deps wires the service to its providers. CMSConfigured and ERPConfigured
// gate whether a remote fetch is attempted at all. Snapshots is optional;
// without it a failed fetch degrades straight to the bundled constants.
type Deps struct {
	Logger *slog.Logger
	Cache  cache.Cacher
	TTL    time.Duration

	// DefaultLocale is the locale served when a request carries none.
	// Entries in that locale share cache and snapshot keys with
	// locale-less callers such as the cache warmer.
	DefaultLocale string

	Snapshots SnapshotStore

	CMSConfigured func() bool
	ERPConfigured func() bool

	Products     Lister[model.Product]
	Services     Lister[model.Service]
	Testimonials Lister[model.Testimonial]
	CaseStudies  Lister[model.CaseStudy]
	Industries   Lister[model.Industry]
	ClientLogos  Lister[model.ClientLogo]
	FAQs         Lister[model.FAQItem]

	// Team and jobs exist in both providers. The CMS wins when configured;
	// the ERP serves them otherwise.
	CMSTeam Lister[model.TeamMember]
	ERPTeam Lister[model.TeamMember]
	CMSJobs Lister[model.JobListing]
	ERPJobs Lister[model.JobListing]

	Pages PageFinder
}

// resolver applies the resolution order for one list-shaped entity:
// unconfigured → fallback, cache hit → cached, fetch → cache + snapshot →
// return, failed or empty fetch → last snapshot → fallback.
type resolver[T any] struct {
	name          string
	defaultLocale string
	configured    func() bool
	fetch         func(ctx context.Context) ([]T, error)
	fallback      func() []T
	cache         *cache.Typed[[]T]
	snapshots     SnapshotStore
	logger        *slog.Logger
}

func newResolver[T any](d Deps, name string, configured func() bool, fetch func(ctx context.Context) ([]T, error), fb func() []T) *resolver[T] {
	return &resolver[T]{
		name:          name,
		defaultLocale: d.DefaultLocale,
		configured:    configured,
		fetch:         fetch,
		fallback:      fb,
		cache:         cache.NewTyped[[]T](d.Cache, d.TTL),
		snapshots:     d.Snapshots,
		logger:        d.Logger,
	}
}

// cacheKey qualifies the entity name with the request locale. The default
// locale maps to the bare name so warmed entries serve it.
func (r *resolver[T]) cacheKey(ctx context.Context) string {
	return localeKey(ctx, r.name, r.defaultLocale)
}

func (r *resolver[T]) resolve(ctx context.Context) Result[[]T] {
	if !r.configured() {
		return fallbackResult(r.fallback(), ReasonUnconfigured)
	}

	key := r.cacheKey(ctx)
	if hit, ok := r.cache.Get(ctx, key); ok {
		return Result[[]T]{OK: true, Data: *hit}
	}

	items, err := r.fetch(ctx)
	if err != nil {
		// Logged exactly once; callers only ever see the Result.
		r.logger.Warn("content fetch failed, degrading",
			"entity", r.name, "error", err)
		return r.degrade(ctx, key, ReasonError)
	}
	if len(items) == 0 {
		return r.degrade(ctx, key, ReasonEmpty)
	}

	if err := r.cache.Set(ctx, key, &items); err != nil {
		r.logger.Warn("content cache store failed", "entity", r.name, "error", err)
	}
	r.persist(ctx, key, items)
	return Result[[]T]{OK: true, Data: items}
}

// persist records the fetched payload as the last-known-good snapshot.
func (r *resolver[T]) persist(ctx context.Context, key string, items []T) {
	if r.snapshots == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := r.snapshots.SaveContentSnapshot(ctx, key, payload); err != nil {
		r.logger.Warn("content snapshot store failed", "entity", r.name, "error", err)
	}
}

// degrade serves the last persisted provider payload when one exists and
// the bundled fallback otherwise.
func (r *resolver[T]) degrade(ctx context.Context, key, reason string) Result[[]T] {
	if r.snapshots != nil {
		payload, _, err := r.snapshots.GetContentSnapshot(ctx, key)
		if err == nil && len(payload) > 0 {
			var items []T
			if json.Unmarshal(payload, &items) == nil && len(items) > 0 {
				return Result[[]T]{Data: items, Reason: reason, Snapshot: true}
			}
		}
	}
	return fallbackResult(r.fallback(), reason)
}

// localeKey appends the non-default request locale to a cache key.
func localeKey(ctx context.Context, name, defaultLocale string) string {
	loc := middleware.LocaleFromContext(ctx)
	if loc == "" || loc == defaultLocale {
		return name
	}
	return name + "@" + loc
}

// findBySlug narrows a list result to a single entity. The provider/fallback
// origin carries over; Data is nil when the slug matches nothing.
func findBySlug[T any](res Result[[]T], slug string, slugOf func(T) string) Result[*T] {
	out := Result[*T]{OK: res.OK, Reason: res.Reason}
	for i := range res.Data {
		if slugOf(res.Data[i]) == slug {
			out.Data = &res.Data[i]
			return out
		}
	}
	return out
}

// Service is the content façade the HTTP layer talks to.
type Service struct {
	logger        *slog.Logger
	defaultLocale string
	snapshots     SnapshotStore

	cmsConfigured func() bool

	products     *resolver[model.Product]
	services     *resolver[model.Service]
	testimonials *resolver[model.Testimonial]
	team         *resolver[model.TeamMember]
	caseStudies  *resolver[model.CaseStudy]
	industries   *resolver[model.Industry]
	jobs         *resolver[model.JobListing]
	clientLogos  *resolver[model.ClientLogo]
	faqs         *resolver[model.FAQItem]

	pages     PageFinder
	pageCache *cache.Typed[model.PageContent]
}

// New builds the façade. TTL is the staleness window for every entity cache.
func New(d Deps) *Service {
	if d.TTL <= 0 {
		d.TTL = 2 * time.Minute
	}
	if d.DefaultLocale == "" {
		d.DefaultLocale = "en"
	}
	cms := d.CMSConfigured
	erp := d.ERPConfigured
	either := func() bool { return cms() || erp() }

	// Team and jobs fetch from whichever provider is configured, CMS first.
	teamFetch := func(ctx context.Context) ([]model.TeamMember, error) {
		if cms() {
			return d.CMSTeam.List(ctx)
		}
		return d.ERPTeam.List(ctx)
	}
	jobsFetch := func(ctx context.Context) ([]model.JobListing, error) {
		if cms() {
			return d.CMSJobs.List(ctx)
		}
		return d.ERPJobs.List(ctx)
	}

	return &Service{
		logger:        d.Logger,
		defaultLocale: d.DefaultLocale,
		snapshots:     d.Snapshots,
		cmsConfigured: cms,

		products:     newResolver(d, "products", cms, d.Products.List, fallback.Products),
		services:     newResolver(d, "services", cms, d.Services.List, fallback.Services),
		testimonials: newResolver(d, "testimonials", cms, d.Testimonials.List, fallback.Testimonials),
		team:         newResolver(d, "team", either, teamFetch, fallback.TeamMembers),
		caseStudies:  newResolver(d, "case-studies", cms, d.CaseStudies.List, fallback.CaseStudies),
		industries:   newResolver(d, "industries", cms, d.Industries.List, fallback.Industries),
		jobs:         newResolver(d, "jobs", either, jobsFetch, fallback.JobListings),
		clientLogos:  newResolver(d, "client-logos", cms, d.ClientLogos.List, fallback.ClientLogos),
		faqs:         newResolver(d, "faqs", cms, d.FAQs.List, fallback.FAQItems),

		pages:     d.Pages,
		pageCache: cache.NewTyped[model.PageContent](d.Cache, d.TTL),
	}
}

// Products lists products.
func (s *Service) Products(ctx context.Context) Result[[]model.Product] {
	return s.products.resolve(ctx)
}

// ProductBySlug returns one product, or nil Data when the slug is unknown.
func (s *Service) ProductBySlug(ctx context.Context, slug string) Result[*model.Product] {
	return findBySlug(s.products.resolve(ctx), slug, func(p model.Product) string { return p.Slug })
}

// Services lists services.
func (s *Service) Services(ctx context.Context) Result[[]model.Service] {
	return s.services.resolve(ctx)
}

// ServiceBySlug returns one service, or nil Data when the slug is unknown.
func (s *Service) ServiceBySlug(ctx context.Context, slug string) Result[*model.Service] {
	return findBySlug(s.services.resolve(ctx), slug, func(v model.Service) string { return v.Slug })
}

// Testimonials lists testimonials.
func (s *Service) Testimonials(ctx context.Context) Result[[]model.Testimonial] {
	return s.testimonials.resolve(ctx)
}

// TeamMembers lists team members.
func (s *Service) TeamMembers(ctx context.Context) Result[[]model.TeamMember] {
	return s.team.resolve(ctx)
}

// TeamMemberBySlug returns one team member, or nil Data when unknown.
func (s *Service) TeamMemberBySlug(ctx context.Context, slug string) Result[*model.TeamMember] {
	return findBySlug(s.team.resolve(ctx), slug, func(m model.TeamMember) string { return m.Slug })
}

// CaseStudies lists case studies.
func (s *Service) CaseStudies(ctx context.Context) Result[[]model.CaseStudy] {
	return s.caseStudies.resolve(ctx)
}

// CaseStudyBySlug returns one case study, or nil Data when unknown.
func (s *Service) CaseStudyBySlug(ctx context.Context, slug string) Result[*model.CaseStudy] {
	return findBySlug(s.caseStudies.resolve(ctx), slug, func(c model.CaseStudy) string { return c.Slug })
}

// Industries lists industries.
func (s *Service) Industries(ctx context.Context) Result[[]model.Industry] {
	return s.industries.resolve(ctx)
}

// Jobs lists job listings.
func (s *Service) Jobs(ctx context.Context) Result[[]model.JobListing] {
	return s.jobs.resolve(ctx)
}

// JobBySlug returns one job listing, or nil Data when unknown.
func (s *Service) JobBySlug(ctx context.Context, slug string) Result[*model.JobListing] {
	return findBySlug(s.jobs.resolve(ctx), slug, func(j model.JobListing) string { return j.Slug })
}

// ClientLogos lists client logos.
func (s *Service) ClientLogos(ctx context.Context) Result[[]model.ClientLogo] {
	return s.clientLogos.resolve(ctx)
}

// FAQs lists FAQ items.
func (s *Service) FAQs(ctx context.Context) Result[[]model.FAQItem] {
	return s.faqs.resolve(ctx)
}

// Page resolves one page by slug with the same policy as list entities.
// A slug unknown to both provider and fallback yields nil Data.
func (s *Service) Page(ctx context.Context, slug string) Result[*model.PageContent] {
	if !s.cmsConfigured() {
		return fallbackResult(fallback.PageBySlug(slug), ReasonUnconfigured)
	}

	key := localeKey(ctx, "page:"+slug, s.defaultLocale)
	if hit, ok := s.pageCache.Get(ctx, key); ok {
		return Result[*model.PageContent]{OK: true, Data: hit}
	}

	page, err := s.pages.BySlug(ctx, slug)
	if err != nil {
		s.logger.Warn("content fetch failed, degrading",
			"entity", "pages", "slug", slug, "error", err)
		return s.degradePage(ctx, key, slug, ReasonError)
	}
	if page == nil {
		return s.degradePage(ctx, key, slug, ReasonEmpty)
	}

	if err := s.pageCache.Set(ctx, key, page); err != nil {
		s.logger.Warn("content cache store failed", "entity", "pages", "error", err)
	}
	s.persistPage(ctx, key, page)
	return Result[*model.PageContent]{OK: true, Data: page}
}

func (s *Service) persistPage(ctx context.Context, key string, page *model.PageContent) {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := s.snapshots.SaveContentSnapshot(ctx, key, payload); err != nil {
		s.logger.Warn("content snapshot store failed", "entity", "pages", "error", err)
	}
}

func (s *Service) degradePage(ctx context.Context, key, slug, reason string) Result[*model.PageContent] {
	if s.snapshots != nil {
		payload, _, err := s.snapshots.GetContentSnapshot(ctx, key)
		if err == nil && len(payload) > 0 {
			var page model.PageContent
			if json.Unmarshal(payload, &page) == nil {
				return Result[*model.PageContent]{Data: &page, Reason: reason, Snapshot: true}
			}
		}
	}
	return fallbackResult(fallback.PageBySlug(slug), reason)
}

// Warm primes every entity cache. Used by the scheduler; failures are
// already absorbed by the resolution policy.
func (s *Service) Warm(ctx context.Context) {
	s.products.resolve(ctx)
	s.services.resolve(ctx)
	s.testimonials.resolve(ctx)
	s.team.resolve(ctx)
	s.caseStudies.resolve(ctx)
	s.industries.resolve(ctx)
	s.jobs.resolve(ctx)
	s.clientLogos.resolve(ctx)
	s.faqs.resolve(ctx)
}
