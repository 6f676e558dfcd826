// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nexiotech/sitegate/internal/ads"
	"github.com/nexiotech/sitegate/internal/analytics"
	"github.com/nexiotech/sitegate/internal/cache"
	"github.com/nexiotech/sitegate/internal/config"
	"github.com/nexiotech/sitegate/internal/content"
	"github.com/nexiotech/sitegate/internal/erpnext"
	"github.com/nexiotech/sitegate/internal/geoip"
	"github.com/nexiotech/sitegate/internal/handler"
	"github.com/nexiotech/sitegate/internal/logging"
	"github.com/nexiotech/sitegate/internal/model"
	"github.com/nexiotech/sitegate/internal/scheduler"
	"github.com/nexiotech/sitegate/internal/store"
	"github.com/nexiotech/sitegate/internal/strapi"
	"github.com/nexiotech/sitegate/internal/version"
	"github.com/nexiotech/sitegate/internal/webhook"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// Build-time credential defaults, optionally injected via ldflags for
// internal preview builds. Empty in normal builds.
var (
	defaultStrapiURL     = ""
	defaultStrapiToken   = ""
	defaultERPNextURL    = ""
	defaultERPNextKey    = ""
	defaultERPNextSecret = ""
)

// providerTimeout bounds every outbound request to the CMS, ERP and
// analytics endpoints.
const providerTimeout = 10 * time.Second

// credentialNames lists every credential the resolver chain serves. Site
// settings stored under these names override nothing set at a higher tier.
var credentialNames = []string{
	"STRAPI_API_URL",
	"STRAPI_API_TOKEN",
	"ERP_NEXT_URL",
	"ERP_NEXT_API_KEY",
	"ERP_NEXT_API_SECRET",
	"SITEGATE_GA4_MEASUREMENT_ID",
	"SITEGATE_GA4_API_SECRET",
	"SITEGATE_META_PIXEL_ID",
	"SITEGATE_META_ACCESS_TOKEN",
	"SITEGATE_MATOMO_URL",
	"SITEGATE_MATOMO_SITE_ID",
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "SiteGate - marketing site API gateway\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEGATE_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEGATE_DB_PATH          SQLite database path (default: ./data/sitegate.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEGATE_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEGATE_REDIS_URL        Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEGATE_SECRETS_DIR      Directory of credential files (default: /run/secrets)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STRAPI_API_URL            CMS base URL (optional; bundled content when unset)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ERP_NEXT_URL              ERP base URL (optional; submissions simulated when unset)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/nexiotech/sitegate\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("sitegate %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	logger = slog.New(logging.NewEventLogHandler(logger.Handler(), db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	queries := store.New(db)

	// Credentials resolve through an ordered chain: mounted secret files,
	// process environment, operator-set site settings, build-time defaults.
	creds := config.NewResolver(
		config.FileSource{Dir: cfg.SecretsDir},
		config.EnvSource{},
		siteSettingsSource(ctx, queries),
		config.MapSource{
			"STRAPI_API_URL":      defaultStrapiURL,
			"STRAPI_API_TOKEN":    defaultStrapiToken,
			"ERP_NEXT_URL":        defaultERPNextURL,
			"ERP_NEXT_API_KEY":    defaultERPNextKey,
			"ERP_NEXT_API_SECRET": defaultERPNextSecret,
		},
	)

	// Cache backend
	cacheCfg := cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      cfg.ContentTTL(),
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}
	cacher, err := cache.New(cacheCfg)
	if err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "error", err)
		cacher, _ = cache.New(cache.Config{
			DefaultTTL:      cfg.ContentTTL(),
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		})
	}
	defer func() {
		if err := cacher.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("cache backend ready", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache backend ready", "backend", "memory", "max_size", cfg.CacheMaxSize)
	}

	// Content providers
	cms := strapi.NewClient(
		creds.Resolve("STRAPI_API_URL"),
		creds.Resolve("STRAPI_API_TOKEN"),
		providerTimeout,
		logger,
	)
	erp := erpnext.NewClient(
		creds.Resolve("ERP_NEXT_URL"),
		creds.Resolve("ERP_NEXT_API_KEY"),
		creds.Resolve("ERP_NEXT_API_SECRET"),
		providerTimeout,
		logger,
	)
	slog.Info("content providers configured",
		"cms", cms.Configured(),
		"erp", erp.Configured(),
	)

	pageSource := strapi.NewPageSource(cms)
	contentSvc := content.New(content.Deps{
		Logger:        logger,
		Cache:         cacher,
		TTL:           cfg.ContentTTL(),
		Snapshots:     queries,
		CMSConfigured: cms.Configured,
		ERPConfigured: erp.Configured,
		Products:      strapi.NewProductSource(cms),
		Services:      strapi.NewServiceSource(cms),
		Testimonials:  strapi.NewTestimonialSource(cms),
		CaseStudies:   strapi.NewCaseStudySource(cms),
		Industries:    strapi.NewIndustrySource(cms),
		ClientLogos:   strapi.NewClientLogoSource(cms),
		FAQs:          strapi.NewFAQSource(cms),
		CMSTeam:       strapi.NewTeamSource(cms),
		ERPTeam:       content.ListerFunc[model.TeamMember](erp.Employees),
		CMSJobs:       strapi.NewJobSource(cms),
		ERPJobs:       content.ListerFunc[model.JobListing](erp.JobOpenings),
		Pages:         pageSource,
	})

	// Analytics
	manager := analytics.NewManager(logger)
	registerAnalyticsProviders(manager, creds)
	if err := manager.Init(ctx); err != nil {
		return fmt.Errorf("initializing analytics: %w", err)
	}
	slog.Info("analytics ready", "providers", manager.Providers())

	geo, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		slog.Warn("geoip database unavailable, country enrichment disabled",
			"path", cfg.GeoIPDBPath, "error", err)
		geo, _ = geoip.Open("")
	}
	defer func() {
		if err := geo.Close(); err != nil {
			slog.Error("error closing geoip database", "error", err)
		}
	}()

	ingestor := analytics.NewIngestor(manager, geo, queries, logger)

	// Promo ads
	adsManager := ads.New(ads.Deps{
		Configured: cms.Configured,
		Source:     adSource{src: strapi.NewAdSource(cms)},
		Cache:      cacher,
		TTL:        cfg.ContentTTL(),
		Tracker:    manager,
		Logger:     logger,
	})

	submitter := erpnext.NewSubmitter(erp, logger)

	// CMS change notifications purge the affected cache entries, debounced
	// so an editing session does not defeat the cache.
	invalidator := webhook.NewDebouncer(cacher, logger, webhook.DefaultDebounceConfig())
	defer invalidator.Stop()

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	router := handler.NewRouter(handler.RouterDeps{
		Content:     handler.NewContentHandler(contentSvc),
		Forms:       handler.NewFormHandler(queries, submitter, manager, logger),
		Ads:         handler.NewAdsHandler(adsManager),
		Track:       handler.NewTrackHandler(ingestor),
		Status:      handler.NewStatusHandler(info, cms, erp, manager),
		SEO:         handler.NewSEOHandler(contentSvc, cfg.SiteURL, cfg.RobotsDisallowAll),
		Webhook:     handler.NewWebhookHandler(invalidator),
		CORSOrigins: cfg.AllowedOrigins(),
		APIKeys:     cfg.APIKeyList(),
	})

	// Background jobs: cache warmup and ERP reachability probe
	sched := scheduler.New(contentSvc, erp, cfg.ContentTTL(), logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Prime the content caches so the first requests are served warm.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		contentSvc.Warm(warmCtx)
	}()

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// siteSettingsSource snapshots operator-managed credentials from the local
// store at boot. Changing a site setting requires a restart to take effect.
func siteSettingsSource(ctx context.Context, queries *store.Queries) config.MapSource {
	settings := config.MapSource{}
	for _, name := range credentialNames {
		v, err := queries.GetSiteSetting(ctx, name)
		if err != nil {
			slog.Warn("reading site setting", "name", name, "error", err)
			continue
		}
		if v != "" {
			settings[name] = v
		}
	}
	return settings
}

// registerAnalyticsProviders registers every provider whose credentials
// resolve. Missing credentials leave the provider unregistered rather than
// registered-and-failing.
func registerAnalyticsProviders(manager *analytics.Manager, creds *config.Resolver) {
	if id, secret := creds.Resolve("SITEGATE_GA4_MEASUREMENT_ID"), creds.Resolve("SITEGATE_GA4_API_SECRET"); id != "" && secret != "" {
		manager.Register(analytics.NewGA4(analytics.GA4Options{
			MeasurementID: id,
			APISecret:     secret,
			Timeout:       providerTimeout,
		}))
	}
	if pixel, token := creds.Resolve("SITEGATE_META_PIXEL_ID"), creds.Resolve("SITEGATE_META_ACCESS_TOKEN"); pixel != "" && token != "" {
		manager.Register(analytics.NewMeta(analytics.MetaOptions{
			PixelID:     pixel,
			AccessToken: token,
			Timeout:     providerTimeout,
		}))
	}
	if url, site := creds.Resolve("SITEGATE_MATOMO_URL"), creds.Resolve("SITEGATE_MATOMO_SITE_ID"); url != "" && site != "" {
		manager.Register(analytics.NewMatomo(analytics.MatomoOptions{
			BaseURL: url,
			SiteID:  site,
			Timeout: providerTimeout,
		}))
	}
}

// adSource adapts the CMS ad collection to the ads manager.
type adSource struct {
	src *strapi.AdSource
}

func (a adSource) List(ctx context.Context) ([]ads.Slide, error) {
	raw, err := a.src.List(ctx)
	if err != nil {
		return nil, err
	}
	slides := make([]ads.Slide, 0, len(raw))
	for _, r := range raw {
		slides = append(slides, ads.FromCMS(r))
	}
	return slides, nil
}
