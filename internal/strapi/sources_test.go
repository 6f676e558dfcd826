// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nexiotech/sitegate/internal/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second, testLogger())
}

func TestProductListFlattensEnvelope(t *testing.T) {
	var gotPath, gotAuth, gotPopulate string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotPopulate = r.URL.Query().Get("populate")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":7,"attributes":{"title":"Entry-E","slug":"entry-e","summary":"Starter ERP","features":["CRM","Billing"]}},
			{"id":9,"attributes":{"title":"Business in a Box","slug":"business-in-a-box"}}
		]}`))
	})

	products, err := NewProductSource(c).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotPath != "/api/products" {
		t.Errorf("path = %q, want /api/products", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotPopulate != "*" {
		t.Errorf("populate = %q, want *", gotPopulate)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ID != 7 || products[0].Slug != "entry-e" {
		t.Errorf("first product = %+v", products[0])
	}
	if len(products[0].Features) != 2 {
		t.Errorf("features = %v", products[0].Features)
	}
}

func TestTransformDefaultsNeverNil(t *testing.T) {
	// A minimal payload must still come out with empty slices, not nil.
	p := TransformProduct(1, productAttrs{Title: "Bare"})
	if p.Features == nil {
		t.Error("product features is nil")
	}
	s := TransformService(1, serviceAttrs{Title: "Bare"})
	if s.Benefits == nil {
		t.Error("service benefits is nil")
	}
	cs := TransformCaseStudy(1, caseStudyAttrs{Title: "Bare"})
	if cs.Results == nil || cs.Tags == nil {
		t.Error("case study slices are nil")
	}
	j := TransformJob(1, jobAttrs{Title: "Bare"})
	if j.Requirements == nil {
		t.Error("job requirements is nil")
	}
	ad := TransformAdSlide(1, adSlideAttrs{Title: "Bare"})
	if ad.Audiences == nil {
		t.Error("ad audiences is nil")
	}
}

func TestTransformRendersMarkdown(t *testing.T) {
	p := TransformProduct(1, productAttrs{Description: "**bold** move"})
	if !strings.Contains(p.Description, "<strong>bold</strong>") {
		t.Errorf("description = %q", p.Description)
	}
}

func TestListSendsNegotiatedLocale(t *testing.T) {
	var gotLocale string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLocale = r.URL.Query().Get("locale")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	ctx := middleware.WithLocale(context.Background(), "de")
	if _, err := NewProductSource(c).List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLocale != "de" {
		t.Errorf("locale = %q, want de", gotLocale)
	}

	// Without a negotiated locale the parameter stays off and the CMS
	// serves its default.
	if _, err := NewProductSource(c).List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLocale != "" {
		t.Errorf("locale = %q, want empty", gotLocale)
	}
}

func TestBySlugUsesServerSideFilter(t *testing.T) {
	var gotFilter string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filters[slug][$eq]")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":3,"attributes":{"title":"Cloud Migration","slug":"cloud-migration"}}]}`))
	})

	svc, err := NewServiceSource(c).BySlug(context.Background(), "cloud-migration")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if gotFilter != "cloud-migration" {
		t.Errorf("filter = %q", gotFilter)
	}
	if svc == nil || svc.ID != 3 {
		t.Fatalf("service = %+v", svc)
	}
}

func TestBySlugUnknownReturnsNil(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	svc, err := NewServiceSource(c).BySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if svc != nil {
		t.Errorf("service = %+v, want nil", svc)
	}
}

func TestMediaURLFlattening(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"attributes":{"name":"Acme","logo":{"data":{"attributes":{"url":"/uploads/acme.svg"}}},"url":"https://acme.example"}},
			{"id":2,"attributes":{"name":"NoLogo","logo":{"data":null}}}
		]}`))
	})

	logos, err := NewClientLogoSource(c).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if logos[0].Logo != "/uploads/acme.svg" {
		t.Errorf("logo = %q", logos[0].Logo)
	}
	if logos[1].Logo != "" {
		t.Errorf("absent media should flatten to empty, got %q", logos[1].Logo)
	}
}

func TestPageBySlugDecodesSections(t *testing.T) {
	var gotPopulate string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPopulate = r.URL.Query().Get("populate")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"attributes":{
			"title":"Home","slug":"home","metaDescription":"Welcome",
			"sections":[
				{"type":"hero","order":1,"settings":{"heading":"Hi"}},
				{"type":"mystery","order":2,"settings":{"x":1}}
			]}}]}`))
	})

	page, err := NewPageSource(c).BySlug(context.Background(), "home")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if gotPopulate != "deep" {
		t.Errorf("populate = %q, want deep", gotPopulate)
	}
	if page == nil || len(page.Sections) != 2 {
		t.Fatalf("page = %+v", page)
	}
	if page.Sections[0].Hero == nil || page.Sections[0].Hero.Heading != "Hi" {
		t.Errorf("hero = %+v", page.Sections[0].Hero)
	}
	if page.Sections[1].Custom == nil {
		t.Errorf("unknown section should land in custom: %+v", page.Sections[1])
	}
}

func TestPageWithoutSections(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":4,"attributes":{"title":"Legal","slug":"legal"}}]}`))
	})

	page, err := NewPageSource(c).BySlug(context.Background(), "legal")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if page.Sections == nil {
		t.Error("sections is nil, want empty slice")
	}
}

func TestUnconfiguredClientErrors(t *testing.T) {
	c := NewClient("", "", time.Second, testLogger())
	if c.Configured() {
		t.Fatal("client should report unconfigured")
	}
	if _, err := NewProductSource(c).List(context.Background()); err == nil {
		t.Error("List on unconfigured client should fail")
	}
}
