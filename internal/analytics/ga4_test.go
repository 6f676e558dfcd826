// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGA4SendShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := NewGA4(GA4Options{MeasurementID: "G-TEST", APISecret: "s3cret", BaseURL: srv.URL})
	if err := g.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	g.SetUserID("user-1")

	if err := g.TrackSearch(context.Background(), searchEvent()); err != nil {
		t.Fatalf("TrackSearch: %v", err)
	}
	if gotPath != "/mp/collect" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery["measurement_id"][0] != "G-TEST" || gotQuery["api_secret"][0] != "s3cret" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotBody["user_id"] != "user-1" {
		t.Errorf("user_id = %v", gotBody["user_id"])
	}
	events, ok := gotBody["events"].([]any)
	if !ok || len(events) != 1 {
		t.Fatalf("events = %v", gotBody["events"])
	}
	ev := events[0].(map[string]any)
	if ev["name"] != "search" {
		t.Errorf("event name = %v", ev["name"])
	}
}

func TestGA4ContextUserIDOverridesGlobal(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = nil
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := NewGA4(GA4Options{MeasurementID: "G-TEST", APISecret: "s3cret", BaseURL: srv.URL})
	g.SetUserID("global-user")

	ctx := WithUserID(context.Background(), "visitor-7")
	if err := g.TrackSearch(ctx, searchEvent()); err != nil {
		t.Fatalf("TrackSearch: %v", err)
	}
	if gotBody["user_id"] != "visitor-7" {
		t.Errorf("user_id = %v, want visitor-7", gotBody["user_id"])
	}

	if err := g.TrackSearch(context.Background(), searchEvent()); err != nil {
		t.Fatalf("TrackSearch: %v", err)
	}
	if gotBody["user_id"] != "global-user" {
		t.Errorf("user_id = %v, want global-user", gotBody["user_id"])
	}
}

func TestGA4ConsentSuppressesDispatch(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := NewGA4(GA4Options{MeasurementID: "G-TEST", APISecret: "s", BaseURL: srv.URL})
	g.SetConsent(false)
	if err := g.TrackSearch(context.Background(), searchEvent()); err != nil {
		t.Fatalf("TrackSearch: %v", err)
	}
	if hits != 0 {
		t.Errorf("hits = %d, want 0", hits)
	}
}

func TestGA4InitRequiresCredentials(t *testing.T) {
	g := NewGA4(GA4Options{})
	if err := g.Init(context.Background()); err == nil {
		t.Error("Init without credentials should fail")
	}
}

func TestMatomoHitParameters(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	m := NewMatomo(MatomoOptions{BaseURL: srv.URL, SiteID: "4"})
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := m.TrackSearch(context.Background(), searchEvent()); err != nil {
		t.Fatalf("TrackSearch: %v", err)
	}
	if gotQuery["idsite"][0] != "4" || gotQuery["rec"][0] != "1" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotQuery["search"][0] != "erp migration" {
		t.Errorf("search = %v", gotQuery["search"])
	}
}

func TestMetaEventShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"events_received":1}`))
	}))
	defer srv.Close()

	m := NewMeta(MetaOptions{PixelID: "123", AccessToken: "tok", BaseURL: srv.URL})
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := m.TrackFormSubmission(context.Background(), formSuccessEvent()); err != nil {
		t.Fatalf("TrackFormSubmission: %v", err)
	}
	if gotPath != "/123/events" {
		t.Errorf("path = %q", gotPath)
	}
	data := gotBody["data"].([]any)
	ev := data[0].(map[string]any)
	if ev["event_name"] != "Lead" {
		t.Errorf("successful form should map to Lead, got %v", ev["event_name"])
	}
	if ev["action_source"] != "website" {
		t.Errorf("action_source = %v", ev["action_source"])
	}
}
