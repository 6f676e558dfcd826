// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package erpnext

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nexiotech/sitegate/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "key", "secret", 5*time.Second, testLogger())
}

func TestEmployeesTransform(t *testing.T) {
	var gotAuth, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"name":"HR-EMP-00001","employee_name":"Jürgen Müller","designation":"CTO","company_email":"jm@nexio.example"},
			{"name":"HR-EMP-00002","employee_name":"Ada Osei","designation":"Lead Consultant"}
		]}`))
	})

	members, err := c.Employees(context.Background())
	if err != nil {
		t.Fatalf("Employees: %v", err)
	}
	if gotAuth != "token key:secret" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotPath != "/api/resource/Employee" {
		t.Errorf("path = %q", gotPath)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members", len(members))
	}
	if members[0].Slug != "jurgen-muller" {
		t.Errorf("derived slug = %q, want jurgen-muller", members[0].Slug)
	}
	if members[1].ID != 2 || members[1].Role != "Lead Consultant" {
		t.Errorf("second member = %+v", members[1])
	}
}

func TestTeamMemberBySlugScan(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"employee_name":"Ada Osei","designation":"Lead Consultant"},
			{"employee_name":"Maya Lindqvist","designation":"Architect"}
		]}`))
	})

	m, err := c.TeamMemberBySlug(context.Background(), "maya-lindqvist")
	if err != nil {
		t.Fatalf("TeamMemberBySlug: %v", err)
	}
	if m == nil || m.Name != "Maya Lindqvist" {
		t.Fatalf("member = %+v", m)
	}

	missing, err := c.TeamMemberBySlug(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("TeamMemberBySlug: %v", err)
	}
	if missing != nil {
		t.Errorf("member = %+v, want nil", missing)
	}
}

func TestJobOpeningSlugAndStatus(t *testing.T) {
	doc := jobOpeningDoc{JobTitle: "ERP Implementation Consultant", Status: "Open"}
	job := TransformJobOpening(1, doc)
	if job.Slug != "erp-implementation-consultant" {
		t.Errorf("slug = %q", job.Slug)
	}
	if !job.Active {
		t.Error("open job should be active")
	}
	if job.Requirements == nil {
		t.Error("requirements is nil")
	}

	routed := TransformJobOpening(2, jobOpeningDoc{JobTitle: "X", Route: "custom-route", Status: "Closed"})
	if routed.Slug != "custom-route" {
		t.Errorf("slug = %q, want custom-route", routed.Slug)
	}
	if routed.Active {
		t.Error("closed job should be inactive")
	}
}

func TestPingListsSingleUser(t *testing.T) {
	var gotPath, gotLimit string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit_page_length")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"name":"Administrator"}]}`))
	})

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if gotPath != "/api/resource/User" || gotLimit != "1" {
		t.Errorf("path = %q limit = %q", gotPath, gotLimit)
	}
}

func TestSubmitContactCreatesLead(t *testing.T) {
	var gotPath string
	var gotDoc map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotDoc)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"CRM-LEAD-2026-00042"}}`))
	})

	s := NewSubmitter(c, testLogger())
	res, err := s.SubmitContact(context.Background(), contactForm())
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if gotPath != "/api/resource/Lead" {
		t.Errorf("path = %q", gotPath)
	}
	if gotDoc["lead_name"] != "Ada Osei" || gotDoc["source"] != "Website" {
		t.Errorf("doc = %v", gotDoc)
	}
	if res.Simulated {
		t.Error("live submission marked simulated")
	}
	if res.Reference != "CRM-LEAD-2026-00042" {
		t.Errorf("reference = %q", res.Reference)
	}
}

func TestSubmitBookingCreatesLeadAndEvent(t *testing.T) {
	var paths []string
	var eventDoc map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/resource/Event" {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &eventDoc)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"doc-1"}}`))
	})

	s := NewSubmitter(c, testLogger())
	_, err := s.SubmitBooking(context.Background(), bookingForm())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/api/resource/Lead" || paths[1] != "/api/resource/Event" {
		t.Fatalf("paths = %v", paths)
	}
	if eventDoc["starts_on"] != "2026-09-15 14:30:00" {
		t.Errorf("starts_on = %v", eventDoc["starts_on"])
	}
	participants, ok := eventDoc["event_participants"].([]any)
	if !ok || len(participants) != 1 {
		t.Fatalf("participants = %v", eventDoc["event_participants"])
	}
}

func TestEventStartDefaultsTime(t *testing.T) {
	if got := eventStart("2026-09-15", ""); got != "2026-09-15 09:00:00" {
		t.Errorf("eventStart = %q", got)
	}
	if got := eventStart("2026-09-15", "not-a-time"); got != "2026-09-15 09:00:00" {
		t.Errorf("eventStart = %q", got)
	}
}

func TestUnconfiguredSubmitsSimulateSuccess(t *testing.T) {
	c := NewClient("", "", "", time.Second, testLogger())
	if c.Configured() {
		t.Fatal("client should report unconfigured")
	}
	s := NewSubmitter(c, testLogger())

	start := time.Now()
	res, err := s.SubmitJobApplication(context.Background(), applicationForm())
	if err != nil {
		t.Fatalf("SubmitJobApplication: %v", err)
	}
	if !res.Simulated {
		t.Error("stub submission not marked simulated")
	}
	if res.Reference != "" {
		t.Errorf("stub reference = %q", res.Reference)
	}
	if elapsed := time.Since(start); elapsed < simulatedDelay {
		t.Errorf("stub resolved after %v, want at least %v", elapsed, simulatedDelay)
	}
}

func TestSimulateHonorsCancellation(t *testing.T) {
	c := NewClient("", "", "", time.Second, testLogger())
	s := NewSubmitter(c, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.SubmitNewsletter(ctx, model.NewsletterSubscription{Email: "a@b.example"}); err == nil {
		t.Error("cancelled stub submission should fail")
	}
}

func contactForm() model.ContactFormData {
	return model.ContactFormData{
		Name:    "Ada Osei",
		Email:   "ada@client.example",
		Subject: "ERP rollout",
		Message: "We need help with an ERPNext rollout.",
	}
}

func bookingForm() model.BookingFormData {
	return model.BookingFormData{
		Name:          "Ada Osei",
		Email:         "ada@client.example",
		Service:       "ERP Implementation",
		PreferredDate: "2026-09-15",
		PreferredTime: "14:30",
	}
}

func applicationForm() model.JobApplicationData {
	return model.JobApplicationData{
		FullName: "Maya Lindqvist",
		Email:    "maya@candidate.example",
		JobSlug:  "senior-software-engineer",
	}
}
