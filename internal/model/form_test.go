// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestContactFormValidate(t *testing.T) {
	valid := ContactFormData{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected valid, got %v", errs)
	}

	invalid := ContactFormData{Email: "not-an-email"}
	errs := invalid.Validate()
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestBookingFormValidate(t *testing.T) {
	valid := BookingFormData{Name: "Jane", Email: "jane@example.com", PreferredDate: "2026-09-15"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected valid, got %v", errs)
	}

	badDate := BookingFormData{Name: "Jane", Email: "jane@example.com", PreferredDate: "15/09/2026"}
	if errs := badDate.Validate(); errs["preferredDate"] == "" {
		t.Errorf("expected preferredDate format error, got %v", errs)
	}
}

func TestJobApplicationValidate(t *testing.T) {
	valid := JobApplicationData{FullName: "Jane Doe", Email: "jane@x.com", JobSlug: "senior-engineer"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected valid, got %v", errs)
	}

	missing := JobApplicationData{}
	errs := missing.Validate()
	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %v", errs)
	}
}

func TestNewsletterValidate(t *testing.T) {
	if errs := (NewsletterSubscription{Email: "a@b.co"}).Validate(); len(errs) != 0 {
		t.Errorf("expected valid, got %v", errs)
	}
	if errs := (NewsletterSubscription{Email: "nope"}).Validate(); errs["email"] == "" {
		t.Error("expected email error")
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@nodot", false},
		{"jane doe@example.com", false},
	}
	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
