// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package erpnext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nexiotech/sitegate/internal/model"
)

// simulatedDelay is the fixed wait applied to stub-mode submissions so the
// website's submit flow behaves the same with and without a live ERP.
const simulatedDelay = 150 * time.Millisecond

// leadSource tags every website-originated CRM record.
const leadSource = "Website"

// SubmitResult reports where a form submission landed. Reference is the
// created document name; Simulated marks a stub-mode resolution.
type SubmitResult struct {
	Reference string `json:"reference,omitempty"`
	Simulated bool   `json:"simulated"`
}

// Submitter routes validated form payloads into ERPNext doctypes.
type Submitter struct {
	client *Client
	logger *slog.Logger
}

// NewSubmitter creates a Submitter over the given client.
func NewSubmitter(client *Client, logger *slog.Logger) *Submitter {
	return &Submitter{client: client, logger: logger}
}

// simulate resolves a stub-mode submission after the fixed delay. The wait
// respects context cancellation.
func (s *Submitter) simulate(ctx context.Context, form string) (SubmitResult, error) {
	select {
	case <-time.After(simulatedDelay):
	case <-ctx.Done():
		return SubmitResult{}, ctx.Err()
	}
	s.logger.Info("form submission simulated, erp not configured", "form", form)
	return SubmitResult{Simulated: true}, nil
}

// SubmitContact creates a Lead from a contact form.
func (s *Submitter) SubmitContact(ctx context.Context, data model.ContactFormData) (SubmitResult, error) {
	if !s.client.Configured() {
		return s.simulate(ctx, "contact")
	}

	notes := data.Message
	if data.Subject != "" {
		notes = data.Subject + "\n\n" + data.Message
	}

	name, err := s.client.create(ctx, "Lead", map[string]any{
		"lead_name":    data.Name,
		"email_id":     data.Email,
		"mobile_no":    data.Phone,
		"company_name": data.Company,
		"source":       leadSource,
		"notes":        notes,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("contact form: %w", err)
	}
	return SubmitResult{Reference: name}, nil
}

// SubmitBooking creates a Lead plus a linked consultation Event.
func (s *Submitter) SubmitBooking(ctx context.Context, data model.BookingFormData) (SubmitResult, error) {
	if !s.client.Configured() {
		return s.simulate(ctx, "booking")
	}

	leadName, err := s.client.create(ctx, "Lead", map[string]any{
		"lead_name":    data.Name,
		"email_id":     data.Email,
		"mobile_no":    data.Phone,
		"company_name": data.Company,
		"source":       leadSource,
		"notes":        data.Notes,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("booking form: %w", err)
	}

	subject := "Consultation: " + data.Name
	if data.Service != "" {
		subject = fmt.Sprintf("Consultation (%s): %s", data.Service, data.Name)
	}

	_, err = s.client.create(ctx, "Event", map[string]any{
		"subject":     subject,
		"starts_on":   eventStart(data.PreferredDate, data.PreferredTime),
		"event_type":  "Private",
		"description": data.Notes,
		"event_participants": []map[string]any{
			{"reference_doctype": "Lead", "reference_docname": leadName},
		},
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("booking event: %w", err)
	}
	return SubmitResult{Reference: leadName}, nil
}

// eventStart joins the requested date and optional time into ERPNext's
// datetime literal. Missing or malformed times default to 09:00.
func eventStart(date, clock string) string {
	clock = strings.TrimSpace(clock)
	if _, err := time.Parse("15:04", clock); err != nil {
		clock = "09:00"
	}
	return date + " " + clock + ":00"
}

// SubmitNewsletter creates an Email Group Member.
func (s *Submitter) SubmitNewsletter(ctx context.Context, data model.NewsletterSubscription) (SubmitResult, error) {
	if !s.client.Configured() {
		return s.simulate(ctx, "newsletter")
	}

	name, err := s.client.create(ctx, "Email Group Member", map[string]any{
		"email":       data.Email,
		"email_group": "Website Subscribers",
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("newsletter signup: %w", err)
	}
	return SubmitResult{Reference: name}, nil
}

// SubmitJobApplication creates a Job Applicant against an opening.
func (s *Submitter) SubmitJobApplication(ctx context.Context, data model.JobApplicationData) (SubmitResult, error) {
	if !s.client.Configured() {
		return s.simulate(ctx, "job_application")
	}

	name, err := s.client.create(ctx, "Job Applicant", map[string]any{
		"applicant_name":    data.FullName,
		"email_id":          data.Email,
		"phone_number":      data.Phone,
		"job_title":         data.JobSlug,
		"cover_letter":      data.CoverLetter,
		"resume_attachment": data.ResumeURL,
		"source":            leadSource,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("job application: %w", err)
	}
	return SubmitResult{Reference: name}, nil
}
