// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// ContactFormData is a contact-page submission, mapped to an ERP Lead.
type ContactFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Validate returns field-level validation errors, empty when valid.
func (d ContactFormData) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if !validEmail(d.Email) {
		errs["email"] = "A valid email address is required"
	}
	if strings.TrimSpace(d.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// BookingFormData is a consultation-booking submission, mapped to an ERP
// Lead plus a linked Event.
type BookingFormData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Company       string `json:"company,omitempty"`
	Service       string `json:"service,omitempty"`
	PreferredDate string `json:"preferredDate"` // YYYY-MM-DD
	PreferredTime string `json:"preferredTime,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Validate returns field-level validation errors, empty when valid.
func (d BookingFormData) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if !validEmail(d.Email) {
		errs["email"] = "A valid email address is required"
	}
	if d.PreferredDate == "" {
		errs["preferredDate"] = "Preferred date is required"
	} else if _, err := time.Parse("2006-01-02", d.PreferredDate); err != nil {
		errs["preferredDate"] = "Preferred date must be YYYY-MM-DD"
	}
	return errs
}

// JobApplicationData is a careers-page application, mapped to an ERP
// Job Applicant.
type JobApplicationData struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	JobSlug     string `json:"jobSlug"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
}

// Validate returns field-level validation errors, empty when valid.
func (d JobApplicationData) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if !validEmail(d.Email) {
		errs["email"] = "A valid email address is required"
	}
	if strings.TrimSpace(d.JobSlug) == "" {
		errs["jobSlug"] = "Job reference is required"
	}
	return errs
}

// NewsletterSubscription is a newsletter signup, mapped to an ERP Email
// Group Member.
type NewsletterSubscription struct {
	Email string `json:"email"`
}

// Validate returns field-level validation errors, empty when valid.
func (d NewsletterSubscription) Validate() map[string]string {
	errs := map[string]string{}
	if !validEmail(d.Email) {
		errs["email"] = "A valid email address is required"
	}
	return errs
}

// validEmail applies the minimal shape check used across all forms. Real
// verification happens when the ERP sends mail; rejecting obvious garbage
// here keeps junk out of the CRM.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
