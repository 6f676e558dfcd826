// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nexiotech/sitegate/internal/analytics"
	"github.com/nexiotech/sitegate/internal/erpnext"
	"github.com/nexiotech/sitegate/internal/model"
	"github.com/nexiotech/sitegate/internal/store"
)

// FormHandler accepts website form submissions. Every submission is
// persisted locally before the ERP forward, so a CRM outage loses nothing.
type FormHandler struct {
	queries   *store.Queries
	submitter *erpnext.Submitter
	analytics *analytics.Manager
	logger    *slog.Logger
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(queries *store.Queries, submitter *erpnext.Submitter, manager *analytics.Manager, logger *slog.Logger) *FormHandler {
	return &FormHandler{queries: queries, submitter: submitter, analytics: manager, logger: logger}
}

// Mount registers the form routes.
func (h *FormHandler) Mount(r chi.Router) {
	r.Post("/contact", h.contact)
	r.Post("/booking", h.booking)
	r.Post("/newsletter", h.newsletter)
	r.Post("/careers/apply", h.apply)
}

// submissionResponse is the success payload for every form endpoint.
type submissionResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	Simulated bool   `json:"simulated"`
}

func (h *FormHandler) trackForm(r *http.Request, form, step, reason string) {
	h.analytics.TrackFormSubmission(r.Context(), model.FormEvent{Form: form, Step: step, Reason: reason})
}

func (h *FormHandler) contact(w http.ResponseWriter, r *http.Request) {
	var data model.ContactFormData
	if !decodeBody(w, r, &data) {
		return
	}
	if errs := data.Validate(); len(errs) > 0 {
		h.trackForm(r, "contact", "error", "validation")
		WriteBadRequest(w, "Validation failed", errs)
		return
	}

	publicID := uuid.NewString()
	rowID, err := h.queries.CreateContactSubmission(r.Context(), store.CreateContactSubmissionParams{
		PublicID: publicID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Company:  data.Company,
		Subject:  data.Subject,
		Message:  data.Message,
	})
	if err != nil {
		h.logger.Error("persisting contact submission failed", "error", err)
		WriteInternalError(w, "Could not accept submission")
		return
	}

	result, err := h.submitter.SubmitContact(r.Context(), data)
	if err != nil {
		h.logger.Error("forwarding contact submission failed", "id", publicID, "error", err)
		h.trackForm(r, "contact", "error", "erp")
		WriteInternalError(w, "Submission accepted but could not be forwarded")
		return
	}
	if !result.Simulated {
		if err := h.queries.MarkContactForwarded(r.Context(), rowID); err != nil {
			h.logger.Warn("marking contact forwarded failed", "id", publicID, "error", err)
		}
	}

	h.trackForm(r, "contact", "success", "")
	WriteCreated(w, submissionResponse{ID: publicID, Reference: result.Reference, Simulated: result.Simulated})
}

func (h *FormHandler) booking(w http.ResponseWriter, r *http.Request) {
	var data model.BookingFormData
	if !decodeBody(w, r, &data) {
		return
	}
	if errs := data.Validate(); len(errs) > 0 {
		h.trackForm(r, "booking", "error", "validation")
		WriteBadRequest(w, "Validation failed", errs)
		return
	}

	publicID := uuid.NewString()
	if _, err := h.queries.CreateBookingRequest(r.Context(), store.CreateBookingRequestParams{
		PublicID:      publicID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Company:       data.Company,
		Service:       data.Service,
		PreferredDate: data.PreferredDate,
		PreferredTime: data.PreferredTime,
		Notes:         data.Notes,
	}); err != nil {
		h.logger.Error("persisting booking request failed", "error", err)
		WriteInternalError(w, "Could not accept booking")
		return
	}

	result, err := h.submitter.SubmitBooking(r.Context(), data)
	if err != nil {
		h.logger.Error("forwarding booking request failed", "id", publicID, "error", err)
		h.trackForm(r, "booking", "error", "erp")
		WriteInternalError(w, "Booking accepted but could not be forwarded")
		return
	}

	h.trackForm(r, "booking", "success", "")
	WriteCreated(w, submissionResponse{ID: publicID, Reference: result.Reference, Simulated: result.Simulated})
}

func (h *FormHandler) newsletter(w http.ResponseWriter, r *http.Request) {
	var data model.NewsletterSubscription
	if !decodeBody(w, r, &data) {
		return
	}
	if errs := data.Validate(); len(errs) > 0 {
		WriteBadRequest(w, "Validation failed", errs)
		return
	}

	if err := h.queries.CreateNewsletterSignup(r.Context(), data.Email); err != nil {
		h.logger.Error("persisting newsletter signup failed", "error", err)
		WriteInternalError(w, "Could not accept signup")
		return
	}

	result, err := h.submitter.SubmitNewsletter(r.Context(), data)
	if err != nil {
		h.logger.Error("forwarding newsletter signup failed", "error", err)
		h.trackForm(r, "newsletter", "error", "erp")
		WriteInternalError(w, "Signup accepted but could not be forwarded")
		return
	}

	h.trackForm(r, "newsletter", "success", "")
	WriteCreated(w, submissionResponse{ID: uuid.NewString(), Reference: result.Reference, Simulated: result.Simulated})
}

func (h *FormHandler) apply(w http.ResponseWriter, r *http.Request) {
	var data model.JobApplicationData
	if !decodeBody(w, r, &data) {
		return
	}
	if errs := data.Validate(); len(errs) > 0 {
		h.trackForm(r, "job_application", "error", "validation")
		WriteBadRequest(w, "Validation failed", errs)
		return
	}

	publicID := uuid.NewString()
	if _, err := h.queries.CreateJobApplication(r.Context(), store.CreateJobApplicationParams{
		PublicID:    publicID,
		FullName:    data.FullName,
		Email:       data.Email,
		Phone:       data.Phone,
		JobSlug:     data.JobSlug,
		CoverLetter: data.CoverLetter,
		ResumeURL:   data.ResumeURL,
	}); err != nil {
		h.logger.Error("persisting job application failed", "error", err)
		WriteInternalError(w, "Could not accept application")
		return
	}

	result, err := h.submitter.SubmitJobApplication(r.Context(), data)
	if err != nil {
		h.logger.Error("forwarding job application failed", "id", publicID, "error", err)
		h.trackForm(r, "job_application", "error", "erp")
		WriteInternalError(w, "Application accepted but could not be forwarded")
		return
	}

	h.trackForm(r, "job_application", "success", "")
	WriteCreated(w, submissionResponse{ID: publicID, Reference: result.Reference, Simulated: result.Simulated})
}
