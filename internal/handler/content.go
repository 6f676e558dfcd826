// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexiotech/sitegate/internal/content"
)

// ContentHandler serves the read-only content endpoints.
type ContentHandler struct {
	content *content.Service
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc *content.Service) *ContentHandler {
	return &ContentHandler{content: svc}
}

// writeList writes a resolved list result with source metadata.
func writeList[T any](w http.ResponseWriter, res content.Result[[]T]) {
	WriteSuccess(w, res.Data, &Meta{Total: len(res.Data), Source: res.Source()})
}

// writeOne writes a resolved single-entity result, 404 when absent.
func writeOne[T any](w http.ResponseWriter, res content.Result[*T], what string) {
	if res.Data == nil {
		WriteNotFound(w, what+" not found")
		return
	}
	WriteSuccess(w, res.Data, &Meta{Source: res.Source()})
}

// Mount registers the content routes.
func (h *ContentHandler) Mount(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{slug}", h.getProduct)
	r.Get("/services", h.listServices)
	r.Get("/services/{slug}", h.getService)
	r.Get("/testimonials", h.listTestimonials)
	r.Get("/team", h.listTeam)
	r.Get("/team/{slug}", h.getTeamMember)
	r.Get("/case-studies", h.listCaseStudies)
	r.Get("/case-studies/{slug}", h.getCaseStudy)
	r.Get("/industries", h.listIndustries)
	r.Get("/jobs", h.listJobs)
	r.Get("/jobs/{slug}", h.getJob)
	r.Get("/client-logos", h.listClientLogos)
	r.Get("/faqs", h.listFAQs)
	r.Get("/pages/{slug}", h.getPage)
}

func (h *ContentHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.Products(r.Context()))
}

func (h *ContentHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.ProductBySlug(r.Context(), chi.URLParam(r, "slug")), "product")
}

func (h *ContentHandler) listServices(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.Services(r.Context()))
}

func (h *ContentHandler) getService(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.ServiceBySlug(r.Context(), chi.URLParam(r, "slug")), "service")
}

func (h *ContentHandler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.Testimonials(r.Context()))
}

func (h *ContentHandler) listTeam(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.TeamMembers(r.Context()))
}

func (h *ContentHandler) getTeamMember(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.TeamMemberBySlug(r.Context(), chi.URLParam(r, "slug")), "team member")
}

func (h *ContentHandler) listCaseStudies(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.CaseStudies(r.Context()))
}

func (h *ContentHandler) getCaseStudy(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.CaseStudyBySlug(r.Context(), chi.URLParam(r, "slug")), "case study")
}

func (h *ContentHandler) listIndustries(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.Industries(r.Context()))
}

func (h *ContentHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.Jobs(r.Context()))
}

func (h *ContentHandler) getJob(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.JobBySlug(r.Context(), chi.URLParam(r, "slug")), "job listing")
}

func (h *ContentHandler) listClientLogos(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.ClientLogos(r.Context()))
}

func (h *ContentHandler) listFAQs(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.content.FAQs(r.Context()))
}

func (h *ContentHandler) getPage(w http.ResponseWriter, r *http.Request) {
	writeOne(w, h.content.Page(r.Context(), chi.URLParam(r, "slug")), "page")
}
