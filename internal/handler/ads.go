// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexiotech/sitegate/internal/ads"
)

// AdsHandler serves the promo slide rotation.
type AdsHandler struct {
	ads *ads.Manager
}

// NewAdsHandler creates an AdsHandler.
func NewAdsHandler(m *ads.Manager) *AdsHandler {
	return &AdsHandler{ads: m}
}

func (h *AdsHandler) list(w http.ResponseWriter, r *http.Request) {
	audience := r.URL.Query().Get("audience")
	slides := h.ads.Active(r.Context(), time.Now(), audience)
	WriteSuccess(w, slides, &Meta{Total: len(slides)})
}

func (h *AdsHandler) click(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "Invalid slide id", nil)
		return
	}

	target, ok := h.ads.Click(r.Context(), id, r.URL.Query().Get("audience"))
	if !ok {
		WriteNotFound(w, "slide not found")
		return
	}
	WriteSuccess(w, map[string]string{"targetUrl": target}, nil)
}
