// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexiotech/sitegate/internal/analytics"
)

// TrackHandler is the first-party analytics ingest endpoint.
type TrackHandler struct {
	ingestor *analytics.Ingestor
}

// NewTrackHandler creates a TrackHandler.
func NewTrackHandler(ing *analytics.Ingestor) *TrackHandler {
	return &TrackHandler{ingestor: ing}
}

// Mount registers the track route.
func (h *TrackHandler) Mount(r chi.Router) {
	r.Post("/track", h.track)
}

func (h *TrackHandler) track(w http.ResponseWriter, r *http.Request) {
	var env analytics.Envelope
	if !decodeBody(w, r, &env) {
		return
	}

	meta := analytics.RequestMeta{
		UserAgent: r.UserAgent(),
		RemoteIP:  remoteIP(r),
		UserID:    r.Header.Get("X-User-ID"),
	}
	if err := h.ingestor.Ingest(r.Context(), env, meta); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
