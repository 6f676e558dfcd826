// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexiotech/sitegate/internal/webhook"
)

// WebhookHandler receives CMS change notifications.
type WebhookHandler struct {
	debouncer *webhook.Debouncer
}

// NewWebhookHandler creates the handler.
func NewWebhookHandler(d *webhook.Debouncer) *WebhookHandler {
	return &WebhookHandler{debouncer: d}
}

// Mount registers the webhook route.
func (h *WebhookHandler) Mount(r chi.Router) {
	r.Post("/webhooks/cms", h.receive)
}

func (h *WebhookHandler) receive(w http.ResponseWriter, r *http.Request) {
	var n webhook.Notification
	if !decodeBody(w, r, &n) {
		return
	}

	h.debouncer.Notify(n)
	w.WriteHeader(http.StatusAccepted)
}
