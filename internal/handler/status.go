// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexiotech/sitegate/internal/analytics"
	"github.com/nexiotech/sitegate/internal/erpnext"
	"github.com/nexiotech/sitegate/internal/version"
)

// StatusHandler serves the status and health endpoints.
type StatusHandler struct {
	version   version.Info
	started   time.Time
	cms       interface{ Configured() bool }
	erp       *erpnext.Client
	analytics *analytics.Manager
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(info version.Info, cms interface{ Configured() bool }, erp *erpnext.Client, manager *analytics.Manager) *StatusHandler {
	return &StatusHandler{
		version:   info,
		started:   time.Now(),
		cms:       cms,
		erp:       erp,
		analytics: manager,
	}
}

// Mount registers the status routes.
func (h *StatusHandler) Mount(r chi.Router) {
	r.Get("/status", h.status)
	r.Get("/healthz", h.healthz)
}

type statusResponse struct {
	Version   string   `json:"version"`
	GitCommit string   `json:"gitCommit,omitempty"`
	UptimeSec int64    `json:"uptimeSec"`
	CMS       bool     `json:"cmsConfigured"`
	ERP       bool     `json:"erpConfigured"`
	Analytics []string `json:"analyticsProviders"`
}

func (h *StatusHandler) status(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, statusResponse{
		Version:   h.version.Version,
		GitCommit: h.version.GitCommit,
		UptimeSec: int64(time.Since(h.started).Seconds()),
		CMS:       h.cms.Configured(),
		ERP:       h.erp.Configured(),
		Analytics: h.analytics.Providers(),
	}, nil)
}

// healthz reports liveness. When the ERP is configured it is pinged with a
// short deadline; an unreachable ERP degrades the response but keeps 200 so
// orchestration does not restart a healthy gateway over a remote outage.
func (h *StatusHandler) healthz(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "ok"}
	if h.erp.Configured() {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := h.erp.Ping(ctx); err != nil {
			health["erp"] = "unreachable"
		} else {
			health["erp"] = "ok"
		}
	}
	WriteJSON(w, http.StatusOK, health)
}
