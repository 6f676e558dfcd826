// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nexiotech/sitegate/internal/model"
)

// Manager lifecycle states.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Manager multiplexes tracking calls across the registered providers.
// Before Init completes, every tracking call is a silent no-op; events are
// dropped, not queued.
type Manager struct {
	mu      sync.Mutex
	state   State
	pending []Provider
	active  []Provider
	logger  *slog.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a provider. Registration after Init is ignored.
func (m *Manager) Register(p Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateUninitialized {
		m.logger.Warn("analytics provider registered after init, ignored", "provider", p.Name())
		return
	}
	m.pending = append(m.pending, p)
}

// Init initializes every registered provider. A provider whose Init fails
// is logged and skipped; the others still come up. Init is idempotent and
// safe against concurrent callers.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateUninitialized {
		m.mu.Unlock()
		return fmt.Errorf("analytics manager already %s", m.state)
	}
	m.state = StateInitializing
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	var active []Provider
	for _, p := range pending {
		if err := m.initProvider(ctx, p); err != nil {
			m.logger.Warn("analytics provider init failed, skipped",
				"provider", p.Name(), "error", err)
			continue
		}
		active = append(active, p)
	}

	m.mu.Lock()
	m.active = active
	m.state = StateReady
	m.mu.Unlock()

	m.logger.Info("analytics manager ready", "providers", len(active))
	return nil
}

func (m *Manager) initProvider(ctx context.Context, p Provider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return p.Init(ctx)
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Ready reports whether tracking calls are being delivered.
func (m *Manager) Ready() bool {
	return m.State() == StateReady
}

// Providers returns the names of the active providers.
func (m *Manager) Providers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.active))
	for _, p := range m.active {
		names = append(names, p.Name())
	}
	return names
}

// dispatch delivers one call to every active provider. Panics and errors
// are contained per provider.
func (m *Manager) dispatch(call string, fn func(Provider) error) {
	m.mu.Lock()
	if m.state != StateReady {
		m.mu.Unlock()
		return
	}
	active := m.active
	m.mu.Unlock()

	for _, p := range active {
		m.deliver(call, p, fn)
	}
}

func (m *Manager) deliver(call string, p Provider, fn func(Provider) error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("analytics provider panicked",
				"provider", p.Name(), "call", call, "panic", r)
		}
	}()
	if err := fn(p); err != nil {
		m.logger.Warn("analytics delivery failed",
			"provider", p.Name(), "call", call, "error", err)
	}
}

// TrackPageView delivers a page view to every active provider.
func (m *Manager) TrackPageView(ctx context.Context, e model.PageViewEvent) {
	m.dispatch("page_view", func(p Provider) error { return p.TrackPageView(ctx, e) })
}

// TrackEvent delivers a generic event.
func (m *Manager) TrackEvent(ctx context.Context, e model.AnalyticsEvent) {
	m.dispatch("event", func(p Provider) error { return p.TrackEvent(ctx, e) })
}

// TrackEcommerce delivers an ecommerce event.
func (m *Manager) TrackEcommerce(ctx context.Context, e model.EcommerceEvent) {
	m.dispatch("ecommerce", func(p Provider) error { return p.TrackEcommerce(ctx, e) })
}

// TrackUserInteraction delivers a UI interaction.
func (m *Manager) TrackUserInteraction(ctx context.Context, e model.UserInteractionEvent) {
	m.dispatch("user_interaction", func(p Provider) error { return p.TrackUserInteraction(ctx, e) })
}

// TrackFormSubmission delivers a form lifecycle event.
func (m *Manager) TrackFormSubmission(ctx context.Context, e model.FormEvent) {
	m.dispatch("form_submission", func(p Provider) error { return p.TrackFormSubmission(ctx, e) })
}

// TrackContentEngagement delivers a content engagement event.
func (m *Manager) TrackContentEngagement(ctx context.Context, e model.ContentEvent) {
	m.dispatch("content_engagement", func(p Provider) error { return p.TrackContentEngagement(ctx, e) })
}

// TrackSearch delivers a search event.
func (m *Manager) TrackSearch(ctx context.Context, e model.SearchEvent) {
	m.dispatch("search", func(p Provider) error { return p.TrackSearch(ctx, e) })
}

// TrackLanguageChange delivers a language switch event.
func (m *Manager) TrackLanguageChange(ctx context.Context, e model.LanguageEvent) {
	m.dispatch("language_change", func(p Provider) error { return p.TrackLanguageChange(ctx, e) })
}

// TrackPerformance delivers a performance metric.
func (m *Manager) TrackPerformance(ctx context.Context, e model.PerformanceEvent) {
	m.dispatch("performance", func(p Provider) error { return p.TrackPerformance(ctx, e) })
}

// TrackError delivers a client error report.
func (m *Manager) TrackError(ctx context.Context, e model.ErrorEvent) {
	m.dispatch("error", func(p Provider) error { return p.TrackError(ctx, e) })
}

// SetUserID forwards a user id to every active provider as persistent
// identity. Request-scoped ids travel on the context via WithUserID instead.
func (m *Manager) SetUserID(id string) {
	m.dispatch("set_user_id", func(p Provider) error { p.SetUserID(id); return nil })
}

// SetUserProperties forwards user properties to every active provider.
func (m *Manager) SetUserProperties(props map[string]string) {
	m.dispatch("set_user_properties", func(p Provider) error { p.SetUserProperties(props); return nil })
}

// SetConsent forwards the consent decision to every active provider.
// Providers that support server-side opt-out suppress their own dispatch.
func (m *Manager) SetConsent(granted bool) {
	m.dispatch("set_consent", func(p Provider) error { p.SetConsent(granted); return nil })
}
