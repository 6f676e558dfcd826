// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package analytics

import "context"

type contextKey string

const contextKeyUserID contextKey = "analytics_user_id"

// WithUserID returns a context carrying the identified visitor for the
// current request. Providers attach it to the hits they send; it never
// touches provider state, so concurrent requests cannot cross-attribute.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, id)
}

// UserIDFromContext returns the request-scoped user id, or "" for an
// anonymous request.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyUserID).(string)
	return id
}
