// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

// ContextKeyLocale is the context key for the negotiated locale.
const ContextKeyLocale ContextKey = "locale"

// Locale negotiates the response language from Accept-Language against the
// supported set. The first supported tag is the default. The negotiated tag
// lands in the request context and the Content-Language header.
func Locale(supported ...string) func(http.Handler) http.Handler {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}
	matcher := language.NewMatcher(tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept := r.Header.Get("Accept-Language")
			tag, _ := language.MatchStrings(matcher, accept)
			base, _ := tag.Base()
			locale := base.String()

			w.Header().Set("Content-Language", locale)
			ctx := context.WithValue(r.Context(), ContextKeyLocale, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLocale returns a context carrying the given locale. Used by callers
// that run outside an HTTP request, such as cache warmers.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, locale)
}

// LocaleFromContext returns the negotiated locale, or "" when none was set.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(ContextKeyLocale).(string)
	return locale
}

// GetLocale returns the negotiated locale from the request context.
func GetLocale(r *http.Request) string {
	return LocaleFromContext(r.Context())
}
