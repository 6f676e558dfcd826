// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content fronts the remote content providers with a uniform
// resolution policy: unconfigured providers and failed or empty fetches all
// degrade to bundled fallback data, so callers never see a hard error for
// missing content.
package content

// Fallback reasons carried in Result.Reason.
const (
	ReasonUnconfigured = "provider_unconfigured"
	ReasonError        = "provider_error"
	ReasonEmpty        = "provider_empty"
)

// Result reports how a content lookup resolved. OK means the data came from
// the remote provider (live or cached); otherwise Data holds the last
// persisted provider payload or bundled fallback content, and Reason says
// why. The split keeps "provider failed" distinguishable from "provider has
// zero items".
type Result[T any] struct {
	OK       bool
	Data     T
	Reason   string
	Snapshot bool
}

// Source names the origin for response metadata.
func (r Result[T]) Source() string {
	switch {
	case r.OK:
		return "provider"
	case r.Snapshot:
		return "snapshot"
	default:
		return "fallback"
	}
}

func fallbackResult[T any](data T, reason string) Result[T] {
	return Result[T]{Data: data, Reason: reason}
}
