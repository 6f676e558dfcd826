// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyAuth validates a static bearer key against the configured set.
// Comparison runs over sha256 digests in constant time so key length never
// leaks. An empty key set disables the check entirely.
func APIKeyAuth(keys []string) func(http.Handler) http.Handler {
	hashes := make([][32]byte, 0, len(keys))
	for _, k := range keys {
		hashes = append(hashes, sha256.Sum256([]byte(k)))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(hashes) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Missing or malformed Authorization header. Use: Bearer <api_key>", nil)
				return
			}

			presented := sha256.Sum256([]byte(parts[1]))
			for i := range hashes {
				if subtle.ConstantTimeCompare(hashes[i][:], presented[:]) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key", nil)
		})
	}
}
