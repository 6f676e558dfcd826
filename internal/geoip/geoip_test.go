// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import "testing"

func TestDisabledResolver(t *testing.T) {
	r, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.Enabled() {
		t.Error("empty path should disable the resolver")
	}
	if got := r.Country("8.8.8.8"); got != "" {
		t.Errorf("Country = %q, want empty", got)
	}
}

func TestLocalAddresses(t *testing.T) {
	r, _ := Open("")
	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "192.168.0.5", "::1", "fe80::1"} {
		if got := r.Country(ip); got != "LOCAL" {
			t.Errorf("Country(%s) = %q, want LOCAL", ip, got)
		}
	}
}

func TestInvalidAddress(t *testing.T) {
	r, _ := Open("")
	if got := r.Country("not-an-ip"); got != "" {
		t.Errorf("Country = %q, want empty", got)
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	if _, err := Open("/nonexistent/geoip.mmdb"); err == nil {
		t.Error("missing database should error")
	}
}
