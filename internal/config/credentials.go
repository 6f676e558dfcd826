// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Source supplies credential values by name. Sources are consulted in order;
// the first non-empty value wins.
type Source interface {
	// Lookup returns the value for the named credential, or "" if the source
	// does not have it.
	Lookup(name string) string
}

// Resolver resolves credentials through an ordered chain of sources:
// runtime secret files, process environment, site settings, build-time
// defaults.
type Resolver struct {
	sources []Source
}

// NewResolver creates a Resolver consulting the given sources in order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the first non-empty value for name across the chain.
func (r *Resolver) Resolve(name string) string {
	for _, s := range r.sources {
		if s == nil {
			continue
		}
		if v := s.Lookup(name); v != "" {
			return v
		}
	}
	return ""
}

// FileSource reads secrets from files in a directory, one file per secret,
// named after the credential (the usual container secret mount layout).
type FileSource struct {
	Dir string
}

// Lookup implements Source.
func (s FileSource) Lookup(name string) string {
	if s.Dir == "" || name == "" {
		return ""
	}
	// Reject names that could escape the secrets directory.
	if strings.ContainsAny(name, "/\\") {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// EnvSource reads secrets from process environment variables.
type EnvSource struct{}

// Lookup implements Source.
func (EnvSource) Lookup(name string) string {
	return os.Getenv(name)
}

// MapSource serves secrets from a fixed map. It backs both the site-settings
// tier (populated from the local store at boot) and the build-time defaults
// tier (populated from ldflags-injected variables).
type MapSource map[string]string

// Lookup implements Source.
func (s MapSource) Lookup(name string) string {
	return s[name]
}

// FuncSource adapts a lookup function to the Source interface.
type FuncSource func(name string) string

// Lookup implements Source.
func (f FuncSource) Lookup(name string) string {
	return f(name)
}
