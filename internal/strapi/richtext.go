// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Rich-text fields arrive from the CMS as markdown written by editors.
// They are rendered to HTML here and sanitized before anything downstream
// sees them, so handlers and templates can treat entity HTML as safe.

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
	sanitizer    *bluemonday.Policy
)

func initRichText() {
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts CMS markdown to sanitized HTML. Invalid or empty
// input yields "".
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	markdownOnce.Do(initRichText)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// Render failure degrades to the sanitized raw text.
		return sanitizer.Sanitize(src)
	}
	return sanitizer.Sanitize(buf.String())
}
