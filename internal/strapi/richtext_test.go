// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Title\n\nSome *emphasis* here.")
	if !strings.Contains(out, "<h1") {
		t.Errorf("missing heading: %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("missing emphasis: %q", out)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script> world")
	if strings.Contains(out, "<script") {
		t.Errorf("script survived sanitization: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("content lost: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if out := RenderMarkdown(""); out != "" {
		t.Errorf("empty input should render empty, got %q", out)
	}
}
