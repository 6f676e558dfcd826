// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"
)

func TestDecodeSectionHero(t *testing.T) {
	data := []byte(`{
		"type": "hero",
		"order": 1,
		"settings": {
			"heading": "Build faster",
			"subheading": "Technology consulting",
			"primaryButton": {"label": "Get started", "url": "/contact", "style": "primary"}
		}
	}`)

	s, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if s.Type != SectionTypeHero {
		t.Errorf("Type = %q, want hero", s.Type)
	}
	if s.Hero == nil {
		t.Fatal("Hero settings not populated")
	}
	if s.Hero.Heading != "Build faster" {
		t.Errorf("Heading = %q", s.Hero.Heading)
	}
	if s.Hero.PrimaryButton == nil || s.Hero.PrimaryButton.URL != "/contact" {
		t.Errorf("PrimaryButton = %+v", s.Hero.PrimaryButton)
	}
	if s.Hero.SecondaryButton != nil {
		t.Error("SecondaryButton should be nil when absent")
	}
	if s.CTA != nil || s.Features != nil {
		t.Error("only the hero variant should be populated")
	}
}

func TestDecodeSectionCTAWithoutButtons(t *testing.T) {
	// A cta section with no buttons must decode cleanly; the buttons are
	// genuinely optional.
	data := []byte(`{"type": "cta", "order": 3, "settings": {"heading": "Ready to talk?"}}`)

	s, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if s.CTA == nil {
		t.Fatal("CTA settings not populated")
	}
	if s.CTA.PrimaryButton != nil || s.CTA.SecondaryButton != nil {
		t.Error("buttons should be nil when absent")
	}
	if s.CTA.Heading != "Ready to talk?" {
		t.Errorf("Heading = %q", s.CTA.Heading)
	}
}

func TestDecodeSectionUnknownTypeFallsThroughToCustom(t *testing.T) {
	data := []byte(`{"type": "pricing-table", "settings": {"currency": "EUR"}}`)

	s, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if s.Type != SectionTypeCustom {
		t.Errorf("Type = %q, want custom", s.Type)
	}
	if s.Custom["originalType"] != "pricing-table" {
		t.Errorf("originalType = %v", s.Custom["originalType"])
	}
	if s.Custom["currency"] != "EUR" {
		t.Errorf("settings bag not preserved: %v", s.Custom)
	}
}

func TestDecodeSectionCollectionVariants(t *testing.T) {
	tests := []struct {
		typ    string
		pick   func(PageSection) *CollectionSettings
	}{
		{SectionTypeTestimonials, func(s PageSection) *CollectionSettings { return s.Testimonials }},
		{SectionTypeProducts, func(s PageSection) *CollectionSettings { return s.Products }},
		{SectionTypeServices, func(s PageSection) *CollectionSettings { return s.Services }},
		{SectionTypeTeam, func(s PageSection) *CollectionSettings { return s.Team }},
		{SectionTypeClients, func(s PageSection) *CollectionSettings { return s.Clients }},
		{SectionTypeBlog, func(s PageSection) *CollectionSettings { return s.Blog }},
		{SectionTypeFAQ, func(s PageSection) *CollectionSettings { return s.FAQ }},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			data := []byte(`{"type": "` + tt.typ + `", "settings": {"heading": "H", "limit": 3, "featured": [2, 1]}}`)
			s, err := DecodeSection(data)
			if err != nil {
				t.Fatalf("DecodeSection: %v", err)
			}
			cs := tt.pick(s)
			if cs == nil {
				t.Fatalf("%s variant not populated", tt.typ)
			}
			if cs.Limit != 3 || len(cs.Featured) != 2 || cs.Featured[0] != 2 {
				t.Errorf("settings = %+v", cs)
			}
		})
	}
}

func TestDecodeSectionMissingSettings(t *testing.T) {
	s, err := DecodeSection([]byte(`{"type": "features"}`))
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if s.Features == nil {
		t.Fatal("Features settings not populated")
	}
	if s.Features.Items == nil {
		t.Error("Items must default to empty slice, not nil")
	}
}

func TestDecodeSectionsPreservesOrder(t *testing.T) {
	data := []byte(`[
		{"type": "hero", "order": 1, "settings": {"heading": "A"}},
		{"type": "services", "order": 2, "settings": {}},
		{"type": "cta", "order": 3, "settings": {"heading": "B"}}
	]`)

	sections, err := DecodeSections(data)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("len = %d, want 3", len(sections))
	}
	want := []string{SectionTypeHero, SectionTypeServices, SectionTypeCTA}
	for i, w := range want {
		if sections[i].Type != w {
			t.Errorf("sections[%d].Type = %q, want %q", i, sections[i].Type, w)
		}
	}
}
