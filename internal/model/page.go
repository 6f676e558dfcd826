// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
)

// Section type discriminators. Unknown types decode as SectionTypeCustom so a
// newer CMS schema never breaks an older gateway.
const (
	SectionTypeHero         = "hero"
	SectionTypeFeatures     = "features"
	SectionTypeTestimonials = "testimonials"
	SectionTypeCTA          = "cta"
	SectionTypeProducts     = "products"
	SectionTypeServices     = "services"
	SectionTypeTeam         = "team"
	SectionTypeContact      = "contact"
	SectionTypeAbout        = "about"
	SectionTypeClients      = "clients"
	SectionTypeBlog         = "blog"
	SectionTypeFAQ          = "faq"
	SectionTypeLinks        = "links"
	SectionTypeCustom       = "custom"
)

// knownSectionTypes is the set of types with dedicated settings variants.
var knownSectionTypes = map[string]bool{
	SectionTypeHero:         true,
	SectionTypeFeatures:     true,
	SectionTypeTestimonials: true,
	SectionTypeCTA:          true,
	SectionTypeProducts:     true,
	SectionTypeServices:     true,
	SectionTypeTeam:         true,
	SectionTypeContact:      true,
	SectionTypeAbout:        true,
	SectionTypeClients:      true,
	SectionTypeBlog:         true,
	SectionTypeFAQ:          true,
	SectionTypeLinks:        true,
	SectionTypeCustom:       true,
}

// PageContent is a page's metadata plus its ordered sections.
type PageContent struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	MetaDescription string        `json:"metaDescription,omitempty"`
	Sections        []PageSection `json:"sections"` // order preserved from provider
}

// PageSection is one block of a page. Type selects which settings variant is
// populated; the others are nil. Section ordering is preserved from the
// provider response.
type PageSection struct {
	Type  string `json:"type"`
	Order int    `json:"order"`

	Hero         *HeroSettings         `json:"hero,omitempty"`
	Features     *FeaturesSettings     `json:"features,omitempty"`
	Testimonials *CollectionSettings   `json:"testimonials,omitempty"`
	CTA          *CTASettings          `json:"cta,omitempty"`
	Products     *CollectionSettings   `json:"products,omitempty"`
	Services     *CollectionSettings   `json:"services,omitempty"`
	Team         *CollectionSettings   `json:"team,omitempty"`
	Contact      *ContactSettings      `json:"contact,omitempty"`
	About        *AboutSettings        `json:"about,omitempty"`
	Clients      *CollectionSettings   `json:"clients,omitempty"`
	Blog         *CollectionSettings   `json:"blog,omitempty"`
	FAQ          *CollectionSettings   `json:"faq,omitempty"`
	Links        *LinksSettings        `json:"links,omitempty"`
	Custom       map[string]any        `json:"custom,omitempty"`
}

// SectionButton is a call-to-action button inside a section.
type SectionButton struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Style string `json:"style,omitempty"` // primary, secondary, outline
}

// HeroSettings configures a hero banner.
type HeroSettings struct {
	Heading         string         `json:"heading"`
	Subheading      string         `json:"subheading,omitempty"`
	BackgroundImage string         `json:"backgroundImage,omitempty"`
	PrimaryButton   *SectionButton `json:"primaryButton,omitempty"`
	SecondaryButton *SectionButton `json:"secondaryButton,omitempty"`
}

// FeatureItem is one entry in a features grid.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// FeaturesSettings configures a features grid.
type FeaturesSettings struct {
	Heading string        `json:"heading,omitempty"`
	Items   []FeatureItem `json:"items"`
}

// CollectionSettings configures sections that showcase a subset of a content
// collection (products, services, testimonials, team, clients, blog, faq).
type CollectionSettings struct {
	Heading  string  `json:"heading,omitempty"`
	Limit    int     `json:"limit,omitempty"`    // 0 means provider default
	Featured []int64 `json:"featured,omitempty"` // explicit entity ids, in order
	Layout   string  `json:"layout,omitempty"`   // grid, carousel, list
}

// CTASettings configures a call-to-action band. Both buttons are optional; a
// CTA with no buttons renders as a plain banner.
type CTASettings struct {
	Heading         string         `json:"heading"`
	Text            string         `json:"text,omitempty"`
	PrimaryButton   *SectionButton `json:"primaryButton,omitempty"`
	SecondaryButton *SectionButton `json:"secondaryButton,omitempty"`
}

// ContactSettings configures an embedded contact block.
type ContactSettings struct {
	Heading  string `json:"heading,omitempty"`
	Text     string `json:"text,omitempty"`
	ShowForm bool   `json:"showForm"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// AboutSettings configures an about/intro block.
type AboutSettings struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"` // sanitized HTML
	Image   string `json:"image,omitempty"`
}

// LinkItem is one entry in a links section.
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinksSettings configures a list-of-links section.
type LinksSettings struct {
	Heading string     `json:"heading,omitempty"`
	Items   []LinkItem `json:"items"`
}

// rawSection mirrors the provider's duck-typed section shape: a discriminator
// plus a free-form settings bag.
type rawSection struct {
	Type     string          `json:"type"`
	Order    int             `json:"order"`
	Settings json.RawMessage `json:"settings"`
}

// DecodeSection converts a provider section (type + settings bag) into the
// tagged PageSection. Unknown-but-present types fall through to the custom
// variant with the raw settings preserved.
func DecodeSection(data []byte) (PageSection, error) {
	var raw rawSection
	if err := json.Unmarshal(data, &raw); err != nil {
		return PageSection{}, fmt.Errorf("decoding section: %w", err)
	}
	return decodeRawSection(raw)
}

func decodeRawSection(raw rawSection) (PageSection, error) {
	s := PageSection{Type: raw.Type, Order: raw.Order}
	settings := raw.Settings
	if len(settings) == 0 {
		settings = []byte("{}")
	}

	if !knownSectionTypes[raw.Type] {
		s.Type = SectionTypeCustom
		var bag map[string]any
		if err := json.Unmarshal(settings, &bag); err != nil {
			return PageSection{}, fmt.Errorf("decoding custom section settings: %w", err)
		}
		if raw.Type != "" {
			if bag == nil {
				bag = map[string]any{}
			}
			bag["originalType"] = raw.Type
		}
		s.Custom = bag
		return s, nil
	}

	var err error
	switch raw.Type {
	case SectionTypeHero:
		s.Hero = &HeroSettings{}
		err = json.Unmarshal(settings, s.Hero)
	case SectionTypeFeatures:
		s.Features = &FeaturesSettings{}
		err = json.Unmarshal(settings, s.Features)
		if err == nil && s.Features.Items == nil {
			s.Features.Items = []FeatureItem{}
		}
	case SectionTypeCTA:
		s.CTA = &CTASettings{}
		err = json.Unmarshal(settings, s.CTA)
	case SectionTypeContact:
		s.Contact = &ContactSettings{}
		err = json.Unmarshal(settings, s.Contact)
	case SectionTypeAbout:
		s.About = &AboutSettings{}
		err = json.Unmarshal(settings, s.About)
	case SectionTypeLinks:
		s.Links = &LinksSettings{}
		err = json.Unmarshal(settings, s.Links)
		if err == nil && s.Links.Items == nil {
			s.Links.Items = []LinkItem{}
		}
	case SectionTypeCustom:
		var bag map[string]any
		err = json.Unmarshal(settings, &bag)
		s.Custom = bag
	default:
		// Collection-backed sections share one settings shape.
		cs := &CollectionSettings{}
		err = json.Unmarshal(settings, cs)
		switch raw.Type {
		case SectionTypeTestimonials:
			s.Testimonials = cs
		case SectionTypeProducts:
			s.Products = cs
		case SectionTypeServices:
			s.Services = cs
		case SectionTypeTeam:
			s.Team = cs
		case SectionTypeClients:
			s.Clients = cs
		case SectionTypeBlog:
			s.Blog = cs
		case SectionTypeFAQ:
			s.FAQ = cs
		}
	}
	if err != nil {
		return PageSection{}, fmt.Errorf("decoding %s section settings: %w", raw.Type, err)
	}

	return s, nil
}

// DecodeSections converts a list of provider sections, preserving order.
func DecodeSections(data []byte) ([]PageSection, error) {
	var raws []rawSection
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decoding sections: %w", err)
	}

	sections := make([]PageSection, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeRawSection(raw)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}
