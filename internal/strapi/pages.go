// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nexiotech/sitegate/internal/model"
)

type pageAttrs struct {
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	MetaDescription string          `json:"metaDescription"`
	Sections        json.RawMessage `json:"sections"`
}

// PageSource serves the pages collection. Pages carry nested section
// components, so the source asks for deep population and decodes the section
// list into the tagged form.
type PageSource struct{ c *Client }

// NewPageSource creates a PageSource over the given client.
func NewPageSource(c *Client) *PageSource { return &PageSource{c: c} }

// List returns all pages with their sections decoded.
func (s *PageSource) List(ctx context.Context) ([]model.PageContent, error) {
	query := url.Values{}
	query.Set("populate", "deep")

	entries, err := s.c.list(ctx, "pages", query)
	if err != nil {
		return nil, err
	}

	pages := make([]model.PageContent, 0, len(entries))
	for _, e := range entries {
		page, err := transformPage(e)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// BySlug returns the page with the given slug, or nil when absent.
func (s *PageSource) BySlug(ctx context.Context, slug string) (*model.PageContent, error) {
	query := url.Values{}
	query.Set("populate", "deep")
	query.Set("filters[slug][$eq]", slug)

	entries, err := s.c.list(ctx, "pages", query)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	page, err := transformPage(entries[0])
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func transformPage(e entry) (model.PageContent, error) {
	var raw pageAttrs
	if err := decodeAttributes(e, &raw); err != nil {
		return model.PageContent{}, err
	}

	sections := []model.PageSection{}
	if len(raw.Sections) > 0 {
		decoded, err := model.DecodeSections(raw.Sections)
		if err != nil {
			return model.PageContent{}, fmt.Errorf("page %q: %w", raw.Slug, err)
		}
		sections = decoded
	}

	return model.PageContent{
		ID:              e.ID,
		Title:           raw.Title,
		Slug:            raw.Slug,
		MetaDescription: raw.MetaDescription,
		Sections:        sections,
	}, nil
}
