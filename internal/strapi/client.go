// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package strapi implements the CMS side of the content gateway: a thin
// client for the Strapi REST API plus one data source per content type.
// Each source fetches a collection, flattens Strapi's {id, attributes}
// envelope and maps the result onto the internal entity shapes.
package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/nexiotech/sitegate/internal/httpx"
	"github.com/nexiotech/sitegate/internal/middleware"
)

// Client wraps the Strapi REST API.
type Client struct {
	http    *httpx.Client
	logger  *slog.Logger
	enabled bool
}

// NewClient creates a Strapi client. When baseURL or token is empty the
// client reports itself unconfigured and callers short-circuit to fallback
// content without attempting the network.
func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	enabled := baseURL != "" && token != ""

	var hc *httpx.Client
	if enabled {
		hc = httpx.New(httpx.Options{
			BaseURL: baseURL,
			Timeout: timeout,
			Headers: map[string]string{
				"Authorization": "Bearer " + token,
			},
		})
	}

	return &Client{
		http:    hc,
		logger:  logger,
		enabled: enabled,
	}
}

// Configured reports whether the client has a base URL and token.
func (c *Client) Configured() bool {
	return c.enabled
}

// entry is one item of a Strapi collection response.
type entry struct {
	ID         int64           `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
}

// listEnvelope is Strapi's collection response shape.
type listEnvelope struct {
	Data []entry `json:"data"`
}

// singleEnvelope is Strapi's single-entry response shape.
type singleEnvelope struct {
	Data *entry `json:"data"`
}

// list GETs a collection and returns its flattened entries.
func (c *Client) list(ctx context.Context, collection string, query url.Values) ([]entry, error) {
	if !c.enabled {
		return nil, fmt.Errorf("strapi client is not configured")
	}
	if query == nil {
		query = url.Values{}
	}
	if query.Get("populate") == "" {
		query.Set("populate", "*")
	}
	if loc := middleware.LocaleFromContext(ctx); loc != "" && query.Get("locale") == "" {
		query.Set("locale", loc)
	}

	var env listEnvelope
	if err := c.http.Get(ctx, "/api/"+collection, query, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// one GETs a single entry by id.
func (c *Client) one(ctx context.Context, collection string, id int64) (*entry, error) {
	if !c.enabled {
		return nil, fmt.Errorf("strapi client is not configured")
	}

	query := url.Values{"populate": {"*"}}
	if loc := middleware.LocaleFromContext(ctx); loc != "" {
		query.Set("locale", loc)
	}
	var env singleEnvelope
	if err := c.http.Get(ctx, fmt.Sprintf("/api/%s/%d", collection, id), query, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// media is Strapi's nested media relation shape; URL() flattens it.
type media struct {
	Data *struct {
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

// URL returns the media URL, or "" when the relation is empty.
func (m media) URL() string {
	if m.Data == nil {
		return ""
	}
	return m.Data.Attributes.URL
}

// decodeAttributes unmarshals an entry's attributes into dst.
func decodeAttributes(e entry, dst any) error {
	if len(e.Attributes) == 0 {
		return fmt.Errorf("entry %d has no attributes", e.ID)
	}
	if err := json.Unmarshal(e.Attributes, dst); err != nil {
		return fmt.Errorf("decoding entry %d: %w", e.ID, err)
	}
	return nil
}
