// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package erpnext talks to an ERPNext instance over its REST resource API.
// It serves two roles: reading HR records (employees, job openings) as
// website content, and writing website form submissions into CRM doctypes.
// When credentials are absent the client reports unconfigured and form
// submissions resolve in stub mode without touching the network.
package erpnext

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/nexiotech/sitegate/internal/httpx"
)

// Client wraps the ERPNext resource API.
type Client struct {
	http    *httpx.Client
	logger  *slog.Logger
	enabled bool
}

// NewClient builds a client for the given instance. An empty base URL, key
// or secret yields an unconfigured client.
func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration, logger *slog.Logger) *Client {
	enabled := baseURL != "" && apiKey != "" && apiSecret != ""

	var hc *httpx.Client
	if enabled {
		hc = httpx.New(httpx.Options{
			BaseURL: baseURL,
			Headers: map[string]string{
				"Authorization": fmt.Sprintf("token %s:%s", apiKey, apiSecret),
			},
			Timeout: timeout,
		})
	}

	return &Client{
		http:    hc,
		logger:  logger,
		enabled: enabled,
	}
}

// Configured reports whether the client has a base URL and credentials.
func (c *Client) Configured() bool {
	return c.enabled
}

type docList struct {
	Data []json.RawMessage `json:"data"`
}

type docCreated struct {
	Data struct {
		Name string `json:"name"`
	} `json:"data"`
}

// list fetches all documents of a doctype with the given fields.
// limit_page_length=0 disables ERPNext's default pagination.
func (c *Client) list(ctx context.Context, doctype string, fields []string) ([]json.RawMessage, error) {
	if !c.enabled {
		return nil, fmt.Errorf("erpnext client is not configured")
	}

	fieldList, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding field list: %w", err)
	}

	query := url.Values{}
	query.Set("fields", string(fieldList))
	query.Set("limit_page_length", "0")

	var envelope docList
	if err := c.http.Get(ctx, "/api/resource/"+url.PathEscape(doctype), query, &envelope); err != nil {
		return nil, fmt.Errorf("listing %s: %w", doctype, err)
	}
	return envelope.Data, nil
}

// create inserts a document and returns its name.
func (c *Client) create(ctx context.Context, doctype string, doc any) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("erpnext client is not configured")
	}

	var envelope docCreated
	if err := c.http.Post(ctx, "/api/resource/"+url.PathEscape(doctype), doc, &envelope); err != nil {
		return "", fmt.Errorf("creating %s: %w", doctype, err)
	}
	return envelope.Data.Name, nil
}

// Ping checks reachability by listing a single User record. ERPNext always
// has at least the Administrator account, so an empty result still proves
// the instance answered.
func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled {
		return fmt.Errorf("erpnext client is not configured")
	}

	query := url.Values{}
	query.Set("limit_page_length", "1")

	var envelope docList
	if err := c.http.Get(ctx, "/api/resource/User", query, &envelope); err != nil {
		return fmt.Errorf("pinging erpnext: %w", err)
	}
	return nil
}
