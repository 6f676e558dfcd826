// Copyright (c) 2025-2026 Nexio Technologies
// SPDX-License-Identifier: GPL-3.0-or-later

// Package httpx provides a small JSON HTTP client used by the CMS and ERP
// integrations. Errors are classified so callers can distinguish transport
// failures from provider-side rejections.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error kinds returned by the client.
const (
	KindConnectivity = "connectivity" // network unreachable, DNS, timeout
	KindProvider     = "provider"     // non-2xx response from the remote
	KindDecode       = "decode"       // response body is not the expected JSON
)

// Client configuration defaults.
const (
	DefaultTimeout = 15 * time.Second
	MaxErrorBody   = 4 * 1024 // Error response body retained for logging (4KB)
)

// Error is a classified request failure.
type Error struct {
	Kind    string // one of KindConnectivity, KindProvider, KindDecode
	Status  int    // HTTP status for provider errors, 0 otherwise
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error: HTTP %d: %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsConnectivity reports whether err is a connectivity-classified Error.
func IsConnectivity(err error) bool {
	var he *Error
	return errors.As(err, &he) && he.Kind == KindConnectivity
}

// IsProvider reports whether err is a provider-classified Error.
func IsProvider(err error) bool {
	var he *Error
	return errors.As(err, &he) && he.Kind == KindProvider
}

// sharedTransport is reused by all clients to pool connections.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// Client issues JSON requests against a single base URL with default headers.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Headers map[string]string // default headers applied to every request
	Timeout time.Duration     // 0 means DefaultTimeout
}

// New creates a Client for the given base URL.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	headers := make(map[string]string, len(opts.Headers))
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		headers: headers,
		http: &http.Client{
			Timeout:   timeout,
			Transport: sharedTransport,
		},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET request for path with optional query parameters and decodes
// the JSON response into out. Pass nil out to discard the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Kind: KindConnectivity, Message: "building request", Err: err}
	}

	return c.do(req, out)
}

// Post issues a POST request with a JSON-encoded body and decodes the JSON
// response into out. Pass nil out to discard the body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Message: "encoding request body", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, reader)
	if err != nil {
		return &Error{Kind: KindConnectivity, Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindConnectivity, Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Retain a bounded slice of the body for the log line.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Kind: KindProvider, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Message: "decoding response", Err: err}
	}

	return nil
}
