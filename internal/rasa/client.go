// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rasa implements the client for the conversational agent webhook.
package rasa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
)

// Configuration constants for the webhook client.
const (
	// DefaultEndpoint is the Rasa REST channel webhook URL.
	DefaultEndpoint = "http://localhost:5005/webhooks/rest/webhook"

	// DefaultTimeout is the default timeout for webhook requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP transport for all webhook requests.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// Error variables for common webhook failures.
var (
	// ErrServerError indicates the webhook answered with a non-2xx status.
	ErrServerError = errors.New("agent returned an error status")

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed agent response")
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// SendRequest is the outbound payload, one per user turn.
type SendRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// ReplyFragment is one element of the agent's ordered reply sequence. A
// fragment optionally carries text, a bare image URL, a single attachment
// descriptor, or a custom payload with multiple media descriptors.
type ReplyFragment struct {
	RecipientID string             `json:"recipient_id,omitempty"`
	Text        string             `json:"text,omitempty"`
	Image       string             `json:"image,omitempty"`
	Attachment  *media.Descriptor  `json:"attachment,omitempty"`
	Media       []media.Descriptor `json:"media,omitempty"`
	Custom      *CustomPayload     `json:"custom,omitempty"`
}

// CustomPayload is the structured media envelope some agent actions send
// through the REST channel's custom field.
type CustomPayload struct {
	Media []media.Descriptor `json:"media,omitempty"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the agent webhook. The zero value is not usable; construct
// with NewClient.
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a webhook client for the given endpoint. An empty
// endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   DefaultTimeout,
		},
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the configured webhook URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// =============================================================================
// SEND
// =============================================================================

// Send posts one user turn to the webhook and returns the agent's ordered
// reply fragments. An empty fragment slice is a valid "no reply" answer.
//
// Every failure mode - transport error, non-2xx status, undecodable body -
// surfaces as an error; the caller substitutes the synthetic error message.
// Sends are never retried automatically.
func (c *Client) Send(ctx context.Context, sender, message string) ([]ReplyFragment, error) {
	body, err := json.Marshal(SendRequest{Sender: sender, Message: message})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	data, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrServerError, resp.StatusCode)
	}

	var fragments []ReplyFragment
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return fragments, nil
}

// readResponse reads the response body with a size limit.
//
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}

	return body, nil
}

// MediaDescriptors returns the fragment's multi-media sequence, merging the
// fragment-level list with the custom envelope, in arrival order.
func (f *ReplyFragment) MediaDescriptors() []media.Descriptor {
	if f.Custom == nil {
		return f.Media
	}
	return append(append([]media.Descriptor{}, f.Media...), f.Custom.Media...)
}
