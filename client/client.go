// Package client provides a small HTTP client for the keyrank service.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
)

// ExtractRequest is the payload for a keyword extraction call.
type ExtractRequest struct {
	Text           string `json:"text"`
	TopN           int    `json:"top_n,omitempty"`
	WindowLength   int    `json:"window_length,omitempty"`
	PositionBiased bool   `json:"position_biased,omitempty"`
}

// Keyword is a single ranked keyword.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// ExtractResult holds the ranked keywords and scoring outcome.
type ExtractResult struct {
	Keywords   []Keyword `json:"keywords"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
}

// Client talks to a keyrank server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewWithHTTPClient creates a client using the given http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// Extract submits text for keyword extraction and returns the ranked
// keywords.
func (c *Client) Extract(ctx context.Context, req ExtractRequest) (*ExtractResult, error) {
	body, err := gojson.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling /extract: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFrom(resp)
	}

	var result ExtractResult
	if err := gojson.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &result, nil
}

// Health checks the server liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("calling /healthz: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return apiErrorFrom(resp)
	}
	return nil
}

// apiErrorFrom builds an APIError from a non-200 response. The server
// sends {"error": "..."} bodies; anything else is kept verbatim.
func apiErrorFrom(resp *http.Response) *APIError {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := gojson.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
