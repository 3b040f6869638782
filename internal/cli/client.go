// Package cli implements the interactive console client. It talks to a
// running service over HTTP rather than embedding the engine, so the
// console exercises the same API surface as any other frontend.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/davos/internal/adapters/tracklog"
	"github.com/okian/davos/internal/domain/types"
)

// Client is a thin typed wrapper over the recommendation API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// recommendRequest mirrors the POST /api/recommend body.
type recommendRequest struct {
	Profile string `json:"profile"`
	TopK    int    `json:"top_k,omitempty"`
}

// RecommendResult carries a recommendation response.
type RecommendResult struct {
	Success         bool                   `json:"success"`
	IsLinkedIn      bool                   `json:"is_linkedin"`
	ProfileParsed   types.ProfileView      `json:"profile_parsed"`
	Count           int                    `json:"count"`
	Recommendations []types.Recommendation `json:"recommendations"`
}

// SearchResult carries a search response.
type SearchResult struct {
	Success bool                 `json:"success"`
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Results []types.SearchResult `json:"results"`
}

// EventsResult carries the full catalog listing.
type EventsResult struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Events  []types.Event `json:"events"`
}

// TracksResult carries the track aggregation.
type TracksResult struct {
	Success bool               `json:"success"`
	Tracks  []types.TrackCount `json:"tracks"`
}

// HistoryResult carries the interaction log.
type HistoryResult struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	History []tracklog.Entry `json:"history"`
}

// apiError is the uniform failure envelope.
type apiError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Recommend requests recommendations for the given profile text.
func (c *Client) Recommend(ctx context.Context, profileText string, topK int) (*RecommendResult, error) {
	var out RecommendResult
	if err := c.post(ctx, "/api/recommend", recommendRequest{Profile: profileText, TopK: topK}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a keyword search.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	var out SearchResult
	path := fmt.Sprintf("/api/search?q=%s&limit=%d", url.QueryEscape(query), limit)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events fetches the full catalog.
func (c *Client) Events(ctx context.Context) (*EventsResult, error) {
	var out EventsResult
	if err := c.get(ctx, "/api/events", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tracks fetches the track counts.
func (c *Client) Tracks(ctx context.Context) (*TracksResult, error) {
	var out TracksResult
	if err := c.get(ctx, "/api/tracks", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the interaction log.
func (c *Client) History(ctx context.Context) (*HistoryResult, error) {
	var out HistoryResult
	if err := c.get(ctx, "/api/history", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
