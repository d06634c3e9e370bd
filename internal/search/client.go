package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Item is one web result, reshaped to the fields the page renders.
type Item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Client defines the contract for querying the upstream search API.
type Client interface {
	Search(ctx context.Context, query string) ([]Item, error)
}

// DefaultBaseURL is the Google Programmable Search JSON API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	engineID string
	client   *http.Client
}

// NewHTTPClient constructs a search client. The timeout bounds the whole
// upstream call; the search box is interactive, keep it short.
func NewHTTPClient(baseURL, apiKey, engineID string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		engineID: engineID,
		client:   &http.Client{Timeout: timeout},
	}
}

// Search runs a free-text query upstream and returns the result items.
// An absent items field counts as zero results, not an error.
func (c *HTTPClient) Search(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: upstream returned %d", resp.StatusCode)
	}

	var payload struct {
		Items []Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if payload.Items == nil {
		return []Item{}, nil
	}
	return payload.Items, nil
}
