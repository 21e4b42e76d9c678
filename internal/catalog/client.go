// Package catalog talks to the Google Books volumes API and normalizes
// its results into form-ready book candidates.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"booktrail/internal/search"
)

// UpstreamError reports a non-2xx response from the Google Books API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("google books API error: %d", e.StatusCode)
}

// SearchResult is the ranked outcome of one catalog search.
type SearchResult struct {
	TotalItems int
	Items      []Volume
}

// Client fetches book data from the Google Books volumes API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new Google Books API client. The API key is
// optional; anonymous requests are allowed at a lower quota.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://www.googleapis.com/books/v1",
		apiKey:  apiKey,
	}
}

// Search runs a raw user input through query building and returns the
// ranked volumes. The input is assumed to have passed search.Validate.
func (c *Client) Search(ctx context.Context, input string) (*SearchResult, error) {
	kind := search.Classify(input)

	params := url.Values{}
	params.Set("q", BuildQuery(input))
	params.Set("maxResults", strconv.Itoa(ResultLimit(kind)))
	params.Set("orderBy", "relevance")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search volumes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &SearchResult{
		TotalItems: result.TotalItems,
		Items:      result.Items,
	}, nil
}
