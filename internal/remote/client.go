// Package remote is the client for the workout-data service that stores raw
// plan and session records. The service owns its wire format; this client
// reads only the fields the normalizer consumes and passes records through as
// untyped maps. List endpoints are paginated, and every collection exists in
// two tiers: the user's private records and the public/shared pool. Fetch
// order is fixed (private first), and the tiers are merged with first-seen
// de-duplication before anything downstream sees them.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/claude/planfit/internal/catalog"
)

// Client talks to the workout-data service over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// recordPage is one page of a paginated list response.
type recordPage struct {
	Records       []map[string]any `json:"records"`
	NextPageToken string           `json:"nextPageToken"`
}

// FetchSessions returns the merged private-then-public session records for a
// user, de-duplicated by identifier with the private copy winning.
func (c *Client) FetchSessions(ctx context.Context, userID string) ([]map[string]any, error) {
	return c.fetchTiered(ctx, "sessions", userID)
}

// FetchPlans returns the merged private-then-public plan records for a user.
func (c *Client) FetchPlans(ctx context.Context, userID string) ([]map[string]any, error) {
	return c.fetchTiered(ctx, "plans", userID)
}

func (c *Client) fetchTiered(ctx context.Context, collection, userID string) ([]map[string]any, error) {
	private, err := c.fetchAll(ctx, collection, userID, "private")
	if err != nil {
		return nil, fmt.Errorf("fetching private %s: %w", collection, err)
	}
	public, err := c.fetchAll(ctx, collection, userID, "public")
	if err != nil {
		return nil, fmt.Errorf("fetching public %s: %w", collection, err)
	}
	return catalog.MergeUnique(private, public, catalog.RecordID), nil
}

// fetchAll walks the pagination chain for one tier of a collection.
func (c *Client) fetchAll(ctx context.Context, collection, userID, tier string) ([]map[string]any, error) {
	var records []map[string]any
	pageToken := ""

	for {
		page, err := c.fetchPage(ctx, collection, userID, tier, pageToken)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.NextPageToken == "" {
			return records, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) fetchPage(ctx context.Context, collection, userID, tier, pageToken string) (*recordPage, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("tier", tier)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/%s?%s", c.baseURL, collection, q.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s request failed (status %d): %s", collection, resp.StatusCode, body)
	}

	var page recordPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding %s page: %w", collection, err)
	}
	return &page, nil
}
