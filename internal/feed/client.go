// Package feed talks to the activity data API.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"chainfeed/internal/domain"
)

// activitiesResponse is the wire envelope of the activities endpoint.
type activitiesResponse struct {
	Data []domain.Activity `json:"data"`
}

// Client fetches account activities from the data API.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Options configures a Client.
type Options struct {
	Endpoint       string
	RequestTimeout time.Duration // 0 means no client-side timeout
	RatePerSecond  float64
	Burst          int
}

// NewClient creates a client for the given API endpoint.
func NewClient(opts Options) *Client {
	ratePerSecond := opts.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 5
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 10
	}

	return &Client{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		httpClient: &http.Client{Timeout: opts.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

// FetchActivities returns up to limit recent activities for the account.
// A nil data array in the response is returned as an empty slice.
func (c *Client) FetchActivities(ctx context.Context, account string, limit int) ([]domain.Activity, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/decentralized/%s?limit=%d", c.endpoint, url.PathEscape(account), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activities request returned status %d", resp.StatusCode)
	}

	var decoded activitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode activities response: %w", err)
	}

	if decoded.Data == nil {
		return []domain.Activity{}, nil
	}
	return decoded.Data, nil
}
