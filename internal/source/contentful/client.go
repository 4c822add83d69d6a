// Package contentful queries the Contentful Content Delivery API and decodes
// responses into domain collections.
package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"portfolio_api/internal/domain"
)

// Config holds Content Delivery API connection settings.
type Config struct {
	BaseURL        string
	SpaceID        string
	Environment    string
	AccessToken    string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a Content Delivery API client with retry and backoff.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	spaceID        string
	environment    string
	accessToken    string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a Contentful client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		spaceID:        cfg.SpaceID,
		environment:    cfg.Environment,
		accessToken:    cfg.AccessToken,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "contentful"),
	}
}

// Query runs one paginated entries query. A query matching zero rows is not
// an error: the collection comes back with Total 0 and no items.
func (c *Client) Query(ctx context.Context, q domain.ContentQuery) (*domain.Collection, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries",
		c.baseURL, c.spaceID, c.environment)

	params := url.Values{}
	params.Set("content_type", q.ContentType)
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Skip > 0 {
		params.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SysID != "" {
		params.Set("sys.id", q.SysID)
	}
	if q.SearchWord != "" {
		params.Set("query", q.SearchWord)
	}
	for path, value := range q.FieldEquals {
		params.Set(path, value)
	}
	if q.LinksToEntry != "" {
		params.Set("links_to_entry", q.LinksToEntry)
	}
	if !q.CreatedFrom.IsZero() {
		params.Set("sys.createdAt[gte]", q.CreatedFrom.Format(time.RFC3339))
	}
	if !q.CreatedBefore.IsZero() {
		params.Set("sys.createdAt[lt]", q.CreatedBefore.Format(time.RFC3339))
	}

	var collection *domain.Collection
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		collection, err = c.doRequest(ctx, endpoint+"?"+params.Encode())
		if err == nil {
			return collection, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"content_type", q.ContentType,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, url string) (*domain.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var collection domain.Collection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &collection, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
