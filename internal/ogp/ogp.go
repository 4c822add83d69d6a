// Package ogp fetches Open Graph metadata from a web page's head.
package ogp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher scrapes og:* meta tags from remote pages.
type Fetcher struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func New(timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "ogp"),
	}
}

// Fetch downloads the page and returns a property -> content map of every
// meta tag carrying a property attribute (og:title, og:image, and so on).
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (map[string]string, error) {
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "bot")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	meta := make(map[string]string)
	doc.Find("head meta[property]").Each(func(_ int, sel *goquery.Selection) {
		property := strings.TrimSpace(sel.AttrOr("property", ""))
		if property == "" {
			return
		}
		meta[property] = sel.AttrOr("content", "")
	})

	return meta, nil
}
