// Package holiday answers "is this date a rest day" for reminder routing.
// National holidays come from the holidays-jp date API; weekends count
// unconditionally, and an API failure degrades to weekend-only.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nenelobo/NeneloBot_Go/internal/logger"
)

const (
	// DefaultBaseURL is the holidays-jp date API root.
	DefaultBaseURL = "https://holidays-jp.github.io/api/v1"

	requestTimeout = 10 * time.Second
	cacheYears     = 4
	dateLayout     = "2006-01-02"
)

// Client fetches and caches the national-holiday calendar per year.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *lru.Cache[int, map[string]bool]
}

// NewClient creates a holiday client. baseURL may be empty for the default.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cache, err := lru.New[int, map[string]bool](cacheYears)
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		cache:      cache,
	}, nil
}

// IsHoliday reports whether the date is a weekend or a national holiday.
// Lookup failures are logged and fall back to the weekend check alone.
func (c *Client) IsHoliday(ctx context.Context, date time.Time) bool {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return true
	}

	days, err := c.holidaysFor(ctx, date.Year())
	if err != nil {
		logger.FromContext(ctx).Warn("Holiday lookup failed, assuming weekday", "error", err)
		return false
	}
	return days[date.Format(dateLayout)]
}

func (c *Client) holidaysFor(ctx context.Context, year int) (map[string]bool, error) {
	if days, ok := c.cache.Get(year); ok {
		return days, nil
	}

	url := fmt.Sprintf("%s/%d/date.json", c.baseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var names map[string]string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("failed to parse holiday API response: %w", err)
	}

	days := make(map[string]bool, len(names))
	for date := range names {
		days[date] = true
	}
	c.cache.Add(year, days)
	return days, nil
}
