package dispatcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finsight/newsflow/ent"
)

// maxFeedBytes bounds a single feed download.
const maxFeedBytes = 10 << 20

// pollOutcome is one conditional fetch of a feed.
type pollOutcome struct {
	NotModified  bool
	Items        []feedItem
	ETag         string
	LastModified string
}

// Poller fetches feeds with conditional GET so unchanged feeds cost one
// round-trip and no parsing.
type Poller struct {
	httpClient *http.Client
	userAgent  string
}

// NewPoller creates a feed poller. A nil client uses a default with a
// conservative timeout.
func NewPoller(httpClient *http.Client) *Poller {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Poller{
		httpClient: httpClient,
		userAgent:  "newsflow/1.0 (+https://github.com/finsight/newsflow)",
	}
}

// Poll fetches the feed's route, sending the stored validators. A 304 comes
// back as NotModified with the validators untouched.
func (p *Poller) Poll(ctx context.Context, feed *ent.Feed) (*pollOutcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.Route, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed route %s: %w", feed.Route, err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	if feed.Etag != "" {
		req.Header.Set("If-None-Match", feed.Etag)
	}
	if feed.LastModified != "" {
		req.Header.Set("If-Modified-Since", feed.LastModified)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll %s: %w", feed.Route, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return &pollOutcome{
			NotModified:  true,
			ETag:         feed.Etag,
			LastModified: feed.LastModified,
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poll %s: status %d", feed.Route, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", feed.Route, err)
	}
	items, err := parseFeed(data)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feed.Route, err)
	}

	return &pollOutcome{
		Items:        items,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}
