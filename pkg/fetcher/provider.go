// Package fetcher implements Layer 1.5: full-text retrieval for articles the
// scorer kept, with a configurable provider chain and per-article dispatch
// into the Layer-2 queue.
package fetcher

import (
	"context"
	"errors"
	"strings"
)

// Item is the Layer-1 output slice a fetch needs to drive Layer 2.
type Item struct {
	ArticleID    string
	URL          string
	Source       string
	Title        string
	Summary      string
	Symbol       string
	Market       string
	Routing      string
	FilterStatus string
}

// Content is one provider's successful extraction. RawText is the page's
// full visible text, kept so the salvage pass has something to work with
// when selector extraction came up short.
type Content struct {
	Title    string
	Text     string
	RawText  string
	Authors  []string
	Keywords []string
	Language string
}

// Provider retrieves article full text. Providers are tried in chain order;
// the first success wins.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, item Item) (*Content, error)
}

// ErrBlocked marks a fetch refused by the remote side (auth wall, paywall,
// legal block). Blocked articles are terminal; they are not retried through
// other chains later.
var ErrBlocked = errors.New("fetch blocked by remote")

// Word-count boundaries for result quality. Below partial is a failure:
// there is nothing worth analysing.
const (
	fullTextWords = 120
	partialWords  = 30
)

func wordCount(s string) int {
	return len(strings.Fields(s))
}
