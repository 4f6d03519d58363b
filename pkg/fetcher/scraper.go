package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// mainContentSelectors are tried in order; the first selector yielding text
// wins. Generic containers come last.
var mainContentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	".article-body", ".post-content", ".entry-content", ".story-body",
	".content", "#content",
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// rawTextCap bounds the body text kept for the salvage pass; beyond this the
// prompt cost outweighs any recovery value.
const rawTextCap = 20000

// ScraperProvider extracts article text directly from the publisher page.
type ScraperProvider struct {
	httpClient *http.Client
	userAgent  string
}

// NewScraperProvider creates the direct-scrape provider. A nil client uses a
// default with sane timeouts; per-call deadlines come from the context.
func NewScraperProvider(httpClient *http.Client) *ScraperProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ScraperProvider{
		httpClient: httpClient,
		userAgent:  "newsflow/1.0 (+https://github.com/finsight/newsflow)",
	}
}

func (p *ScraperProvider) Name() string { return "scraper" }

// Fetch downloads and extracts the article. Auth and legal refusals map to
// ErrBlocked so the caller can mark the article terminal instead of retrying.
func (p *ScraperProvider) Fetch(ctx context.Context, item Item) (*Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid article URL: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", item.URL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden,
		http.StatusUnavailableForLegalReasons:
		return nil, fmt.Errorf("%w: status %d", ErrBlocked, resp.StatusCode)
	default:
		return nil, fmt.Errorf("fetch %s: status %d", item.URL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", item.URL, err)
	}
	return extract(doc), nil
}

// extract harvests paragraph text from the main content container, falling
// back to the whole body, plus title/author/keyword metadata.
func extract(doc *goquery.Document) *Content {
	doc.Find("script, style, nav, footer, header, aside, form, iframe, noscript").Remove()

	var b strings.Builder
	for _, selector := range mainContentSelectors {
		doc.Find(selector).First().Find("p, h2, h3, li, blockquote").Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				b.WriteString(text)
				b.WriteString("\n\n")
			}
		})
		if b.Len() > 0 {
			break
		}
	}
	if b.Len() == 0 {
		doc.Find("body p").Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				b.WriteString(text)
				b.WriteString("\n\n")
			}
		})
	}

	content := &Content{
		Title:   extractTitle(doc),
		Text:    strings.TrimSpace(blankLines.ReplaceAllString(b.String(), "\n\n")),
		RawText: rawBodyText(doc),
	}

	if author, ok := doc.Find("meta[name='author']").Attr("content"); ok {
		if author = strings.TrimSpace(author); author != "" {
			content.Authors = []string{author}
		}
	}
	if keywords, ok := doc.Find("meta[name='keywords']").Attr("content"); ok {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				content.Keywords = append(content.Keywords, kw)
			}
		}
	}
	if lang, ok := doc.Find("html").Attr("lang"); ok {
		content.Language = strings.TrimSpace(lang)
	}
	return content
}

// rawBodyText flattens the page's visible text, capped at rawTextCap runes.
func rawBodyText(doc *goquery.Document) string {
	raw := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	if runes := []rune(raw); len(runes) > rawTextCap {
		raw = string(runes[:rawTextCap])
	}
	return raw
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
