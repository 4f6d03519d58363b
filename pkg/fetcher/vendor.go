package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/finsight/newsflow/pkg/config"
)

// settingsReader is the slice of the settings service the vendor provider
// needs: base URL and API key are operator-managed, not env vars.
type settingsReader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// VendorProvider fetches pre-extracted article content from a commercial
// content API. It is normally the fallback behind the scraper.
type VendorProvider struct {
	settings   settingsReader
	httpClient *http.Client
}

// NewVendorProvider creates the vendor-API provider.
func NewVendorProvider(settings settingsReader, httpClient *http.Client) *VendorProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &VendorProvider{settings: settings, httpClient: httpClient}
}

func (p *VendorProvider) Name() string { return "vendor" }

// vendorResponse is the content API's extraction payload.
type vendorResponse struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Authors  []string `json:"authors"`
	Keywords []string `json:"keywords"`
	Language string   `json:"language"`
}

func (p *VendorProvider) Fetch(ctx context.Context, item Item) (*Content, error) {
	base, ok, err := p.settings.Get(ctx, config.SettingVendorBaseURL)
	if err != nil {
		return nil, fmt.Errorf("vendor settings: %w", err)
	}
	if !ok || base == "" {
		return nil, fmt.Errorf("vendor provider not configured")
	}
	key, _, err := p.settings.Get(ctx, config.SettingVendorAPIKey)
	if err != nil {
		return nil, fmt.Errorf("vendor settings: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/extract?url=%s", base, url.QueryEscape(item.URL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("vendor request: %w", err)
	}
	if key != "" {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vendor fetch %s: %w", item.URL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden:
		return nil, fmt.Errorf("%w: vendor status %d", ErrBlocked, resp.StatusCode)
	default:
		return nil, fmt.Errorf("vendor fetch %s: status %d", item.URL, resp.StatusCode)
	}

	var decoded vendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("vendor response: %w", err)
	}

	return &Content{
		Title:    decoded.Title,
		Text:     decoded.Text,
		Authors:  decoded.Authors,
		Keywords: decoded.Keywords,
		Language: decoded.Language,
	}, nil
}
