package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
)

type fakeSettings struct {
	values map[string]string
}

func (f fakeSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func TestVendorFetchHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/extract", r.URL.Path)
		assert.Equal(t, "https://example.com/story", r.URL.Query().Get("url"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		_ = json.NewEncoder(w).Encode(vendorResponse{
			Title:    "Extracted title",
			Text:     "Extracted body text.",
			Authors:  []string{"Wire Desk"},
			Language: "en",
		})
	}))
	defer srv.Close()

	p := NewVendorProvider(fakeSettings{values: map[string]string{
		config.SettingVendorBaseURL: srv.URL,
		config.SettingVendorAPIKey:  "secret",
	}}, srv.Client())

	content, err := p.Fetch(context.Background(), Item{ArticleID: "a1", URL: "https://example.com/story"})
	require.NoError(t, err)
	assert.Equal(t, "Extracted title", content.Title)
	assert.Equal(t, "Extracted body text.", content.Text)
	assert.Equal(t, []string{"Wire Desk"}, content.Authors)
}

func TestVendorFetchUnconfigured(t *testing.T) {
	p := NewVendorProvider(fakeSettings{values: map[string]string{}}, nil)

	_, err := p.Fetch(context.Background(), Item{ArticleID: "a1", URL: "https://example.com/story"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestVendorFetchAuthFailureIsBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewVendorProvider(fakeSettings{values: map[string]string{
		config.SettingVendorBaseURL: srv.URL,
	}}, srv.Client())

	_, err := p.Fetch(context.Background(), Item{ArticleID: "a1", URL: "https://example.com/story"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlocked))
}
