package fetcher

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// refineChat scripts one reply per purpose and records the purposes used.
type refineChat struct {
	mu       sync.Mutex
	replies  map[config.Purpose]string
	errs     map[config.Purpose]error
	purposes []config.Purpose
}

func (f *refineChat) ChatForPurpose(_ context.Context, p config.Purpose, _ *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purposes = append(f.purposes, p)
	if err := f.errs[p]; err != nil {
		return nil, err
	}
	return &llm.Response{
		Content: f.replies[p],
		Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 50},
	}, nil
}

func (f *refineChat) calledPurposes() []config.Purpose {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]config.Purpose(nil), f.purposes...)
}

func TestCleanStripsBoilerplate(t *testing.T) {
	cleaned := longText(150)
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeLayer15Cleaning: cleaned + "\n",
	}}
	r := NewRefiner(chat, nil, config.DefaultPipelineConfig())

	got := r.Clean(context.Background(), "Title", longText(200)+"\n\nSubscribe to our newsletter!")
	assert.Equal(t, cleaned, got)
	assert.Equal(t, []config.Purpose{config.PurposeLayer15Cleaning}, chat.calledPurposes())
}

func TestCleanFailureKeepsText(t *testing.T) {
	chat := &refineChat{errs: map[config.Purpose]error{
		config.PurposeLayer15Cleaning: errors.New("provider down"),
	}}
	r := NewRefiner(chat, nil, config.DefaultPipelineConfig())

	text := longText(200)
	assert.Equal(t, text, r.Clean(context.Background(), "Title", text))
}

func TestCleanOverAggressiveOutputKeepsText(t *testing.T) {
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeLayer15Cleaning: "nothing left",
	}}
	r := NewRefiner(chat, nil, config.DefaultPipelineConfig())

	text := longText(200)
	assert.Equal(t, text, r.Clean(context.Background(), "Title", text),
		"a reply below the usable floor never replaces good text")
}

func TestSalvageExtractsFromRawPage(t *testing.T) {
	body := longText(120)
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeContentExtraction: body,
	}}
	r := NewRefiner(chat, nil, config.DefaultPipelineConfig())

	got, err := r.Salvage(context.Background(), "Title", longText(500))
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, []config.Purpose{config.PurposeContentExtraction}, chat.calledPurposes())
}

func TestSalvageEmptyResponseFails(t *testing.T) {
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeContentExtraction: "  \n",
	}}
	r := NewRefiner(chat, nil, config.DefaultPipelineConfig())

	_, err := r.Salvage(context.Background(), "Title", longText(500))
	require.Error(t, err)
}

func TestBatchFetchShortExtractionSalvaged(t *testing.T) {
	salvaged := longText(180)
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeContentExtraction: salvaged,
	}}
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: "paywall teaser", RawText: longText(600)},
	}}
	fx := newFixtureWithRefiner(t, []string{"scraper"},
		NewRefiner(chat, nil, config.DefaultPipelineConfig()), provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	_, ok := fx.articles.fetched["a1"]
	require.True(t, ok, "salvaged article reaches the store")
	require.Len(t, fx.jobs.payloads, 1)

	doc, err := fx.store.Read(fx.jobs.payloads[0]["file_path"].(string))
	require.NoError(t, err)
	assert.Equal(t, salvaged, doc.Text)

	assert.Contains(t, chat.calledPurposes(), config.PurposeContentExtraction)
	assert.Contains(t, chat.calledPurposes(), config.PurposeLayer15Cleaning)
}

func TestBatchFetchCleanedTextPersisted(t *testing.T) {
	cleaned := longText(140)
	chat := &refineChat{replies: map[config.Purpose]string{
		config.PurposeLayer15Cleaning: cleaned,
	}}
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: longText(300) + "\n\nCookie notice. Related articles."},
	}}
	fx := newFixtureWithRefiner(t, []string{"scraper"},
		NewRefiner(chat, nil, config.DefaultPipelineConfig()), provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	require.Len(t, fx.jobs.payloads, 1)
	doc, err := fx.store.Read(fx.jobs.payloads[0]["file_path"].(string))
	require.NoError(t, err)
	assert.Equal(t, cleaned, doc.Text)
}

func TestBatchFetchNoRawTextStaysTooShort(t *testing.T) {
	chat := &refineChat{}
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: "paywall teaser"},
	}}
	fx := newFixtureWithRefiner(t, []string{"scraper"},
		NewRefiner(chat, nil, config.DefaultPipelineConfig()), provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	assert.Contains(t, fx.articles.errors["a1"], "too short")
	assert.Empty(t, chat.calledPurposes(), "no salvage without raw page text")
}
