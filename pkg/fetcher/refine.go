package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

const cleaningPrompt = `You clean extracted news article text. Remove boilerplate that survived extraction: cookie and consent banners, navigation labels, newsletter and subscription prompts, related-article links, photo credits, advertising fragments, and legal disclaimers. Keep the article's own sentences verbatim, in order. Respond with the cleaned text only.`

const salvagePrompt = `You extract the main news article from raw page text. The input is the full visible text of a web page, including menus, teasers and footers. Return the article's own text verbatim, nothing else. If the page contains no article, return an empty response.`

// chatClient is the slice of the LLM gateway the refiner calls.
type chatClient interface {
	ChatForPurpose(ctx context.Context, purpose config.Purpose, req *llm.Request) (*llm.Response, error)
}

// tokenSink records LLM token usage; nil disables tracking.
type tokenSink interface {
	TrackTokens(ctx context.Context, purpose string, prompt, completion, cached int)
}

// Refiner runs the LLM steps of Layer 1.5: boilerplate cleanup over extracted
// text, and a salvage extraction from the raw page when selector-based
// scraping came up short.
type Refiner struct {
	chat  chatClient
	stats tokenSink
	cfg   *config.PipelineConfig
}

// NewRefiner creates the Layer-1.5 text refiner. stats may be nil.
func NewRefiner(chat chatClient, stats tokenSink, cfg *config.PipelineConfig) *Refiner {
	return &Refiner{chat: chat, stats: stats, cfg: cfg}
}

// Clean strips boilerplate from extracted article text. Cleaning is
// fail-open: on any error, or when the model strips the text below the
// usable floor, the input comes back unchanged.
func (r *Refiner) Clean(ctx context.Context, title, text string) string {
	resp, err := r.chat.ChatForPurpose(ctx, config.PurposeLayer15Cleaning, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: cleaningPrompt},
			{Role: llm.RoleUser, Content: "Title: " + title + "\n\n" + text},
		},
		Timeout: r.cfg.FetchTimeout,
	})
	if err != nil {
		slog.Warn("Content cleaning failed, keeping extracted text", "error", err)
		return text
	}
	if r.stats != nil {
		r.stats.TrackTokens(ctx, string(config.PurposeLayer15Cleaning),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}

	cleaned := strings.TrimSpace(resp.Content)
	if wordCount(cleaned) < partialWords && wordCount(text) >= partialWords {
		slog.Warn("Cleaning stripped too much text, keeping extracted text")
		return text
	}
	return cleaned
}

// Salvage pulls the article text out of the page's raw body text. Unlike
// Clean, failure surfaces to the caller: a salvage that produced nothing
// means the fetch attempt failed.
func (r *Refiner) Salvage(ctx context.Context, title, raw string) (string, error) {
	resp, err := r.chat.ChatForPurpose(ctx, config.PurposeContentExtraction, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: salvagePrompt},
			{Role: llm.RoleUser, Content: "Title: " + title + "\n\n" + raw},
		},
		Timeout: r.cfg.FetchTimeout,
	})
	if err != nil {
		return "", err
	}
	if r.stats != nil {
		r.stats.TrackTokens(ctx, string(config.PurposeContentExtraction),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", errors.New("page contains no article text")
	}
	return text, nil
}
