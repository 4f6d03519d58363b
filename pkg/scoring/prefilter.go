package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

const initialFilterPrompt = `You are a fast relevance screen for a financial news pipeline. You receive a numbered list of headlines with short summaries. Mark the entries that are obviously worthless for investors: ads, sponsored content, lifestyle pieces, duplicates of generic wire copy, content-free teasers. When in doubt, keep the entry. Respond with ONLY a JSON object: {"skip": [<1-based entry numbers to drop>]}.`

// InitialFilter is the optional cheap screen that runs before the three-agent
// scorer: one call over title+summary per batch, dropping only obvious skips
// so the heavy scorer does not spend tokens on them.
type InitialFilter struct {
	chat  chatClient
	stats statsSink
	cfg   *config.PipelineConfig
}

// NewInitialFilter creates the pre-scoring screen. stats may be nil.
func NewInitialFilter(chat chatClient, stats statsSink, cfg *config.PipelineConfig) *InitialFilter {
	return &InitialFilter{chat: chat, stats: stats, cfg: cfg}
}

// Screen returns one keep flag per item, in input order. Any failure is
// returned to the caller, which keeps everything: this screen only ever
// narrows work, it must never lose articles on an error path.
func (f *InitialFilter) Screen(ctx context.Context, items []Item) ([]bool, error) {
	keep := make([]bool, len(items))
	for i := range keep {
		keep[i] = true
	}
	if len(items) == 0 {
		return keep, nil
	}

	resp, err := f.chat.ChatForPurpose(ctx, config.PurposeNewsFilter, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: initialFilterPrompt},
			{Role: llm.RoleUser, Content: buildScreenPrompt(items)},
		},
		ResponseFormat: llm.ResponseFormatJSON,
		Timeout:        f.cfg.ScoringTimeout,
	})
	if err != nil {
		if f.stats != nil {
			f.stats.TrackFilterError(ctx)
		}
		return nil, err
	}
	if f.stats != nil {
		f.stats.TrackTokens(ctx, string(config.PurposeNewsFilter),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}

	var verdict struct {
		Skip []int `json:"skip"`
	}
	if err := json.Unmarshal([]byte(stripJSONFences(resp.Content)), &verdict); err != nil {
		return nil, fmt.Errorf("unparseable screen verdict: %w", err)
	}

	for _, n := range verdict.Skip {
		if n >= 1 && n <= len(items) {
			keep[n-1] = false
		}
	}
	return keep, nil
}

func buildScreenPrompt(items []Item) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s", i+1, item.Title)
		if item.Summary != "" {
			fmt.Fprintf(&b, " - %s", item.Summary)
		}
		b.WriteString("\n")
	}
	return b.String()
}
