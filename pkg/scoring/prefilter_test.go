package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// screenChat scripts one response for the single-call screen.
type screenChat struct {
	content  string
	err      error
	requests []*llm.Request
}

func (f *screenChat) ChatForPurpose(_ context.Context, _ config.Purpose, req *llm.Request) (*llm.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content, Usage: llm.Usage{PromptTokens: 500, CompletionTokens: 20}}, nil
}

func (f *screenChat) ModelForPurpose(config.Purpose) (string, error) { return "test-model", nil }

func TestScreenDropsListedEntries(t *testing.T) {
	chat := &screenChat{content: `{"skip": [1, 3]}`}
	filter := NewInitialFilter(chat, nil, config.DefaultPipelineConfig())

	keep, err := filter.Screen(context.Background(), testItems(4))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, keep)
}

func TestScreenIgnoresOutOfRangeIndices(t *testing.T) {
	chat := &screenChat{content: `{"skip": [0, 2, 99]}`}
	filter := NewInitialFilter(chat, nil, config.DefaultPipelineConfig())

	keep, err := filter.Screen(context.Background(), testItems(3))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, keep)
}

func TestScreenFailureSurfacesError(t *testing.T) {
	chat := &screenChat{err: errors.New("provider down")}
	filter := NewInitialFilter(chat, nil, config.DefaultPipelineConfig())

	_, err := filter.Screen(context.Background(), testItems(2))
	require.Error(t, err)
}

func TestScreenUnparseableVerdictSurfacesError(t *testing.T) {
	chat := &screenChat{content: "drop the second one"}
	filter := NewInitialFilter(chat, nil, config.DefaultPipelineConfig())

	_, err := filter.Screen(context.Background(), testItems(2))
	require.Error(t, err)
}

func TestScreenEmptyBatchSkipsCall(t *testing.T) {
	chat := &screenChat{content: `{"skip": []}`}
	filter := NewInitialFilter(chat, nil, config.DefaultPipelineConfig())

	keep, err := filter.Screen(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, keep)
	assert.Empty(t, chat.requests)
}
