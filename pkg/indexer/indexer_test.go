package indexer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/database"
	testdb "github.com/finsight/newsflow/test/database"
)

// fakeEmbedder returns deterministic vectors, or an error when scripted.
type fakeEmbedder struct {
	mu    sync.Mutex
	calls int
	err   error
	fill  float32
}

func (f *fakeEmbedder) EmbeddingsForPurpose(_ context.Context, _ config.Purpose, inputs []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(inputs))
	for i := range vectors {
		vec := make([]float32, database.EmbeddingDimensions)
		for j := range vec {
			vec[j] = f.fill
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func newTestIndexer(t *testing.T, embed embedClient) *Indexer {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultPipelineConfig()
	cfg.EmbeddingChunkSize = 100
	cfg.EmbeddingChunkOverlap = 20
	return NewIndexer(client.DB(), embed, cfg)
}

func TestIndexContentWritesChunks(t *testing.T) {
	ix := newTestIndexer(t, &fakeEmbedder{fill: 0.1})
	ctx := context.Background()

	written, err := ix.IndexContent(ctx, "article", "a1", strings.Repeat("market text ", 40), "AAPL")
	require.NoError(t, err)
	assert.Greater(t, written, 1)

	count, err := ix.ChunkCount(ctx, "article", "a1")
	require.NoError(t, err)
	assert.Equal(t, written, count)
}

func TestIndexContentReplacesPriorSet(t *testing.T) {
	embed := &fakeEmbedder{fill: 0.1}
	ix := newTestIndexer(t, embed)
	ctx := context.Background()

	first, err := ix.IndexContent(ctx, "article", "a1", strings.Repeat("long market text ", 60), "AAPL")
	require.NoError(t, err)

	// Re-index with much shorter content: the old, larger set must be gone.
	second, err := ix.IndexContent(ctx, "article", "a1", "short replacement body", "AAPL")
	require.NoError(t, err)
	assert.Less(t, second, first)

	count, err := ix.ChunkCount(ctx, "article", "a1")
	require.NoError(t, err)
	assert.Equal(t, second, count)
}

func TestIndexContentIsolatesSources(t *testing.T) {
	ix := newTestIndexer(t, &fakeEmbedder{fill: 0.2})
	ctx := context.Background()

	_, err := ix.IndexContent(ctx, "article", "a1", strings.Repeat("first source ", 30), "")
	require.NoError(t, err)
	_, err = ix.IndexContent(ctx, "report", "a1", strings.Repeat("second source ", 30), "")
	require.NoError(t, err)

	// Same id under a different source type is a separate chunk set.
	_, err = ix.IndexContent(ctx, "article", "a1", "replacement", "")
	require.NoError(t, err)

	count, err := ix.ChunkCount(ctx, "report", "a1")
	require.NoError(t, err)
	assert.Greater(t, count, 0, "other source untouched by replacement")
}

func TestIndexContentEmbeddingFailureKeepsPriorVectors(t *testing.T) {
	embed := &fakeEmbedder{fill: 0.3}
	ix := newTestIndexer(t, embed)
	ctx := context.Background()

	written, err := ix.IndexContent(ctx, "article", "a1", strings.Repeat("stable text ", 40), "")
	require.NoError(t, err)

	embed.err = errors.New("embedding provider down")
	_, err = ix.IndexContent(ctx, "article", "a1", "new content that will fail", "")
	require.Error(t, err)

	count, err := ix.ChunkCount(ctx, "article", "a1")
	require.NoError(t, err)
	assert.Equal(t, written, count, "prior vectors intact after total embedding failure")
}

func TestIndexContentEmptyContentFails(t *testing.T) {
	ix := newTestIndexer(t, &fakeEmbedder{})
	_, err := ix.IndexContent(context.Background(), "article", "a1", "   ", "")
	require.Error(t, err)
}
