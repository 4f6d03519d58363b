package indexer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/finsight/newsflow/pkg/config"
)

// embedClient is the slice of the LLM gateway the indexer uses.
type embedClient interface {
	EmbeddingsForPurpose(ctx context.Context, purpose config.Purpose, inputs []string) ([][]float32, error)
}

// Indexer chunks, embeds, and writes content into the vector store.
type Indexer struct {
	db    *sql.DB
	embed embedClient
	cfg   *config.PipelineConfig
}

// NewIndexer creates an indexer over the given database connection.
func NewIndexer(db *sql.DB, embed embedClient, cfg *config.PipelineConfig) *Indexer {
	return &Indexer{db: db, embed: embed, cfg: cfg}
}

// IndexContent embeds content and replaces the chunk set for
// (sourceType, sourceID) in one transaction. Concurrent writers for the same
// source serialise on an advisory lock; writers for different sources do not
// block each other. If embedding fails entirely, prior vectors are left
// intact. Returns the number of chunks written.
func (ix *Indexer) IndexContent(ctx context.Context, sourceType, sourceID, content, symbol string) (int, error) {
	chunks := Chunk(content, ix.cfg.EmbeddingChunkSize, ix.cfg.EmbeddingChunkOverlap)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("no content to index for %s/%s", sourceType, sourceID)
	}

	// Embed before touching the table: an embedding outage must not wipe
	// the existing vectors.
	vectors, err := ix.embed.EmbeddingsForPurpose(ctx, config.PurposeEmbedding, chunks)
	if err != nil {
		return 0, fmt.Errorf("embeddings for %s/%s: %w", sourceType, sourceID, err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedding count mismatch for %s/%s: %d chunks, %d vectors",
			sourceType, sourceID, len(chunks), len(vectors))
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin index tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				slog.Warn("Failed to roll back index tx", "error", rbErr)
			}
		}
	}()

	// Advisory xact lock keyed by the source identity; released at
	// commit/rollback.
	lockKey := sourceType + ":" + sourceID
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return 0, fmt.Errorf("advisory lock %s: %w", lockKey, err)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM content_chunks WHERE source_type = $1 AND source_id = $2`,
		sourceType, sourceID); err != nil {
		return 0, fmt.Errorf("clear chunks %s: %w", lockKey, err)
	}

	for i, chunk := range chunks {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO content_chunks (source_type, source_id, chunk_index, symbol, content, embedding)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6::vector)`,
			sourceType, sourceID, i, symbol, chunk, vectorLiteral(vectors[i])); err != nil {
			return 0, fmt.Errorf("insert chunk %d of %s: %w", i, lockKey, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit index tx %s: %w", lockKey, err)
	}
	return len(chunks), nil
}

// ChunkCount returns the number of stored chunks for a source.
func (ix *Indexer) ChunkCount(ctx context.Context, sourceType, sourceID string) (int, error) {
	var count int
	err := ix.db.QueryRowContext(ctx,
		`SELECT count(*) FROM content_chunks WHERE source_type = $1 AND source_id = $2`,
		sourceType, sourceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return count, nil
}

// vectorLiteral renders a pgvector input literal: [v1,v2,...].
func vectorLiteral(vec []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
