package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// EmbeddingDimensions is the width of the stored vectors. Must match the
// embedding model configured for the embedding purpose.
const EmbeddingDimensions = 1536

// CreateVectorSchema creates the pgvector extension, the content_chunks
// table, and its similarity index. Ent cannot express the vector column
// type, so this table lives outside the generated schema.
func CreateVectorSchema(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS content_chunks (
			id BIGSERIAL PRIMARY KEY,
			source_type VARCHAR NOT NULL,
			source_id VARCHAR NOT NULL,
			chunk_index INT NOT NULL,
			symbol VARCHAR,
			content TEXT NOT NULL,
			embedding vector(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (source_type, source_id, chunk_index)
		)`, EmbeddingDimensions))
	if err != nil {
		return fmt.Errorf("failed to create content_chunks table: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_content_chunks_source
		ON content_chunks (source_type, source_id)`)
	if err != nil {
		return fmt.Errorf("failed to create content_chunks source index: %w", err)
	}

	// HNSW over cosine distance; matches how the chunks are queried.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_content_chunks_embedding
		ON content_chunks USING hnsw (embedding vector_cosine_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create embedding index: %w", err)
	}

	return nil
}
