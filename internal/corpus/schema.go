package corpus

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the reference corpus table and its HNSW index when they
// do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB, dimensions int) error {
	if dimensions <= 0 {
		return fmt.Errorf("invalid embedding dimensions: %d", dimensions)
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reference_posts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			post_text TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			tone TEXT NOT NULL,
			hook_style TEXT NOT NULL DEFAULT '',
			viral_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			embedding vector(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, dimensions),
		`CREATE INDEX IF NOT EXISTS reference_posts_embedding_idx
			ON reference_posts USING hnsw (embedding vector_cosine_ops)
			WITH (m = 24, ef_construction = 256)`,
		`CREATE INDEX IF NOT EXISTS reference_posts_category_tone_idx
			ON reference_posts (category, tone)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure corpus schema: %w", err)
		}
	}

	return nil
}

// EnsureEmbeddingDimensions checks whether the embedding column matches the
// configured dimension count. When they differ it truncates stale rows, alters
// the column type, and rebuilds the HNSW index.
// Returns true when a migration was performed.
func EnsureEmbeddingDimensions(ctx context.Context, db *sql.DB, target int) (bool, error) {
	if target <= 0 {
		return false, fmt.Errorf("invalid embedding dimensions: %d", target)
	}

	// pgvector stores the dimension count in atttypmod for vector(N) columns.
	var current int
	err := db.QueryRowContext(ctx, `
		SELECT atttypmod
		FROM pg_attribute
		WHERE attrelid = 'reference_posts'::regclass
		  AND attname = 'embedding'
	`).Scan(&current)
	if err != nil {
		return false, fmt.Errorf("query current embedding dimensions: %w", err)
	}

	if current == target {
		return false, nil
	}

	// Old embeddings came from a different model and cannot be meaningfully
	// searched, so truncate before altering.
	stmts := []string{
		`DROP INDEX IF EXISTS reference_posts_embedding_idx`,
		`TRUNCATE reference_posts`,
		fmt.Sprintf(`ALTER TABLE reference_posts ALTER COLUMN embedding TYPE vector(%d)`, target),
		`CREATE INDEX reference_posts_embedding_idx ON reference_posts USING hnsw (embedding vector_cosine_ops) WITH (m = 24, ef_construction = 256)`,
	}
	for _, stmt := range stmts {
		if _, execErr := db.ExecContext(ctx, stmt); execErr != nil {
			return false, fmt.Errorf("migrate embedding dimensions (%d to %d): %w", current, target, execErr)
		}
	}

	return true, nil
}
