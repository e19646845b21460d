package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// GenerationRecord is an audit entry for one completed generation.
type GenerationRecord struct {
	Topic         string
	Tone          string
	Category      string
	Content       string
	ReferenceIDs  []string
	AvgSimilarity float64
}

// Recorder persists generation audit entries. Recording is best-effort: the
// caller logs failures but never fails a request over them.
type Recorder interface {
	RecordGeneration(ctx context.Context, record GenerationRecord) error
}

func (s *Store) RecordGeneration(ctx context.Context, record GenerationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_logs (topic, tone, category, generated_post, reference_post_ids, avg_similarity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, record.Topic, record.Tone, record.Category, record.Content, pq.Array(record.ReferenceIDs), record.AvgSimilarity)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// EnsureGenerationLogSchema creates the audit table when it does not exist.
func EnsureGenerationLogSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS generation_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			topic TEXT NOT NULL,
			tone TEXT,
			category TEXT,
			generated_post TEXT NOT NULL,
			reference_post_ids TEXT[],
			avg_similarity REAL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure generation log schema: %w", err)
	}
	return nil
}
