package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// Store is the Postgres-backed corpus engine. It relies on the pgvector
// extension for approximate nearest neighbour search over post embeddings.
type Store struct {
	db         *sql.DB
	dimensions int
}

func NewStore(db *sql.DB, dimensions int) *Store {
	return &Store{db: db, dimensions: dimensions}
}

func (s *Store) Search(ctx context.Context, embedding []float32, opts SearchOptions) ([]ReferenceDocument, error) {
	if len(embedding) == 0 || (s.dimensions > 0 && len(embedding) != s.dimensions) {
		return nil, ErrInvalidEmbedding
	}
	opts = opts.withDefaults()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id,
			post_text,
			author,
			category,
			tone,
			hook_style,
			viral_score,
			1 - (embedding <=> $1) AS similarity
		FROM reference_posts
		WHERE 1 - (embedding <=> $1) >= $2
		  AND ($3 = '' OR category = $3)
		  AND ($4 = '' OR tone = $4)
		ORDER BY embedding <=> $1
		LIMIT $5
	`, pgvector.NewVector(embedding), opts.MinSimilarity, opts.Category, opts.Tone, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("search corpus: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows, true)
}

func (s *Store) SampleDiverse(ctx context.Context, limit int) ([]ReferenceDocument, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	// Two best posts per (category, tone) bucket, then the best buckets win.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_text, author, category, tone, hook_style, viral_score
		FROM (
			SELECT id, post_text, author, category, tone, hook_style, viral_score,
				ROW_NUMBER() OVER (PARTITION BY category, tone ORDER BY viral_score DESC) AS rn
			FROM reference_posts
		) ranked
		WHERE rn <= 2
		ORDER BY viral_score DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("sample corpus: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows, false)
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		Categories: make(map[string]int),
		Tones:      make(map[string]int),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(viral_score), 0)
		FROM reference_posts
	`).Scan(&stats.TotalDocuments, &stats.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, tone, COUNT(*)
		FROM reference_posts
		GROUP BY category, tone
	`)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, tone string
		var count int
		if err := rows.Scan(&category, &tone, &count); err != nil {
			return Stats{}, fmt.Errorf("scan corpus breakdown: %w", err)
		}
		stats.Categories[category] += count
		stats.Tones[tone] += count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate corpus breakdown: %w", err)
	}

	return stats, nil
}

func scanDocuments(rows *sql.Rows, withSimilarity bool) ([]ReferenceDocument, error) {
	var docs []ReferenceDocument
	for rows.Next() {
		var doc ReferenceDocument
		dest := []any{&doc.ID, &doc.Text, &doc.Author, &doc.Category, &doc.Tone, &doc.HookStyle, &doc.Score}
		if withSimilarity {
			dest = append(dest, &doc.Similarity)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan reference post: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reference posts: %w", err)
	}
	return docs, nil
}
