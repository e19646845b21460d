package corpus

import (
	"context"
	"errors"
)

// ReferenceDocument is a single high-performing post in the reference corpus.
// Similarity is only populated on documents returned from Search.
type ReferenceDocument struct {
	ID         string    `json:"id"`
	Text       string    `json:"postText"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Tone       string    `json:"tone"`
	HookStyle  string    `json:"hookStyle"`
	Score      float64   `json:"viralScore"`
	Embedding  []float32 `json:"embedding,omitempty"`
	Similarity float64   `json:"-"`
}

// SearchOptions narrows a similarity search. Zero-value fields fall back to
// defaults; empty Category or Tone means no filter on that field.
type SearchOptions struct {
	Limit         int
	MinSimilarity float64
	Category      string
	Tone          string
}

const (
	DefaultSearchLimit   = 10
	DefaultMinSimilarity = 0.6

	// MinSimilarityNone requests a floor of exactly 0. A zero MinSimilarity
	// means unset and takes the default, so any negative value is the way to
	// ask for every non-negative match.
	MinSimilarityNone = -1.0
)

func (o SearchOptions) withDefaults() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.MinSimilarity == 0 {
		o.MinSimilarity = DefaultMinSimilarity
	} else if o.MinSimilarity < 0 {
		o.MinSimilarity = 0
	}
	return o
}

var (
	ErrInvalidEmbedding = errors.New("corpus: query embedding is empty or has wrong dimensions")
	ErrEmptyCorpus      = errors.New("corpus: no reference documents available")
)

// Stats summarizes corpus composition for the stats endpoint and health checks.
type Stats struct {
	TotalDocuments int            `json:"totalDocuments"`
	Categories     map[string]int `json:"categories"`
	Tones          map[string]int `json:"tones"`
	AvgScore       float64        `json:"avgScore"`
}

// Engine is the retrieval surface the generation pipeline depends on. Search
// returns documents above the similarity floor ordered most-similar first.
// SampleDiverse is the zero-result fallback: at most two top-scoring documents
// per (category, tone) bucket, globally ordered by score.
type Engine interface {
	Search(ctx context.Context, embedding []float32, opts SearchOptions) ([]ReferenceDocument, error)
	SampleDiverse(ctx context.Context, limit int) ([]ReferenceDocument, error)
	Stats(ctx context.Context) (Stats, error)
}
