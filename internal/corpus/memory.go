package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

// MemoryEngine is a brute-force in-memory corpus backed by a JSON seed file.
// It exists for local development and tests where Postgres is unavailable;
// search is an exact cosine scan over every document.
type MemoryEngine struct {
	docs []ReferenceDocument
}

func NewMemoryEngine(docs []ReferenceDocument) *MemoryEngine {
	return &MemoryEngine{docs: docs}
}

// LoadSeedFile reads a JSON array of reference documents from disk.
func LoadSeedFile(path string) ([]ReferenceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus seed: %w", err)
	}
	var docs []ReferenceDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode corpus seed: %w", err)
	}
	return docs, nil
}

func (m *MemoryEngine) Search(_ context.Context, embedding []float32, opts SearchOptions) ([]ReferenceDocument, error) {
	if len(embedding) == 0 {
		return nil, ErrInvalidEmbedding
	}
	opts = opts.withDefaults()

	var matches []ReferenceDocument
	for _, doc := range m.docs {
		if opts.Category != "" && doc.Category != opts.Category {
			continue
		}
		if opts.Tone != "" && doc.Tone != opts.Tone {
			continue
		}
		if len(doc.Embedding) != len(embedding) {
			return nil, ErrInvalidEmbedding
		}
		similarity := cosineSimilarity(embedding, doc.Embedding)
		if similarity < opts.MinSimilarity {
			continue
		}
		doc.Similarity = similarity
		doc.Embedding = nil
		matches = append(matches, doc)
	}

	// Stable keeps insertion order for equal similarities.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

func (m *MemoryEngine) SampleDiverse(_ context.Context, limit int) ([]ReferenceDocument, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	type bucket struct{ category, tone string }
	perBucket := make(map[bucket][]ReferenceDocument)
	var order []bucket
	for _, doc := range m.docs {
		key := bucket{doc.Category, doc.Tone}
		if _, seen := perBucket[key]; !seen {
			order = append(order, key)
		}
		perBucket[key] = append(perBucket[key], doc)
	}

	var sampled []ReferenceDocument
	for _, key := range order {
		docs := perBucket[key]
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].Score > docs[j].Score
		})
		if len(docs) > 2 {
			docs = docs[:2]
		}
		sampled = append(sampled, docs...)
	}

	sort.SliceStable(sampled, func(i, j int) bool {
		return sampled[i].Score > sampled[j].Score
	})
	if len(sampled) > limit {
		sampled = sampled[:limit]
	}
	for i := range sampled {
		sampled[i].Embedding = nil
	}
	return sampled, nil
}

func (m *MemoryEngine) Stats(_ context.Context) (Stats, error) {
	stats := Stats{
		TotalDocuments: len(m.docs),
		Categories:     make(map[string]int),
		Tones:          make(map[string]int),
	}
	var total float64
	for _, doc := range m.docs {
		stats.Categories[doc.Category]++
		stats.Tones[doc.Tone]++
		total += doc.Score
	}
	if len(m.docs) > 0 {
		stats.AvgScore = total / float64(len(m.docs))
	}
	return stats, nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
