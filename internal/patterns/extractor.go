package patterns

import (
	"errors"
	"math"
	"sort"
	"strings"

	"postwright/internal/corpus"
)

var ErrEmptyCorpus = errors.New("patterns: cannot extract from an empty document set")

// PostPatterns is the aggregate stylistic profile of a reference set. It is
// recomputed per request and only valid for the documents it was derived from.
type PostPatterns struct {
	AvgLength         int `json:"avgLength"`
	AvgParagraphs     int `json:"avgParagraphs"`
	AvgSentenceLength int `json:"avgSentenceLength"`

	CommonHooks []string       `json:"commonHooks"`
	HookStyles  map[string]int `json:"hookStyles"`

	OpeningPatterns []string `json:"openingPatterns"`
	ClosingPatterns []string `json:"closingPatterns"`
	UsesEmojis      bool     `json:"usesEmojis"`
	UsesQuestions   bool     `json:"usesQuestions"`
	UsesLists       bool     `json:"usesLists"`

	Tones      map[string]int `json:"tones"`
	Categories map[string]int `json:"categories"`

	AvgEngagement float64        `json:"avgEngagement"`
	TopPerformers []TopPerformer `json:"topPerformers"`

	CTAPatterns []string `json:"ctaPatterns"`
	CTAPercent  int      `json:"ctaPercent"`
}

type TopPerformer struct {
	Preview string  `json:"preview"`
	Score   float64 `json:"score"`
}

type Extractor struct {
	rules DetectorRules
}

func NewExtractor(rules DetectorRules) *Extractor {
	return &Extractor{rules: rules}
}

// Extract computes the stylistic profile of a non-empty document set.
func (e *Extractor) Extract(docs []corpus.ReferenceDocument) (*PostPatterns, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	var totalLength, totalParagraphs int
	var totalSentenceLength float64
	hookStyles := newCounter()
	tones := newCounter()
	categories := newCounter()
	var openings, closings, ctaHits []string
	var emojiDocs, questionDocs, listDocs, ctaDocs int
	var totalScore float64

	for _, doc := range docs {
		text := doc.Text
		lines := nonEmptyLines(text)
		sentences := splitSentences(text)
		length := len([]rune(text))

		totalLength += length
		totalParagraphs += len(lines)
		if len(sentences) > 0 {
			totalSentenceLength += float64(length) / float64(len(sentences))
		}

		hookStyles.add(doc.HookStyle)
		tones.add(doc.Tone)
		categories.add(doc.Category)

		if len(lines) > 0 {
			openings = append(openings, truncate(lines[0], 50))
		}
		if len(lines) > 1 {
			closings = append(closings, truncate(lines[len(lines)-1], 50))
		}

		if containsEmoji(text) {
			emojiDocs++
		}
		if strings.Contains(text, "?") {
			questionDocs++
		}
		if containsList(text) {
			listDocs++
		}

		lower := strings.ToLower(text)
		for _, phrase := range e.rules.CTAPhrases {
			if strings.Contains(lower, phrase) {
				ctaDocs++
				ctaHits = append(ctaHits, phrase)
				break
			}
		}

		totalScore += doc.Score
	}

	count := float64(len(docs))

	return &PostPatterns{
		AvgLength:         int(math.Round(float64(totalLength) / count)),
		AvgParagraphs:     int(math.Round(float64(totalParagraphs) / count)),
		AvgSentenceLength: int(math.Round(totalSentenceLength / count)),
		CommonHooks:       hookStyles.top(3),
		HookStyles:        hookStyles.counts,
		OpeningPatterns:   dedupe(openings, 5),
		ClosingPatterns:   dedupe(closings, 5),
		UsesEmojis:        emojiDocs > 0,
		UsesQuestions:     float64(questionDocs) > count*e.rules.QuestionThreshold,
		UsesLists:         float64(listDocs) > count*e.rules.ListThreshold,
		Tones:             tones.counts,
		Categories:        categories.counts,
		AvgEngagement:     totalScore / count,
		TopPerformers:     topPerformers(docs, 3),
		CTAPatterns:       dedupe(ctaHits, 5),
		CTAPercent:        int(math.Round(float64(ctaDocs) / count * 100)),
	}, nil
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitSentences(text string) []string {
	var sentences []string
	for _, fragment := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func dedupe(values []string, max int) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return out
}

func topPerformers(docs []corpus.ReferenceDocument, n int) []TopPerformer {
	sorted := make([]corpus.ReferenceDocument, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	performers := make([]TopPerformer, 0, len(sorted))
	for _, doc := range sorted {
		performers = append(performers, TopPerformer{
			Preview: truncate(doc.Text, 100) + "...",
			Score:   doc.Score,
		})
	}
	return performers
}

// counter is a frequency map that remembers first-seen order for tie-breaks.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
