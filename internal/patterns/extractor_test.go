package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"postwright/internal/corpus"
)

func doc(text string) corpus.ReferenceDocument {
	return corpus.ReferenceDocument{Text: text, Category: "AI", Tone: "BOLD", HookStyle: "question"}
}

func TestExtractRejectsEmptySet(t *testing.T) {
	extractor := NewExtractor(DefaultRules())
	if _, err := extractor.Extract(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestExtractAvgLength(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	// 10 and 20 runes, mean 15.
	patterns, err := extractor.Extract([]corpus.ReferenceDocument{
		doc(strings.Repeat("a", 10)),
		doc(strings.Repeat("b", 20)),
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if patterns.AvgLength != 15 {
		t.Fatalf("avgLength = %d, want 15", patterns.AvgLength)
	}
}

func TestExtractQuestionThreshold(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	base := []corpus.ReferenceDocument{
		doc("Ship it?"),
		doc("plain text"),
		doc("plain text"),
		doc("plain text"),
		doc("plain text"),
	}

	patterns, err := extractor.Extract(base)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if patterns.UsesQuestions {
		t.Fatalf("1 of 5 question docs should not clear the 30%% threshold")
	}

	base[1] = doc("Really?")
	patterns, err = extractor.Extract(base)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !patterns.UsesQuestions {
		t.Fatalf("2 of 5 question docs should clear the 30%% threshold")
	}
}

func TestExtractListDetection(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	patterns, err := extractor.Extract([]corpus.ReferenceDocument{
		doc("Here is how:\n1. first\n2. second"),
		doc("Also:\n- item one is not a list marker without punctuation"),
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	// 1 of 2 docs matches the line-anchored marker pattern, above 20%.
	if !patterns.UsesLists {
		t.Fatalf("expected usesLists true")
	}
}

func TestExtractEmojiAnyOccurrence(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	patterns, err := extractor.Extract([]corpus.ReferenceDocument{
		doc("launch day \U0001F680"),
		doc("plain"),
		doc("plain"),
		doc("plain"),
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !patterns.UsesEmojis {
		t.Fatalf("a single emoji document should flip usesEmojis")
	}
}

func TestExtractCTACountsOncePerDocument(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	patterns, err := extractor.Extract([]corpus.ReferenceDocument{
		doc("Comment below and let me know what you think."),
		doc("No call to action here."),
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if patterns.CTAPercent != 50 {
		t.Fatalf("ctaPercent = %d, want 50", patterns.CTAPercent)
	}
	if len(patterns.CTAPatterns) != 1 || patterns.CTAPatterns[0] != "comment below" {
		t.Fatalf("unexpected cta patterns %v", patterns.CTAPatterns)
	}
}

func TestExtractCommonHooksTiesFirstSeen(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	docs := []corpus.ReferenceDocument{
		{Text: "a", HookStyle: "contrarian"},
		{Text: "b", HookStyle: "story"},
		{Text: "c", HookStyle: "story"},
		{Text: "d", HookStyle: "question"},
		{Text: "e", HookStyle: "stat"},
	}

	patterns, err := extractor.Extract(docs)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"story", "contrarian", "question"}
	if len(patterns.CommonHooks) != 3 {
		t.Fatalf("expected 3 hooks, got %v", patterns.CommonHooks)
	}
	for i, hook := range want {
		if patterns.CommonHooks[i] != hook {
			t.Fatalf("hook %d = %q, want %q", i, patterns.CommonHooks[i], hook)
		}
	}
}

func TestExtractOpeningsAndTopPerformers(t *testing.T) {
	extractor := NewExtractor(DefaultRules())

	docs := []corpus.ReferenceDocument{
		{Text: "First line here\nmiddle\nlast line", Score: 10},
		{Text: "First line here\nother ending", Score: 90},
		{Text: strings.Repeat("x", 150), Score: 50},
	}

	patterns, err := extractor.Extract(docs)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	// Duplicate openings collapse.
	if len(patterns.OpeningPatterns) != 2 {
		t.Fatalf("expected 2 unique openings, got %v", patterns.OpeningPatterns)
	}
	if len(patterns.TopPerformers) != 3 || patterns.TopPerformers[0].Score != 90 {
		t.Fatalf("unexpected top performers %+v", patterns.TopPerformers)
	}
	if len(patterns.TopPerformers[2].Preview) > 103+3 {
		t.Fatalf("preview should be capped near 100 chars, got %d", len(patterns.TopPerformers[2].Preview))
	}
}

func TestLoadRulesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "ctaPhrases:\n  - subscribe now\nquestionThreshold: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	if len(rules.CTAPhrases) != 1 || rules.CTAPhrases[0] != "subscribe now" {
		t.Fatalf("unexpected phrases %v", rules.CTAPhrases)
	}
	if rules.QuestionThreshold != 0.5 {
		t.Fatalf("questionThreshold = %f, want 0.5", rules.QuestionThreshold)
	}
	// Unset fields keep defaults.
	if rules.ListThreshold != 0.2 {
		t.Fatalf("listThreshold = %f, want default 0.2", rules.ListThreshold)
	}
}
