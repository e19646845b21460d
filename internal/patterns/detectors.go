package patterns

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DetectorRules holds the heuristic tables the extractor matches against.
// They are data rather than inline conditionals so they can be tuned from a
// rules file without touching the extraction algorithm.
type DetectorRules struct {
	// CTAPhrases are matched case-insensitively as substrings; the first hit
	// per document counts, further hits in the same document do not.
	CTAPhrases []string `yaml:"ctaPhrases"`

	// QuestionThreshold and ListThreshold are the fraction of documents that
	// must exhibit the behavior before the corresponding flag flips to true.
	QuestionThreshold float64 `yaml:"questionThreshold"`
	ListThreshold     float64 `yaml:"listThreshold"`
}

func DefaultRules() DetectorRules {
	return DetectorRules{
		CTAPhrases: []string{
			"comment below",
			"share your",
			"let me know",
			"drop a",
			"follow for",
			"link in",
			"dm me",
			"check out",
			"click the",
			"tag someone",
		},
		QuestionThreshold: 0.3,
		ListThreshold:     0.2,
	}
}

// LoadRules reads a YAML rules file. Omitted fields keep their defaults.
func LoadRules(path string) (DetectorRules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return DetectorRules{}, fmt.Errorf("read detector rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return DetectorRules{}, fmt.Errorf("decode detector rules: %w", err)
	}
	if len(rules.CTAPhrases) == 0 {
		rules.CTAPhrases = DefaultRules().CTAPhrases
	}
	if rules.QuestionThreshold <= 0 {
		rules.QuestionThreshold = DefaultRules().QuestionThreshold
	}
	if rules.ListThreshold <= 0 {
		rules.ListThreshold = DefaultRules().ListThreshold
	}
	return rules, nil
}

// listPattern matches bulleted or numbered list markers at line starts.
var listPattern = regexp.MustCompile(`(?m)^[•\-\d][.)]`)

// sentencePattern splits on sentence-terminal punctuation runs.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

func containsList(text string) bool {
	return listPattern.MatchString(text)
}

func containsEmoji(text string) bool {
	for _, r := range text {
		if r >= 0x1F300 && r <= 0x1F9FF {
			return true
		}
	}
	return false
}
