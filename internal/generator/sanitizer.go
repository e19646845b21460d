package generator

import (
	"regexp"
	"strings"
)

var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	underlinePattern  = regexp.MustCompile(`__([^_]+)__`)
	emphasisPattern   = regexp.MustCompile(`_([^_]+)_`)
	tripleNewlines    = regexp.MustCompile(`(?:\n[ \t]*){3,}`)
	sectionBoundary   = regexp.MustCompile(`([.!?])[ \t]*\n[ \t]*([A-Z0-9])`)
	interiorSpaceRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// Sanitize enforces the output formatting contract on raw model text. It is
// pure, deterministic, and idempotent: sanitizing already-sanitized text is a
// no-op.
func Sanitize(text string) string {
	// 1. Dashes. Em dashes become spaced hyphens, en dashes plain hyphens.
	text = strings.ReplaceAll(text, "—", " - ")
	text = strings.ReplaceAll(text, "–", "-")

	// 2. Markdown emphasis markers, unwrapping the enclosed text.
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = underlinePattern.ReplaceAllString(text, "$1")
	text = emphasisPattern.ReplaceAllString(text, "$1")

	// 3. Collapse runs of 3+ newlines to a single blank line. Lines holding
	// only spaces or tabs count as empty here, otherwise the trim in step 6
	// would expose a fresh run on the next pass.
	text = tripleNewlines.ReplaceAllString(text, "\n\n")

	// 4. Insert a blank line where a sentence ends and a capital or digit
	// starts the very next line. Whitespace around the break is folded in so
	// a second pass finds nothing to do.
	text = sectionBoundary.ReplaceAllString(text, "$1\n\n$2")

	// 5. Collapse interior space runs.
	text = interiorSpaceRuns.ReplaceAllString(text, " ")

	// 6. Trim every line, then the whole string.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// aiPrefixes are conversational lead-ins models prepend despite instructions.
var aiPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Here'?s? ?(a|your|the) ?(LinkedIn )?post:?\s*`),
	regexp.MustCompile(`(?i)^Sure!? ?(Here'?s?)?:?\s*`),
	regexp.MustCompile(`(?i)^I'?d? be happy to help:?\s*`),
	regexp.MustCompile(`(?i)^(Absolutely|Certainly)!?:?\s*`),
}

// CleanModelArtifacts strips conversational prefixes and whole-content quote
// wrapping from raw model output. Applied once, before Sanitize.
func CleanModelArtifacts(content string) string {
	cleaned := content
	for _, prefix := range aiPrefixes {
		cleaned = prefix.ReplaceAllString(cleaned, "")
	}
	if strings.HasPrefix(cleaned, `"`) && strings.HasSuffix(cleaned, `"`) && len(cleaned) >= 2 {
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	return strings.TrimSpace(cleaned)
}
