package generator

import (
	"strings"
	"testing"
)

func TestSanitizeRemovesDashes(t *testing.T) {
	got := Sanitize("Growth\u2014the hard way\u2013always wins.")
	if strings.ContainsAny(got, "\u2014\u2013") {
		t.Fatalf("dashes survived: %q", got)
	}
	if got != "Growth - the hard way-always wins." {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeUnwrapsMarkdown(t *testing.T) {
	got := Sanitize("This is **bold**, *italic*, __underlined__ and _emphasized_.")
	if got != "This is bold, italic, underlined and emphasized." {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeCollapsesNewlines(t *testing.T) {
	got := Sanitize("one\n\n\n\ntwo")
	if got != "one\n\ntwo" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeCollapsesWhitespaceOnlyLines(t *testing.T) {
	// Lines of spaces or tabs between paragraphs collapse in one pass.
	cases := map[string]string{
		"one\n \n \ntwo":     "one\n\ntwo",
		"one\n\t\n\t\n\ttwo": "one\n\ntwo",
		"one\n   \n\nthree":  "one\n\nthree",
		"one\n \ntwo":        "one\n\ntwo",
	}
	for input, want := range cases {
		if got := Sanitize(input); got != want {
			t.Fatalf("Sanitize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeInsertsSectionBreaks(t *testing.T) {
	got := Sanitize("First point.\nSecond point starts here.")
	if got != "First point.\n\nSecond point starts here." {
		t.Fatalf("unexpected result %q", got)
	}

	// Lowercase continuations are left alone.
	got = Sanitize("a sentence.\nand a continuation")
	if got != "a sentence.\nand a continuation" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeCollapsesSpacesAndTrims(t *testing.T) {
	got := Sanitize("  too   many    spaces  \n  on every line  ")
	if got != "too many spaces\non every line" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Plain text, nothing to do.",
		"Em\u2014dash and **bold** and\n\n\n\nnewlines.",
		"End of sentence.\nNext Section",
		"Trailing space. \nNew line",
		"Sentence.  \n  Aligned capital",
		"one\n \n \ntwo",
		"one\n\t\n \n\ttwo\n   \nthree",
		"*solo emphasis* and stray * asterisk",
		"",
		"\n\n\n",
		"A numbered follow-up!\n2 quick wins",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestSanitizeForbiddenCharactersGone(t *testing.T) {
	got := Sanitize("Take **this**\u2014seriously\u2013now *please*")
	for _, forbidden := range []string{"\u2014", "\u2013", "**"} {
		if strings.Contains(got, forbidden) {
			t.Fatalf("forbidden sequence %q survived: %q", forbidden, got)
		}
	}
}

func TestCleanModelArtifacts(t *testing.T) {
	cases := map[string]string{
		"Here's your LinkedIn post:\nActual content": "Actual content",
		"Sure! Here's:\nActual content":              "Actual content",
		"Certainly: Actual content":                  "Actual content",
		`"Fully quoted content"`:                     "Fully quoted content",
		"No prefix at all":                           "No prefix at all",
	}
	for input, want := range cases {
		if got := CleanModelArtifacts(input); got != want {
			t.Fatalf("CleanModelArtifacts(%q) = %q, want %q", input, got, want)
		}
	}
}
