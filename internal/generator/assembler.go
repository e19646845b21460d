package generator

import (
	"fmt"
	"strings"

	"postwright/internal/corpus"
	"postwright/internal/patterns"
)

const maxExamplePosts = 3

// Assemble builds the system and user instructions for one generation request.
// It is a pure function: identical inputs produce byte-identical output.
func Assemble(req GenerationRequest, p *patterns.PostPatterns, examples []corpus.ReferenceDocument) (system, user string) {
	systemParts := []string{
		systemPreamble,
		contentAnatomy,
		toneGuides[req.EffectiveTone()],
		intensityGuides[req.Intensity],
		hookTemplates,
		ctaTemplates,
		formattingContract,
	}
	system = strings.Join(systemParts, "\n\n")

	var b strings.Builder
	b.WriteString("## YOUR TASK:\nCreate a high-performing LinkedIn post on the following topic.\n\n")
	fmt.Fprintf(&b, "**TOPIC:** %s\n\n", strings.TrimSpace(req.Topic))
	category := req.Category
	if category == "" {
		category = "Professional Growth"
	}
	fmt.Fprintf(&b, "**CATEGORY:** %s\n", category)

	if p != nil {
		b.WriteString("\n## DATA-DRIVEN INSIGHTS FROM TOP PERFORMERS:\n")
		b.WriteString(patterns.BuildStyleGuide(p))
		b.WriteString("\n")
	}

	if len(examples) > 0 {
		b.WriteString("\n## REFERENCE EXAMPLES (for style inspiration only, your output must be original):\n")
		limit := len(examples)
		if limit > maxExamplePosts {
			limit = maxExamplePosts
		}
		for i := 0; i < limit; i++ {
			if i > 0 {
				b.WriteString("\n---\n")
			}
			fmt.Fprintf(&b, "\nExample %d (Score: %.0f):\n%s\n", i+1, examples[i].Score, strings.TrimSpace(examples[i].Text))
		}
	}

	b.WriteString(`
## OUTPUT REQUIREMENTS:
1. Generate ONLY the post content, following the full five-part anatomy: hook, bridge, value body, optional bonus, signature footer
2. No meta-commentary, labels, or explanations
3. No "Here's your post:" or similar prefixes
4. No em dashes, en dashes, asterisks, or markdown emphasis of any kind
5. Exactly one blank line between structural sections
6. Ready to copy-paste directly to LinkedIn

Generate the post now:`)

	return system, b.String()
}
