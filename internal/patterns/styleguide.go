package patterns

import (
	"fmt"
	"strings"
)

// BuildStyleGuide renders extracted patterns into the summary block injected
// into the generation prompt. Pure and deterministic; identical input yields
// identical output.
func BuildStyleGuide(p *PostPatterns) string {
	var guide []string

	guide = append(guide, "## Writing Style Guide (Based on High-Performing Posts)")
	guide = append(guide, "")
	guide = append(guide, fmt.Sprintf("**Length:** ~%d characters, %d paragraphs", p.AvgLength, p.AvgParagraphs))
	guide = append(guide, fmt.Sprintf("**Sentence Length:** ~%d characters per sentence", p.AvgSentenceLength))
	guide = append(guide, "")

	guide = append(guide, "**Hook Styles:**")
	for _, hook := range p.CommonHooks {
		guide = append(guide, "- "+hook)
	}
	guide = append(guide, "")

	guide = append(guide, "**Opening Patterns:**")
	openings := p.OpeningPatterns
	if len(openings) > 3 {
		openings = openings[:3]
	}
	for _, opening := range openings {
		guide = append(guide, fmt.Sprintf("- %q...", opening))
	}
	guide = append(guide, "")

	if len(p.CTAPatterns) > 0 {
		guide = append(guide, "**Call-to-Action Patterns:**")
		for _, cta := range p.CTAPatterns {
			guide = append(guide, fmt.Sprintf("- %q", cta))
		}
		guide = append(guide, "")
	}

	guide = append(guide, "**Structural Elements:**")
	if p.UsesEmojis {
		guide = append(guide, "- Use emojis strategically")
	}
	if p.UsesQuestions {
		guide = append(guide, "- Include rhetorical questions")
	}
	if p.UsesLists {
		guide = append(guide, "- Use bullet points or numbered lists")
	}
	guide = append(guide, fmt.Sprintf("- %d%% include clear CTAs", p.CTAPercent))

	return strings.Join(guide, "\n")
}
