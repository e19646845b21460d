package generator

import (
	"errors"
	"fmt"
	"strings"

	"postwright/internal/patterns"
)

type Tone string

const (
	ToneProfessional  Tone = "PROFESSIONAL"
	ToneCasual        Tone = "CASUAL"
	ToneEnthusiastic  Tone = "ENTHUSIASTIC"
	ToneThoughtful    Tone = "THOUGHTFUL"
	ToneBold          Tone = "BOLD"
	ToneInspirational Tone = "INSPIRATIONAL"
	ToneEducational   Tone = "EDUCATIONAL"
	ToneHumorous      Tone = "HUMOROUS"
)

type Intensity string

const (
	IntensityLow     Intensity = "LOW"
	IntensityMedium  Intensity = "MEDIUM"
	IntensityHigh    Intensity = "HIGH"
	IntensityExtreme Intensity = "EXTREME"
)

var tones = map[Tone]bool{
	ToneProfessional:  true,
	ToneCasual:        true,
	ToneEnthusiastic:  true,
	ToneThoughtful:    true,
	ToneBold:          true,
	ToneInspirational: true,
	ToneEducational:   true,
	ToneHumorous:      true,
}

var intensities = map[Intensity]bool{
	IntensityLow:     true,
	IntensityMedium:  true,
	IntensityHigh:    true,
	IntensityExtreme: true,
}

// ParseTone normalizes a user-supplied tone. Empty input stays empty, which
// means "unspecified": retrieval is not filtered by tone and generation falls
// back to PROFESSIONAL via EffectiveTone.
func ParseTone(s string) (Tone, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	tone := Tone(strings.ToUpper(strings.TrimSpace(s)))
	if !tones[tone] {
		return "", fmt.Errorf("unknown tone %q", s)
	}
	return tone, nil
}

// ParseIntensity normalizes a user-supplied intensity. Empty input defaults to
// MEDIUM.
func ParseIntensity(s string) (Intensity, error) {
	if strings.TrimSpace(s) == "" {
		return IntensityMedium, nil
	}
	intensity := Intensity(strings.ToUpper(strings.TrimSpace(s)))
	if !intensities[intensity] {
		return "", fmt.Errorf("unknown intensity %q", s)
	}
	return intensity, nil
}

var (
	ErrEmptyTopic      = errors.New("generator: topic is required")
	ErrEmptyGeneration = errors.New("generator: model returned no content")
)

type GenerationRequest struct {
	Topic string
	// Tone is empty when the caller did not ask for one. An explicit tone
	// filters retrieval; an omitted one leaves retrieval unfiltered.
	Tone      Tone
	Intensity Intensity
	Category  string
}

func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	if r.Tone != "" && !tones[r.Tone] {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	if r.Intensity == "" {
		r.Intensity = IntensityMedium
	} else if !intensities[r.Intensity] {
		return fmt.Errorf("unknown intensity %q", r.Intensity)
	}
	return nil
}

// EffectiveTone is the tone generation runs with. Omitted tone means
// PROFESSIONAL prompting, never a retrieval filter.
func (r GenerationRequest) EffectiveTone() Tone {
	if r.Tone == "" {
		return ToneProfessional
	}
	return r.Tone
}

// GenerationResult carries the sanitized post plus provenance about the
// reference set that shaped it.
type GenerationResult struct {
	Content        string                 `json:"content"`
	ReferenceCount int                    `json:"referenceCount"`
	ReferenceIDs   []string               `json:"referenceIds,omitempty"`
	AvgSimilarity  float64                `json:"avgSimilarity"`
	UsedFallback   bool                   `json:"usedFallback"`
	Patterns       *patterns.PostPatterns `json:"patterns,omitempty"`
}
