package generator

import (
	"context"
	"fmt"

	"postwright/internal/llm"
)

var baseTemperatures = map[Intensity]float64{
	IntensityLow:     0.5,
	IntensityMedium:  0.7,
	IntensityHigh:    0.85,
	IntensityExtreme: 1.0,
}

var maxTokensByIntensity = map[Intensity]int{
	IntensityLow:     400,
	IntensityMedium:  600,
	IntensityHigh:    800,
	IntensityExtreme: 1000,
}

// TemperatureFor maps intensity to a base sampling temperature and nudges it
// by tone: playful tones run hotter, precise tones run cooler. Result stays
// within [0.3, 1.0].
func TemperatureFor(intensity Intensity, tone Tone) float64 {
	temperature, ok := baseTemperatures[intensity]
	if !ok {
		temperature = baseTemperatures[IntensityMedium]
	}
	switch tone {
	case ToneHumorous, ToneBold:
		temperature += 0.1
	case ToneProfessional, ToneEducational:
		temperature -= 0.1
	}
	if temperature > 1.0 {
		temperature = 1.0
	}
	if temperature < 0.3 {
		temperature = 0.3
	}
	return temperature
}

func maxTokensFor(intensity Intensity) int {
	if tokens, ok := maxTokensByIntensity[intensity]; ok {
		return tokens
	}
	return maxTokensByIntensity[IntensityMedium]
}

// Generator wraps an LLM provider with intensity-derived sampling parameters.
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate makes one model call and returns the raw trimmed output. No
// retries here; retry policy belongs to the caller.
func (g *Generator) Generate(ctx context.Context, system, user string, tone Tone, intensity Intensity) (string, error) {
	stream, err := g.provider.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, llm.CompletionOptions{
		Temperature: TemperatureFor(intensity, tone),
		MaxTokens:   maxTokensFor(intensity),
	})
	if err != nil {
		return "", fmt.Errorf("generate post: %w", err)
	}

	text, err := llm.CollectText(stream)
	if err != nil {
		return "", fmt.Errorf("read generation stream: %w", err)
	}
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}
