package generator

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"postwright/internal/llm"
)

func TestTemperatureMonotonicInIntensity(t *testing.T) {
	low := TemperatureFor(IntensityLow, ToneCasual)
	medium := TemperatureFor(IntensityMedium, ToneCasual)
	high := TemperatureFor(IntensityHigh, ToneCasual)
	extreme := TemperatureFor(IntensityExtreme, ToneCasual)

	if !(low < medium && medium < high && high < extreme) {
		t.Fatalf("temperatures not strictly increasing: %f %f %f %f", low, medium, high, extreme)
	}
}

func TestTemperatureToneAdjustment(t *testing.T) {
	near := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}
	if got := TemperatureFor(IntensityMedium, ToneHumorous); !near(got, 0.8) {
		t.Fatalf("humorous medium = %f, want 0.8", got)
	}
	if got := TemperatureFor(IntensityMedium, ToneProfessional); !near(got, 0.6) {
		t.Fatalf("professional medium = %f, want 0.6", got)
	}
	// Clamped at both ends.
	if got := TemperatureFor(IntensityExtreme, ToneBold); !near(got, 1.0) {
		t.Fatalf("extreme bold = %f, want 1.0", got)
	}
	if got := TemperatureFor(IntensityLow, ToneEducational); !near(got, 0.4) {
		t.Fatalf("low educational = %f, want 0.4", got)
	}
}

type stubStream struct {
	chunks []string
	pos    int
}

func (s *stubStream) Recv() (llm.Chunk, error) {
	if s.pos >= len(s.chunks) {
		return llm.Chunk{}, io.EOF
	}
	chunk := llm.Chunk{Content: s.chunks[s.pos]}
	s.pos++
	return chunk, nil
}

func (s *stubStream) Close() error { return nil }

type stubProvider struct {
	chunks   []string
	err      error
	lastOpts llm.CompletionOptions
	lastMsgs []llm.Message
}

func (p *stubProvider) Complete(_ context.Context, messages []llm.Message, opts llm.CompletionOptions) (llm.Stream, error) {
	p.lastMsgs = messages
	p.lastOpts = opts
	if p.err != nil {
		return nil, p.err
	}
	return &stubStream{chunks: p.chunks}, nil
}

func TestGeneratorPassesSamplingParams(t *testing.T) {
	provider := &stubProvider{chunks: []string{"post body"}}
	gen := NewGenerator(provider)

	text, err := gen.Generate(context.Background(), "sys", "usr", ToneBold, IntensityExtreme)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "post body" {
		t.Fatalf("unexpected text %q", text)
	}
	if provider.lastOpts.Temperature != 1.0 {
		t.Fatalf("temperature = %f, want 1.0", provider.lastOpts.Temperature)
	}
	if provider.lastOpts.MaxTokens != 1000 {
		t.Fatalf("max tokens = %d, want 1000", provider.lastOpts.MaxTokens)
	}
	if len(provider.lastMsgs) != 2 || provider.lastMsgs[0].Role != "system" || provider.lastMsgs[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", provider.lastMsgs)
	}
}

func TestGeneratorEmptyOutput(t *testing.T) {
	gen := NewGenerator(&stubProvider{chunks: []string{"   "}})
	if _, err := gen.Generate(context.Background(), "sys", "usr", ToneCasual, IntensityLow); !errors.Is(err, ErrEmptyGeneration) {
		t.Fatalf("expected ErrEmptyGeneration, got %v", err)
	}
}

func TestParseToneAndIntensity(t *testing.T) {
	if tone, err := ParseTone(""); err != nil || tone != "" {
		t.Fatalf("empty tone should stay unspecified, got %v %v", tone, err)
	}
	req := GenerationRequest{Tone: ""}
	if got := req.EffectiveTone(); got != ToneProfessional {
		t.Fatalf("unspecified tone should generate as PROFESSIONAL, got %v", got)
	}
	if tone, err := ParseTone("bold"); err != nil || tone != ToneBold {
		t.Fatalf("lowercase tone should parse, got %v %v", tone, err)
	}
	if _, err := ParseTone("sarcastic"); err == nil {
		t.Fatalf("unknown tone should fail")
	}
	if intensity, err := ParseIntensity(" extreme "); err != nil || intensity != IntensityExtreme {
		t.Fatalf("padded intensity should parse, got %v %v", intensity, err)
	}
	if _, err := ParseIntensity("nuclear"); err == nil {
		t.Fatalf("unknown intensity should fail")
	}
}
