package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiProvider generates text through Google's genai SDK. Unlike the HTTP
// providers it holds a long-lived client, so construction takes a context.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if cfg.Model == "" {
		return nil, errors.New("gemini model is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (Stream, error) {
	model := p.client.GenerativeModel(p.model)
	if opts.Temperature > 0 {
		model.SetTemperature(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	var parts []genai.Part
	for _, message := range messages {
		if message.Role == "system" {
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(message.Content)},
			}
			continue
		}
		parts = append(parts, genai.Text(message.Content))
	}
	if len(parts) == 0 {
		return nil, errors.New("gemini: no user content to send")
	}

	iter := model.GenerateContentStream(ctx, parts...)
	return &geminiStream{iter: iter}, nil
}

type geminiStream struct {
	iter *genai.GenerateContentResponseIterator
}

func (s *geminiStream) Recv() (Chunk, error) {
	for {
		resp, err := s.iter.Next()
		if errors.Is(err, iterator.Done) {
			return Chunk{}, io.EOF
		}
		if err != nil {
			return Chunk{}, fmt.Errorf("gemini: stream recv: %w", err)
		}
		text := geminiResponseText(resp)
		if text == "" {
			continue
		}
		return Chunk{Content: text}, nil
	}
}

func (s *geminiStream) Close() error {
	return nil
}

func geminiResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text
}

// GeminiEmbedder implements EmbeddingClient through the same SDK.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbedder(ctx context.Context, cfg Config) (*GeminiEmbedder, error) {
	if cfg.Model == "" {
		return nil, errors.New("gemini embedding model is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiEmbedder{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return nil, errors.New("inputs are required")
	}
	em := e.client.EmbeddingModel(e.model)
	vectors := make([][]float32, 0, len(inputs))
	for _, input := range inputs {
		res, err := em.EmbedContent(ctx, genai.Text(input))
		if err != nil {
			return nil, fmt.Errorf("gemini: embed content: %w", err)
		}
		if res.Embedding == nil || len(res.Embedding.Values) == 0 {
			return nil, errors.New("gemini: empty embedding returned")
		}
		vectors = append(vectors, res.Embedding.Values)
	}
	return vectors, nil
}
