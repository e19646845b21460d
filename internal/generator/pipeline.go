package generator

import (
	"context"
	"fmt"
	"time"

	"postwright/internal/corpus"
	"postwright/internal/llm"
	"postwright/internal/logging"
	"postwright/internal/patterns"
)

type PipelineConfig struct {
	SearchLimit     int
	MinSimilarity   float64
	EmbedTimeout    time.Duration
	GenerateTimeout time.Duration
}

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		SearchLimit:     corpus.DefaultSearchLimit,
		MinSimilarity:   corpus.DefaultMinSimilarity,
		EmbedTimeout:    30 * time.Second,
		GenerateTimeout: 90 * time.Second,
	}
}

// Pipeline sequences one generation request: embed the topic, retrieve
// reference documents (falling back to diversity sampling when search comes
// up empty), extract style patterns, assemble the prompt, call the model, and
// sanitize the result. It holds no mutable state; concurrent requests share
// it freely.
type Pipeline struct {
	embedder  llm.EmbeddingClient
	engine    corpus.Engine
	generator *Generator
	extractor *patterns.Extractor
	log       logging.Logger
	cfg       PipelineConfig
}

func NewPipeline(embedder llm.EmbeddingClient, engine corpus.Engine, gen *Generator, extractor *patterns.Extractor, log logging.Logger, cfg PipelineConfig) *Pipeline {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = corpus.DefaultSearchLimit
	}
	// Zero means unset; a negative floor passes through and the corpus
	// layer treats it as "no floor".
	if cfg.MinSimilarity == 0 {
		cfg.MinSimilarity = corpus.DefaultMinSimilarity
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = DefaultPipelineConfig().EmbedTimeout
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = DefaultPipelineConfig().GenerateTimeout
	}
	return &Pipeline{
		embedder:  embedder,
		engine:    engine,
		generator: gen,
		extractor: extractor,
		log:       log,
		cfg:       cfg,
	}
}

func (p *Pipeline) GeneratePost(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		generationsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	embedding, err := p.embedTopic(ctx, req.Topic)
	if err != nil {
		generationsTotal.WithLabelValues("embedding").Inc()
		return nil, err
	}

	// An omitted tone means no tone filter; only an explicit request
	// narrows retrieval.
	docs, err := p.engine.Search(ctx, embedding, corpus.SearchOptions{
		Limit:         p.cfg.SearchLimit,
		MinSimilarity: p.cfg.MinSimilarity,
		Category:      req.Category,
		Tone:          string(req.Tone),
	})
	if err != nil {
		generationsTotal.WithLabelValues("corpus").Inc()
		return nil, fmt.Errorf("search reference posts: %w", err)
	}

	usedFallback := false
	if len(docs) == 0 {
		p.log.WithField("topic", req.Topic).Info("No similar posts found, sampling diverse references")
		docs, err = p.engine.SampleDiverse(ctx, p.cfg.SearchLimit)
		if err != nil {
			generationsTotal.WithLabelValues("corpus").Inc()
			return nil, fmt.Errorf("sample reference posts: %w", err)
		}
		usedFallback = true
		fallbackSamplesTotal.Inc()
	}
	if len(docs) == 0 {
		generationsTotal.WithLabelValues("corpus").Inc()
		return nil, corpus.ErrEmptyCorpus
	}
	referenceDocsCount.Observe(float64(len(docs)))

	extracted, err := p.extractor.Extract(docs)
	if err != nil {
		// Unreachable when docs is non-empty; fail loudly if it ever is not.
		generationsTotal.WithLabelValues("corpus").Inc()
		return nil, fmt.Errorf("extract patterns: %w", err)
	}

	system, user := Assemble(req, extracted, docs)

	genCtx, cancel := context.WithTimeout(ctx, p.cfg.GenerateTimeout)
	defer cancel()
	raw, err := p.generator.Generate(genCtx, system, user, req.EffectiveTone(), req.Intensity)
	if err != nil {
		generationsTotal.WithLabelValues("generation").Inc()
		return nil, err
	}

	content := Sanitize(CleanModelArtifacts(raw))
	if content == "" {
		generationsTotal.WithLabelValues("generation").Inc()
		return nil, ErrEmptyGeneration
	}

	var totalSimilarity float64
	referenceIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		totalSimilarity += doc.Similarity
		referenceIDs = append(referenceIDs, doc.ID)
	}

	p.log.WithFields(logging.Fields{
		"topic":      req.Topic,
		"tone":       req.EffectiveTone(),
		"intensity":  req.Intensity,
		"references": len(docs),
		"fallback":   usedFallback,
		"duration":   time.Since(start).String(),
	}).Info("Generated post")

	generationsTotal.WithLabelValues("ok").Inc()
	generationDuration.Observe(time.Since(start).Seconds())

	return &GenerationResult{
		Content:        content,
		ReferenceCount: len(docs),
		ReferenceIDs:   referenceIDs,
		AvgSimilarity:  totalSimilarity / float64(len(docs)),
		UsedFallback:   usedFallback,
		Patterns:       extracted,
	}, nil
}

func (p *Pipeline) embedTopic(ctx context.Context, topic string) ([]float32, error) {
	embedCtx, cancel := context.WithTimeout(ctx, p.cfg.EmbedTimeout)
	defer cancel()

	start := time.Now()
	vectors, err := p.embedder.Embed(embedCtx, []string{topic})
	embedDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("embed topic: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("embed topic: empty embedding returned")
	}
	return vectors[0], nil
}
