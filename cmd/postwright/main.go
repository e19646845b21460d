package main

import (
	"context"
	"time"

	"postwright/internal/config"
	"postwright/internal/corpus"
	"postwright/internal/database"
	"postwright/internal/generator"
	"postwright/internal/llm"
	"postwright/internal/logging"
	"postwright/internal/monitoring"
	"postwright/internal/patterns"
	"postwright/internal/server"
	"postwright/internal/version"
	"postwright/internal/webapi"
)

func main() {
	logger := logging.NewLoggerWithService("postwright")

	config.LoadEnv(logger)

	logger.Info("Starting Postwright (RAG post generation API)")

	cfg := config.LoadConfig()

	healthChecker := monitoring.NewHealthChecker("postwright", version.Version)

	embedder, err := llm.NewEmbeddingClient(llm.Config{
		Provider: cfg.EmbeddingProvider,
		Model:    cfg.EmbeddingModel,
		APIKey:   cfg.EmbeddingAPIKey,
		APIURL:   cfg.EmbeddingAPIURL,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create embedding client")
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLMProvider,
		Model:     cfg.LLMModel,
		APIKey:    cfg.LLMAPIKey,
		APIURL:    cfg.LLMAPIURL,
		MaxTokens: cfg.LLMMaxTokens,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create LLM provider")
	}

	var engine corpus.Engine
	var recorder corpus.Recorder

	switch cfg.CorpusDriver {
	case "memory":
		var docs []corpus.ReferenceDocument
		if cfg.CorpusSeedFile != "" {
			docs, err = corpus.LoadSeedFile(cfg.CorpusSeedFile)
			if err != nil {
				logger.WithError(err).Fatal("Failed to load corpus seed file")
			}
		}
		logger.WithField("documents", len(docs)).Info("Using in-memory corpus")
		engine = corpus.NewMemoryEngine(docs)

	default:
		dbConfig := database.DefaultConfig()
		dbConfig.URL = cfg.DatabaseURL
		db := database.MustConnect(dbConfig, logger)
		defer func() { _ = db.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := corpus.EnsureSchema(ctx, db, cfg.EmbeddingDimensions); err != nil {
			cancel()
			logger.WithError(err).Fatal("Failed to ensure corpus schema")
		}
		if migrated, err := corpus.EnsureEmbeddingDimensions(ctx, db, cfg.EmbeddingDimensions); err != nil {
			cancel()
			logger.WithError(err).Fatal("Failed to verify embedding dimensions")
		} else if migrated {
			logger.WithField("dimensions", cfg.EmbeddingDimensions).Warn("Embedding dimensions changed, corpus truncated")
		}
		if err := corpus.EnsureGenerationLogSchema(ctx, db); err != nil {
			cancel()
			logger.WithError(err).Fatal("Failed to ensure generation log schema")
		}
		cancel()

		store := corpus.NewStore(db, cfg.EmbeddingDimensions)
		engine = store
		recorder = store

		healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	}

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"LLM_MODEL":       cfg.LLMModel,
		"EMBEDDING_MODEL": cfg.EmbeddingModel,
	}))

	rules := patterns.DefaultRules()
	if cfg.StyleRulesFile != "" {
		rules, err = patterns.LoadRules(cfg.StyleRulesFile)
		if err != nil {
			logger.WithError(err).Fatal("Failed to load style detector rules")
		}
		logger.WithField("file", cfg.StyleRulesFile).Info("Loaded style detector rules")
	}

	pipeline := generator.NewPipeline(
		embedder,
		engine,
		generator.NewGenerator(provider),
		patterns.NewExtractor(rules),
		logger,
		generator.PipelineConfig{
			SearchLimit:     cfg.SearchLimit,
			MinSimilarity:   cfg.MinSimilarity,
			EmbedTimeout:    cfg.EmbedTimeout,
			GenerateTimeout: cfg.GenerateTimeout,
		},
	)

	handler := &webapi.Handler{
		Pipeline: pipeline,
		Engine:   engine,
		Recorder: recorder,
		Logger:   logger,
	}

	router := server.SetupServiceRouter(logger, "postwright", healthChecker)
	handler.RegisterRoutes(router)

	serverConfig := server.DefaultConfig("postwright", cfg.Port)
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}
