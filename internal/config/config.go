package config

import (
	"time"
)

// Config stores environment configuration for Postwright.
type Config struct {
	Port                string
	DatabaseURL         string
	CorpusDriver        string
	CorpusSeedFile      string
	LLMProvider         string
	LLMModel            string
	LLMAPIKey           string
	LLMAPIURL           string
	LLMMaxTokens        int
	EmbeddingProvider   string
	EmbeddingModel      string
	EmbeddingAPIKey     string
	EmbeddingAPIURL     string
	EmbeddingDimensions int
	SearchLimit         int
	MinSimilarity       float64
	StyleRulesFile      string
	EmbedTimeout        time.Duration
	GenerateTimeout     time.Duration
}

// LoadConfig reads service configuration from the environment.
// Embedding settings fall back to their LLM_* counterparts so a single-provider
// deployment only needs one set of credentials.
func LoadConfig() Config {
	return Config{
		Port:                GetEnv("PORT", "18010"),
		DatabaseURL:         GetEnv("DATABASE_URL", ""),
		CorpusDriver:        GetEnv("CORPUS_DRIVER", "postgres"),
		CorpusSeedFile:      GetEnv("CORPUS_SEED_FILE", ""),
		LLMProvider:         GetEnv("LLM_PROVIDER", "openai"),
		LLMModel:            GetEnv("LLM_MODEL", ""),
		LLMAPIKey:           GetEnv("LLM_API_KEY", ""),
		LLMAPIURL:           GetEnv("LLM_API_URL", ""),
		LLMMaxTokens:        GetEnvInt("LLM_MAX_TOKENS", 0),
		EmbeddingProvider:   GetEnv("EMBEDDING_PROVIDER", GetEnv("LLM_PROVIDER", "openai")),
		EmbeddingModel:      GetEnv("EMBEDDING_MODEL", GetEnv("LLM_MODEL", "")),
		EmbeddingAPIKey:     GetEnv("EMBEDDING_API_KEY", GetEnv("LLM_API_KEY", "")),
		EmbeddingAPIURL:     GetEnv("EMBEDDING_API_URL", GetEnv("LLM_API_URL", "")),
		EmbeddingDimensions: GetEnvInt("EMBEDDING_DIMENSIONS", 1536),
		SearchLimit:         GetEnvInt("SEARCH_LIMIT", 10),
		MinSimilarity:       GetEnvFloat("MIN_SIMILARITY", 0.6),
		StyleRulesFile:      GetEnv("STYLE_RULES_FILE", ""),
		EmbedTimeout:        GetEnvDuration("EMBED_TIMEOUT", 30*time.Second),
		GenerateTimeout:     GetEnvDuration("GENERATE_TIMEOUT", 90*time.Second),
	}
}
