package config

import (
	"testing"
	"time"
)

func TestGetEnvDefault(t *testing.T) {
	if got := GetEnv("POSTWRIGHT_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvSet(t *testing.T) {
	t.Setenv("POSTWRIGHT_TEST_SET", "value")
	if got := GetEnv("POSTWRIGHT_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("POSTWRIGHT_TEST_INT", "42")
	if got := GetEnvInt("POSTWRIGHT_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("POSTWRIGHT_TEST_INT", "not-a-number")
	if got := GetEnvInt("POSTWRIGHT_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("POSTWRIGHT_TEST_FLOAT", "0.75")
	if got := GetEnvFloat("POSTWRIGHT_TEST_FLOAT", 0.5); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("POSTWRIGHT_TEST_DUR", "45s")
	if got := GetEnvDuration("POSTWRIGHT_TEST_DUR", time.Minute); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}
	t.Setenv("POSTWRIGHT_TEST_DUR", "bogus")
	if got := GetEnvDuration("POSTWRIGHT_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected default on parse failure, got %v", got)
	}
}

func TestLoadConfigEmbeddingFallback(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_API_KEY", "key-1")
	cfg := LoadConfig()
	if cfg.EmbeddingProvider != "anthropic" {
		t.Fatalf("expected embedding provider fallback, got %q", cfg.EmbeddingProvider)
	}
	if cfg.EmbeddingAPIKey != "key-1" {
		t.Fatalf("expected embedding key fallback, got %q", cfg.EmbeddingAPIKey)
	}

	t.Setenv("EMBEDDING_PROVIDER", "openai")
	cfg = LoadConfig()
	if cfg.EmbeddingProvider != "openai" {
		t.Fatalf("expected explicit embedding provider, got %q", cfg.EmbeddingProvider)
	}
}
