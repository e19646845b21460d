package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbeddingProviderOpenAI(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req openAIEmbeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Input) != 2 {
			t.Fatalf("expected batched inputs, got %d", len(req.Input))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float32{0.1, 0.2}},
				{"embedding": []float32{0.3, 0.4}},
			},
		})
	}))
	defer server.Close()

	client, err := NewEmbeddingClient(Config{
		Provider: "openai",
		Model:    "text-embedding-3-small",
		APIURL:   server.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	vectors, err := client.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vectors) != 2 || len(vectors[0]) != 2 {
		t.Fatalf("unexpected vectors %v", vectors)
	}
	if vectors[1][0] != 0.3 {
		t.Fatalf("unexpected vector value %v", vectors[1][0])
	}
}

func TestEmbeddingProviderOllama(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"embedding": []float32{float32(calls), 0},
		})
	}))
	defer server.Close()

	client, err := NewEmbeddingClient(Config{
		Provider: "ollama",
		Model:    "nomic-embed-text",
		APIURL:   server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	vectors, err := client.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected one request per input, got %d", calls)
	}
	if vectors[0][0] != 1 || vectors[1][0] != 2 {
		t.Fatalf("unexpected vectors %v", vectors)
	}
}

func TestEmbeddingClientRequiresModel(t *testing.T) {
	t.Parallel()

	if _, err := NewEmbeddingClient(Config{Provider: "openai"}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestProbeEmbeddingDimensions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": make([]float32, 1536)},
			},
		})
	}))
	defer server.Close()

	client, err := NewEmbeddingClient(Config{Model: "text-embedding-3-small", APIURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	dims, err := ProbeEmbeddingDimensions(context.Background(), client)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if dims != 1536 {
		t.Fatalf("dims = %d, want 1536", dims)
	}
}
