package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
)

func newOpenAITestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("TEST_OPENAI_KEY", "test-key")
	client, err := NewOpenAIClient(&config.LLMProviderConfig{
		Type:      config.LLMProviderTypeOpenAI,
		Model:     "test-model",
		APIKeyEnv: "TEST_OPENAI_KEY",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestOpenAIChat(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello back"},
					"finish_reason": "stop"},
			},
			"usage": map[string]any{
				"prompt_tokens":         50,
				"completion_tokens":     10,
				"prompt_tokens_details": map[string]int{"cached_tokens": 40},
			},
		})
	})

	resp, err := client.Chat(context.Background(), &Request{
		Model: "test-model",
		Messages: []Message{
			{Role: RoleSystem, Content: "you are a scorer", CacheControl: CacheControlEphemeral},
			{Role: RoleUser, Content: "score this"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello back", resp.Content)
	assert.Equal(t, 50, resp.Usage.PromptTokens)
	assert.Equal(t, 10, resp.Usage.CompletionTokens)
	assert.Equal(t, 40, resp.Usage.CachedTokens)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestOpenAIChatErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", 401, ErrAuthentication},
		{"unknown model", 404, ErrModelNotFound},
		{"rate limited", 429, ErrRateLimited},
		{"server error", 503, ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newOpenAITestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.Chat(context.Background(), &Request{Model: "m"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenAIChatStream(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		require.NotNil(t, req.StreamOptions)
		assert.True(t, req.StreamOptions.IncludeUsage)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"part one "}}]}` + "\n\n"))
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"part two"}}]}` + "\n\n"))
		w.Write([]byte(`data: {"choices":[],"usage":{"prompt_tokens":30,"completion_tokens":8}}` + "\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	})

	ch, err := client.ChatStream(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)

	var content string
	var usage *Usage
	var finished bool
	for ev := range ch {
		switch e := ev.(type) {
		case *ContentDelta:
			content += e.Content
		case *UsageInfo:
			u := e.Usage
			usage = &u
		case *FinishEvent:
			finished = true
		case *ErrorEvent:
			t.Fatalf("unexpected stream error: %v", e.Err)
		}
	}

	assert.Equal(t, "part one part two", content)
	require.NotNil(t, usage)
	assert.Equal(t, 30, usage.PromptTokens)
	assert.True(t, finished)
}

func TestOpenAIEmbeddings(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)

		var req openAIEmbeddingsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"chunk a", "chunk b"}, req.Input)

		// Out-of-order data entries must land at their declared index.
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": []float32{0.3, 0.4}},
				{"index": 0, "embedding": []float32{0.1, 0.2}},
			},
		})
	})

	vectors, err := client.Embeddings(context.Background(), "embed-model", []string{"chunk a", "chunk b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{0.1, 0.2}, vectors[0])
	assert.Equal(t, []float32{0.3, 0.4}, vectors[1])
}

func TestOpenAIEmbeddingsCountMismatch(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"index": 0, "embedding": []float32{0.1}}},
		})
	})

	_, err := client.Embeddings(context.Background(), "m", []string{"a", "b"})
	assert.ErrorIs(t, err, ErrProvider)
}

func TestNewOpenAIClientMissingKey(t *testing.T) {
	t.Setenv("TEST_EMPTY_KEY", "")
	_, err := NewOpenAIClient(&config.LLMProviderConfig{
		Type:      config.LLMProviderTypeOpenAI,
		APIKeyEnv: "TEST_EMPTY_KEY",
	})
	assert.ErrorIs(t, err, ErrAuthentication)
}
