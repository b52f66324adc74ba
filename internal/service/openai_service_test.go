package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAI(t *testing.T, h http.HandlerFunc) *service.OpenAIService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	s, err := service.NewOpenAIService(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1/",
		Model:   "gpt-4",
	})
	require.NoError(t, err)
	return s
}

func TestOpenAIService_Complete(t *testing.T) {
	var got map[string]any
	s := newOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  志望動機です。\n"}}]}`))
	})

	temp := float32(0.7)
	text, err := s.Complete(context.Background(), service.CompletionRequest{
		Messages:    []service.Message{{Role: service.RoleUser, Content: "prompt"}},
		MaxTokens:   800,
		Temperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, "志望動機です。", text)

	assert.Equal(t, "gpt-4", got["model"])
	assert.EqualValues(t, 800, got["max_tokens"])
	assert.InDelta(t, 0.7, got["temperature"], 0.001)
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, map[string]any{"role": "user", "content": "prompt"}, messages[0])
}

func TestOpenAIService_CompleteOmitsUnsetParameters(t *testing.T) {
	var got map[string]any
	s := newOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := s.Complete(context.Background(), service.CompletionRequest{
		Messages: []service.Message{{Role: service.RoleUser, Content: "prompt"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, got, "max_tokens")
	assert.NotContains(t, got, "temperature")
}

func TestOpenAIService_CompleteErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		s := newOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
		})
		_, err := s.Complete(context.Background(), service.CompletionRequest{
			Messages: []service.Message{{Role: service.RoleUser, Content: "x"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("no choices", func(t *testing.T) {
		s := newOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})
		_, err := s.Complete(context.Background(), service.CompletionRequest{
			Messages: []service.Message{{Role: service.RoleUser, Content: "x"}},
		})
		assert.ErrorIs(t, err, service.ErrEmptyCompletion)
	})

	t.Run("single call on failure", func(t *testing.T) {
		calls := 0
		s := newOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := s.Complete(context.Background(), service.CompletionRequest{
			Messages: []service.Message{{Role: service.RoleUser, Content: "x"}},
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestNewOpenAIService_RequiresKey(t *testing.T) {
	_, err := service.NewOpenAIService(&config.OpenAIConfig{BaseURL: "http://localhost"})
	assert.Error(t, err)
}
