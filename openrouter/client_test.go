package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/airmarket/airline-demand-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.OpenRouterConfig{
		BaseURL:   srv.URL,
		APIKey:    "test-key",
		Model:     "microsoft/phi-3-mini-128k-instruct:free",
		MaxTokens: 120,
		Timeout:   time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.OpenRouterConfig{BaseURL: "http://localhost"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "microsoft/phi-3-mini-128k-instruct:free", req["model"])
		assert.Equal(t, float64(120), req["max_tokens"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"market looks busy"}}]}`))
	})

	text, err := c.Complete(context.Background(), "Analyze this airline data")
	require.NoError(t, err)
	assert.Equal(t, "market looks busy", text)
}

func TestCompleteNonOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestCompleteEmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}
