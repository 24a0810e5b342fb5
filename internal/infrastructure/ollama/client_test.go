package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/config"
)

func newTestClient(baseURL string) *client {
	cfg := &config.OllamaConfig{
		BaseURL:        baseURL,
		Model:          "llama3",
		RequestTimeout: 2,
		Temperature:    0.3,
		TopP:           0.9,
		NumPredict:     1200,
	}
	return NewOllamaClient(cfg, zap.NewNop()).(*client)
}

func TestClient_Chat(t *testing.T) {
	t.Run("successful chat", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chat", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "llama3", req.Model)
			assert.False(t, req.Stream)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "user", req.Messages[1].Role)
			assert.InDelta(t, 0.3, req.Options.Temperature, 1e-9)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatResponse{
				Message: chatMessage{Role: "assistant", Content: `{"city":"Jaipur","days":[]}`},
				Done:    true,
			})
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		content, err := c.Chat(context.Background(), "be terse", "plan a trip")
		require.NoError(t, err)
		assert.Equal(t, `{"city":"Jaipur","days":[]}`, content)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("model not loaded"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		content, err := c.Chat(context.Background(), "sys", "user")
		require.Error(t, err)
		assert.Empty(t, content)
		assert.Contains(t, err.Error(), "model not loaded")
	})

	t.Run("garbage response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		content, err := c.Chat(context.Background(), "sys", "user")
		require.Error(t, err)
		assert.Empty(t, content)
	})
}
