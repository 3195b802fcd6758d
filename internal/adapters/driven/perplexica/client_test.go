package perplexica

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// capturedRequest records what the test server received.
type capturedRequest struct {
	path          string
	contentType   string
	authorization string
	hasAuth       bool
	body          map[string]any
}

// newTestServer returns a backend stub answering with the given status
// and body, and a pointer that is filled with the captured request.
func newTestServer(t *testing.T, status int, responseBody string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.contentType = r.Header.Get("Content-Type")
		captured.authorization = r.Header.Get("Authorization")
		_, captured.hasAuth = r.Header["Authorization"]

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured.body))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func TestClient_Answer_RequestShape(t *testing.T) {
	ctx := context.Background()

	t.Run("sends fixed model and mode fields with query and history", func(t *testing.T) {
		server, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		client := NewClient(Config{BaseURL: server.URL})

		_, err := client.Answer(ctx, "capital of France?", []domain.HistoryPair{
			{domain.SpeakerHuman, "hello"},
			{domain.SpeakerAssistant, "hi"},
		})
		require.NoError(t, err)

		assert.Equal(t, "/api/search", captured.path)
		assert.Equal(t, "application/json", captured.contentType)
		assert.Equal(t, "capital of France?", captured.body["query"])
		assert.Equal(t, "webSearch", captured.body["focusMode"])
		assert.Equal(t, "speed", captured.body["optimizationMode"])
		assert.Equal(t,
			map[string]any{"provider": "openai", "model": "gpt-4o-mini"},
			captured.body["chatModel"])
		assert.Equal(t,
			map[string]any{"provider": "openai", "model": "text-embedding-3-large"},
			captured.body["embeddingModel"])

		// History marshals as two-element arrays, order preserved.
		assert.Equal(t, []any{
			[]any{"human", "hello"},
			[]any{"assistant", "hi"},
		}, captured.body["history"])
	})

	t.Run("nil history marshals as an empty array", func(t *testing.T) {
		server, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		client := NewClient(Config{BaseURL: server.URL})

		_, err := client.Answer(ctx, "q", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{}, captured.body["history"])
	})
}

func TestClient_Answer_Authorization(t *testing.T) {
	ctx := context.Background()

	t.Run("no key sends no Authorization header", func(t *testing.T) {
		server, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		client := NewClient(Config{BaseURL: server.URL})

		_, err := client.Answer(ctx, "q", nil)
		require.NoError(t, err)
		assert.False(t, captured.hasAuth)
	})

	t.Run("key is sent as a bearer token", func(t *testing.T) {
		server, captured := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

		_, err := client.Answer(ctx, "q", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret", captured.authorization)
	})
}

func TestClient_Answer_Responses(t *testing.T) {
	ctx := context.Background()

	t.Run("parses message and sources", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusOK, `{
			"message": "Paris is the capital.",
			"sources": [
				{"metadata": {"title": "Wiki", "url": "https://x"}},
				{"pageContent": "snippet"}
			]
		}`)
		client := NewClient(Config{BaseURL: server.URL})

		answer, err := client.Answer(ctx, "q", nil)

		require.NoError(t, err)
		assert.Equal(t, "Paris is the capital.", answer.Message)
		require.Len(t, answer.Sources, 2)
		assert.Equal(t, "Wiki", answer.Sources[0].Metadata.Title)
		assert.Equal(t, "https://x", answer.Sources[0].Metadata.URL)
		assert.Equal(t, "snippet", answer.Sources[1].PageContent)
	})

	t.Run("non-success status yields an APIError with status and body", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusInternalServerError, "boom")
		client := NewClient(Config{BaseURL: server.URL})

		_, err := client.Answer(ctx, "q", nil)

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Body)
		assert.Equal(t, "Perplexica API error: 500 Internal Server Error\nboom", err.Error())
	})

	t.Run("invalid JSON yields a DecodeError", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusOK, "<html>not json</html>")
		client := NewClient(Config{BaseURL: server.URL})

		_, err := client.Answer(ctx, "q", nil)

		require.Error(t, err)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("unreachable backend yields a RequestError", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
		url := server.URL
		server.Close()

		client := NewClient(Config{BaseURL: url})
		_, err := client.Answer(ctx, "q", nil)

		require.Error(t, err)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("empty config gets compiled-in defaults", func(t *testing.T) {
		cfg := Config{}.WithDefaults()
		assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
		assert.Equal(t, "openai", cfg.ChatProvider)
		assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
		assert.Equal(t, "openai", cfg.EmbeddingProvider)
		assert.Equal(t, "text-embedding-3-large", cfg.EmbeddingModel)
		assert.Equal(t, "webSearch", cfg.FocusMode)
		assert.Equal(t, "speed", cfg.OptimizationMode)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("set fields are preserved", func(t *testing.T) {
		cfg := Config{BaseURL: "https://example.com", FocusMode: "academicSearch"}.WithDefaults()
		assert.Equal(t, "https://example.com", cfg.BaseURL)
		assert.Equal(t, "academicSearch", cfg.FocusMode)
		assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	})
}
