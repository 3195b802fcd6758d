// Package perplexica provides a search backend adapter using the
// Perplexica HTTP API.
package perplexica

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/perplexica-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchBackend = (*Client)(nil)

// searchPath is the Perplexica search endpoint.
const searchPath = "/api/search"

// unreadableBody substitutes for the response body when reading it fails
// while handling a non-success status.
const unreadableBody = "failed to read response body"

// Config holds configuration for the Perplexica client. Zero values fall
// back to domain.DefaultBackendSettings.
type Config struct {
	// BaseURL is the Perplexica instance URL (default: http://localhost:3000).
	BaseURL string

	// APIKey authenticates requests. Optional: when empty, requests are
	// sent without an Authorization header.
	APIKey string

	// ChatProvider and ChatModel select the model Perplexica answers with.
	ChatProvider string
	ChatModel    string

	// EmbeddingProvider and EmbeddingModel select the embedding model used
	// for source ranking.
	EmbeddingProvider string
	EmbeddingModel    string

	// FocusMode selects the Perplexica search mode (default: webSearch).
	FocusMode string

	// OptimizationMode trades answer quality for speed (default: speed).
	OptimizationMode string

	// Timeout is the request timeout. Zero means no timeout: a hung
	// backend blocks the call until the context is cancelled.
	Timeout time.Duration
}

// WithDefaults returns the config with every empty field replaced by the
// compiled-in default.
func (c Config) WithDefaults() Config {
	defaults := domain.DefaultBackendSettings()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.ChatProvider == "" {
		c.ChatProvider = defaults.ChatProvider
	}
	if c.ChatModel == "" {
		c.ChatModel = defaults.ChatModel
	}
	if c.EmbeddingProvider == "" {
		c.EmbeddingProvider = defaults.EmbeddingProvider
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = defaults.EmbeddingModel
	}
	if c.FocusMode == "" {
		c.FocusMode = defaults.FocusMode
	}
	if c.OptimizationMode == "" {
		c.OptimizationMode = defaults.OptimizationMode
	}
	return c
}

// Client calls the Perplexica search API.
type Client struct {
	client *http.Client
	cfg    Config
}

// modelSelector names a provider/model pair in the request body.
type modelSelector struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// searchRequest is the Perplexica /api/search request format.
type searchRequest struct {
	ChatModel        modelSelector        `json:"chatModel"`
	EmbeddingModel   modelSelector        `json:"embeddingModel"`
	OptimizationMode string               `json:"optimizationMode"`
	FocusMode        string               `json:"focusMode"`
	Query            string               `json:"query"`
	History          []domain.HistoryPair `json:"history"`
}

// searchResponse is the Perplexica /api/search response format.
type searchResponse struct {
	Message string          `json:"message"`
	Sources []domain.Source `json:"sources"`
}

// NewClient creates a new Perplexica client. The API key is optional:
// without one, requests are sent unauthenticated.
func NewClient(cfg Config) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// Answer sends one query plus the prior conversation turns to the backend
// and returns its response. Exactly one outbound request is made; nothing
// is retried.
func (c *Client) Answer(
	ctx context.Context,
	query string,
	history []domain.HistoryPair,
) (*domain.Answer, error) {
	if history == nil {
		history = []domain.HistoryPair{}
	}

	reqBody := searchRequest{
		ChatModel: modelSelector{
			Provider: c.cfg.ChatProvider,
			Model:    c.cfg.ChatModel,
		},
		EmbeddingModel: modelSelector{
			Provider: c.cfg.EmbeddingProvider,
			Model:    c.cfg.EmbeddingModel,
		},
		OptimizationMode: c.cfg.OptimizationMode,
		FocusMode:        c.cfg.FocusMode,
		Query:            query,
		History:          history,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+searchPath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	id := uuid.NewString()[:8]
	logger.Debug("[%s] POST %s (history=%d)", id, req.URL, len(history))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text := unreadableBody
		if body, readErr := io.ReadAll(resp.Body); readErr == nil {
			text = string(body)
		}
		logger.Warn("[%s] backend returned %s", id, resp.Status)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       text,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	logger.Debug("[%s] answer received (%d sources)", id, len(searchResp.Sources))

	return &domain.Answer{
		Message: searchResp.Message,
		Sources: searchResp.Sources,
	}, nil
}
