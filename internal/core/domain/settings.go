package domain

// BackendSettings is the effective Perplexica backend configuration.
// Credentials are never carried here; Authenticated only records whether
// a key is configured.
type BackendSettings struct {
	// BaseURL is the Perplexica instance URL.
	BaseURL string `json:"base_url"`

	// ChatProvider and ChatModel select the model Perplexica answers with.
	ChatProvider string `json:"chat_provider"`
	ChatModel    string `json:"chat_model"`

	// EmbeddingProvider and EmbeddingModel select the embedding model used
	// for source ranking.
	EmbeddingProvider string `json:"embedding_provider"`
	EmbeddingModel    string `json:"embedding_model"`

	// FocusMode selects the Perplexica search mode.
	FocusMode string `json:"focus_mode"`

	// OptimizationMode trades answer quality for speed.
	OptimizationMode string `json:"optimization_mode"`

	// TimeoutSeconds is the outbound request timeout. Zero means no
	// timeout: a hung backend blocks the call until cancellation.
	TimeoutSeconds int `json:"timeout_seconds"`

	// Authenticated reports whether an API key is configured.
	Authenticated bool `json:"authenticated"`
}

// DefaultBackendSettings returns the compiled-in backend configuration.
// An unconfigured installation runs against a local Perplexica instance
// with these values.
func DefaultBackendSettings() BackendSettings {
	return BackendSettings{
		BaseURL:           "http://localhost:3000",
		ChatProvider:      "openai",
		ChatModel:         "gpt-4o-mini",
		EmbeddingProvider: "openai",
		EmbeddingModel:    "text-embedding-3-large",
		FocusMode:         "webSearch",
		OptimizationMode:  "speed",
	}
}
