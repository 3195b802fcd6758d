package services

import (
	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for backend settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyBaseURL           = "backend.base_url"
	keyAPIKey            = "backend.api_key"
	keyChatProvider      = "backend.chat_provider"
	keyChatModel         = "backend.chat_model"
	keyEmbeddingProvider = "backend.embedding_provider"
	keyEmbeddingModel    = "backend.embedding_model"
	keyFocusMode         = "backend.focus_mode"
	keyOptimizationMode  = "backend.optimization_mode"
	keyTimeoutSeconds    = "backend.timeout_seconds"
)

// EnvOverrides are configuration values read from the process environment
// once at startup. Environment values win over the config file.
type EnvOverrides struct {
	// APIKey is the bearer key for the backend.
	APIKey string

	// BaseURL is the backend instance URL.
	BaseURL string
}

// SettingsService resolves the effective backend configuration from the
// environment, the config store, and compiled-in defaults, in that order.
type SettingsService struct {
	configStore driven.ConfigStore
	env         EnvOverrides
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, env EnvOverrides) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		env:         env,
	}
}

// Backend returns the backend configuration as currently applied, with
// defaults filled in and credentials redacted to a boolean.
func (s *SettingsService) Backend() (*domain.BackendSettings, error) {
	defaults := domain.DefaultBackendSettings()

	baseURL := s.env.BaseURL
	if baseURL == "" {
		baseURL = s.getString(keyBaseURL, defaults.BaseURL)
	}

	settings := &domain.BackendSettings{
		BaseURL:           baseURL,
		ChatProvider:      s.getString(keyChatProvider, defaults.ChatProvider),
		ChatModel:         s.getString(keyChatModel, defaults.ChatModel),
		EmbeddingProvider: s.getString(keyEmbeddingProvider, defaults.EmbeddingProvider),
		EmbeddingModel:    s.getString(keyEmbeddingModel, defaults.EmbeddingModel),
		FocusMode:         s.getString(keyFocusMode, defaults.FocusMode),
		OptimizationMode:  s.getString(keyOptimizationMode, defaults.OptimizationMode),
		TimeoutSeconds:    s.configStore.GetInt(keyTimeoutSeconds),
		Authenticated:     s.APIKey() != "",
	}

	return settings, nil
}

// APIKey returns the effective bearer key: the environment value when
// present, otherwise the config file value. Empty means unauthenticated,
// which is not an error.
func (s *SettingsService) APIKey() string {
	if s.env.APIKey != "" {
		return s.env.APIKey
	}
	return s.configStore.GetString(keyAPIKey)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}
