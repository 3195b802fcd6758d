package driving

import "github.com/custodia-labs/perplexica-mcp/internal/core/domain"

// SettingsService exposes the effective application configuration.
type SettingsService interface {
	// Backend returns the backend configuration as currently applied,
	// with defaults filled in and credentials redacted.
	Backend() (*domain.BackendSettings, error)
}
