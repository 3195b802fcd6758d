package mcp

import (
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat answers conversations through the search backend.
	Chat driving.ChatService

	// Settings exposes the effective backend configuration.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	// Settings is optional; the backend resource degrades to "{}".
	return nil
}
