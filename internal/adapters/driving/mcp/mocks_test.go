package mcp

import (
	"context"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// mockChatService is a mock implementation of driving.ChatService.
// It records the messages it was asked with.
type mockChatService struct {
	text string
	err  error

	calls    int
	messages []domain.Message
}

func (m *mockChatService) Ask(_ context.Context, messages []domain.Message) (string, error) {
	m.calls++
	m.messages = messages
	return m.text, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.BackendSettings
	err      error
}

func (m *mockSettingsService) Backend() (*domain.BackendSettings, error) {
	return m.settings, m.err
}
