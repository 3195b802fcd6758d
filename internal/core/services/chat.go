// Package services implements the driving ports on top of the driven ones.
package services

import (
	"context"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/perplexica-mcp/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService answers conversations through a search backend.
type ChatService struct {
	backend driven.SearchBackend
}

// NewChatService creates a new chat service.
func NewChatService(backend driven.SearchBackend) *ChatService {
	return &ChatService{backend: backend}
}

// Ask answers a conversation. The last message becomes the query; earlier
// user/assistant turns are forwarded as history, everything else is
// dropped. The returned text has one citation line appended per source
// the backend consulted.
func (s *ChatService) Ask(ctx context.Context, messages []domain.Message) (string, error) {
	logger.Section("Chat Completion")
	logger.Debug("Messages: %d", len(messages))

	query, history, err := domain.SplitConversation(messages)
	if err != nil {
		return "", err
	}
	logger.Debug("Query: %q", query)
	logger.Debug("History turns: %d (dropped %d)", len(history), len(messages)-1-len(history))

	answer, err := s.backend.Answer(ctx, query, history)
	if err != nil {
		return "", err
	}
	logger.Debug("Sources returned: %d", len(answer.Sources))

	return answer.Text(), nil
}
