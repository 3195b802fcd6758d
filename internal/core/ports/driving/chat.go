package driving

import (
	"context"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// ChatService answers conversations with web-search-augmented completions.
type ChatService interface {
	// Ask answers a conversation. The last message is the question to
	// answer; earlier user/assistant turns provide context. The returned
	// text carries a citation line per consulted source.
	Ask(ctx context.Context, messages []domain.Message) (string, error)
}
