package driven

import (
	"context"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// SearchBackend produces a web-search-augmented answer for a query.
//
// Implementations perform exactly one outbound call per invocation and
// return a typed error when the backend cannot be reached, answers with a
// non-success status, or returns a body that cannot be decoded.
type SearchBackend interface {
	// Answer sends one query plus the prior conversation turns to the
	// backend and returns its response.
	Answer(ctx context.Context, query string, history []domain.HistoryPair) (*domain.Answer, error)
}
