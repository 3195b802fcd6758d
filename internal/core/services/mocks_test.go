package services

import (
	"context"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// mockSearchBackend is a mock implementation of driven.SearchBackend.
// It records the last query and history it was called with.
type mockSearchBackend struct {
	answer *domain.Answer
	err    error

	calls   int
	query   string
	history []domain.HistoryPair
}

func (m *mockSearchBackend) Answer(
	_ context.Context,
	query string,
	history []domain.HistoryPair,
) (*domain.Answer, error) {
	m.calls++
	m.query = query
	m.history = history
	return m.answer, m.err
}

// mockConfigStore is an in-memory implementation of driven.ConfigStore.
type mockConfigStore struct {
	data map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	val, _ := m.data[key].(string)
	return val
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	val, _ := m.data[key].(bool)
	return val
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
	return nil
}
