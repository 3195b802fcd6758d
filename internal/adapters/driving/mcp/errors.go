// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes Perplexica's web-search-augmented answers to AI assistants
// as a single perplexica_ask tool.
package mcp

import "errors"

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("mcp: chat service is required")
