// Package domain defines the core business entities for the Perplexica
// MCP server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Message: A role-tagged conversation message
//   - HistoryPair: A prior conversation turn in the backend's wire shape
//   - Answer / Source: A search-augmented answer with its citations
//   - BackendSettings: The effective backend configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
