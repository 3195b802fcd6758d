package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for server resources.
const uriScheme = "perplexica://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource exposing the effective backend configuration.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "backend",
		Name:        "backend",
		Description: "Effective Perplexica backend configuration (credentials redacted)",
		MIMEType:    "application/json",
	}, s.handleBackendResource)
}

// handleBackendResource returns the effective backend configuration.
func (s *Server) handleBackendResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	settings, err := s.ports.Settings.Backend()
	if err != nil {
		return nil, fmt.Errorf("reading backend settings: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling backend settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
