package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/perplexica-mcp/internal/core/domain"
)

// toolAsk is the single tool this server advertises.
const toolAsk = "perplexica_ask"

// AskMessage is one conversation message in the ask tool input.
type AskMessage struct {
	Role    string `json:"role" jsonschema:"message author role: system, user, or assistant"`
	Content string `json:"content" jsonschema:"the message text"`
}

// AskInput is the input schema for the perplexica_ask tool.
type AskInput struct {
	Messages []AskMessage `json:"messages" jsonschema:"conversation messages in order; the last one is the question to answer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: toolAsk,
		Description: "Ask Perplexica, an AI-powered web search engine. " +
			"Answers the last message of the conversation using live web " +
			"results and returns the answer text with citations.",
	}, s.handleAsk)
}

// handleAsk handles the perplexica_ask tool invocation. It never returns
// an error: every failure is converted into an error-flagged result, so
// the transport layer never observes a fault.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, any, error) {
	return s.dispatch(ctx, toolAsk, input), nil, nil
}

// dispatch routes a tool call by name. Unknown names produce a flagged
// "Unknown tool" result without touching the network; errors from the
// chat service are flattened into "Error: <message>" results.
func (s *Server) dispatch(ctx context.Context, name string, input AskInput) *mcp.CallToolResult {
	switch name {
	case toolAsk:
		if input.Messages == nil {
			return errorResult("Error: messages is required and must be an array of {role, content} objects")
		}

		messages := make([]domain.Message, len(input.Messages))
		for i, msg := range input.Messages {
			messages[i] = domain.Message{Role: msg.Role, Content: msg.Content}
		}

		text, err := s.ports.Chat.Ask(ctx, messages)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(text)

	default:
		return errorResult("Unknown tool: " + name)
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
