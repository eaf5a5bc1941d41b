package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is implemented by everything the server registers as an MCP tool.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
