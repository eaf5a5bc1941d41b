// Package users exposes the getUsers MCP tool, a thin protocol binding
// around the randomuser core.
package users

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hugo-85/mcp-randomuserme/core"
	"github.com/hugo-85/mcp-randomuserme/pkg/randomuser"
)

const ToolName = "getUsers"

// fetchErrorMessage is the full failure contract of the operation: every
// fetch failure flattens to this exact text on the normal result channel.
const fetchErrorMessage = "Error fetching random users"

// RandomUserTool fetches random user profiles from the upstream API.
type RandomUserTool struct {
	handle mcp.Tool
	client *randomuser.Client
}

// New creates the getUsers tool. The input schema is reflected from
// randomuser.Params, so the declared schema and the validator share the
// same source of truth.
func New(client *randomuser.Client) core.Tool {
	t := &RandomUserTool{client: client}

	t.handle = mcp.NewTool(
		ToolName,
		mcp.WithDescription("Fetch random user profiles from the randomuser.me API. All parameters are optional; with none given a single random user is returned."),
	)
	t.handle.InputSchema.Properties = paramsProperties()

	return t
}

// paramsProperties renders randomuser.Params as a flat JSON-schema
// property map for the tool handle.
func paramsProperties() map[string]any {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&randomuser.Params{})

	raw, err := json.Marshal(schema)
	if err != nil {
		log.Error("failed to render parameter schema", "error", err)
		return map[string]any{}
	}

	var flat struct {
		Properties map[string]any `json:"properties"`
	}
	if err := json.Unmarshal(raw, &flat); err != nil {
		log.Error("failed to render parameter schema", "error", err)
		return map[string]any{}
	}
	return flat.Properties
}

// Handle returns the tool's definition.
func (t *RandomUserTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes one getUsers invocation: validate, build the query,
// dispatch once. Validation failures return an error so the protocol
// layer reports them as such; fetch failures are logged with their cause
// and flattened to the fixed message.
func (t *RandomUserTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := randomuser.ParseParams(request.Params.Arguments)
	if err != nil {
		return nil, err
	}

	callID := uuid.NewString()
	query := randomuser.BuildQuery(params)
	log.Debug("dispatching random user fetch", "call_id", callID, "query", query)

	doc, err := t.client.Fetch(ctx, query)
	if err != nil {
		log.Error("random user fetch failed", "call_id", callID, "error", err)
		return mcp.NewToolResultText(fetchErrorMessage), nil
	}

	return mcp.NewToolResultText(doc), nil
}
