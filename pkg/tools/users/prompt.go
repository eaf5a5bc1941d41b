package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hugo-85/mcp-randomuserme/pkg/randomuser"
)

// ParameterPrompt describes the getUsers parameter object for clients
// that want the full schema rather than the flat tool property list.
func ParameterPrompt() mcp.Prompt {
	return mcp.NewPrompt("random_user_parameters",
		mcp.WithPromptDescription("JSON schema of the getUsers parameter object"),
	)
}

func HandleParameterPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&randomuser.Params{})

	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render parameter schema: %w", err)
	}

	return mcp.NewGetPromptResult(
		"getUsers Parameter Reference",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				"assistant",
				mcp.NewTextContent(fmt.Sprintf("The getUsers tool accepts a parameter object with this schema:\n\n```json\n%s\n```\n\nAll fields are optional. Note that inc and exc are mutually exclusive in practice; the upstream behavior when both are given is unspecified.", raw)),
			),
		},
	), nil
}
