// Command server is the entry point for the Random User MCP server.
package main

import (
	stdlog "log"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hugo-85/mcp-randomuserme/core"
	"github.com/hugo-85/mcp-randomuserme/pkg/config"
	"github.com/hugo-85/mcp-randomuserme/pkg/randomuser"
	"github.com/hugo-85/mcp-randomuserme/pkg/tools/users"
)

func main() {
	// mcp-go logs through the standard library logger
	stdlog.SetFlags(stdlog.LstdFlags | stdlog.Lshortfile)
	stdlog.SetOutput(&logWriter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	mcpServer := server.NewMCPServer(
		"Random User MCP Server",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
	)

	registry := NewToolRegistry(mcpServer)

	client := randomuser.NewClient(cfg.RandomUser.Timeout).WithBaseURL(cfg.RandomUser.BaseURL)
	registry.RegisterTool("users", users.New(client))
	mcpServer.AddPrompt(users.ParameterPrompt(), users.HandleParameterPrompt)

	log.Info("server started, waiting for requests")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("server error", "error", err)
	}
}

// ToolRegistry manages tool registration with the server.
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// RegisterTool registers a tool with the server.
func (r *ToolRegistry) RegisterTool(name string, tool core.Tool) {
	r.tools[name] = tool
	r.server.AddTool(tool.Handle(), tool.Handler)
}

// logWriter filters log messages
type logWriter struct{}

// Write implements io.Writer and drops known protocol noise
func (w *logWriter) Write(bytes []byte) (int, error) {
	if strings.Contains(string(bytes), "Prompts not supported") {
		return len(bytes), nil
	}
	return os.Stderr.Write(bytes)
}
