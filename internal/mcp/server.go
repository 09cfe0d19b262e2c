package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/history"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
)

const serverInstructions = "This server lets you import any recipe from a web link " +
	"and automatically convert it into a Thermomix recipe on your Cookidoo account. " +
	"Just send a recipe link!\n\n" +
	"Supports recipes in French and English. " +
	"Set COOKIDOO_COUNTRY and COOKIDOO_LANGUAGE env vars to configure your locale " +
	"(defaults: fr / fr-FR).\n\n" +
	"IMPORTANT: When displaying ingredients, format them like Cookidoo does:\n" +
	"- FR: quantity + unit + 'de/d'' + name (e.g. '200 g de farine', '20 g d'huile')\n" +
	"- EN: quantity + unit + name (e.g. '200 g flour', '1 tbsp olive oil')\n" +
	"- If a range is available, show both (e.g. '200 - 500 g flour')"

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	History *history.Store
	Log     logging.Logger
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"cookidoo-thermomix",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)

	toolDefinitions := map[string]mcp.Tool{
		"import_recipe": mcp.NewTool("import_recipe",
			mcp.WithDescription("Import a recipe from a web link, convert it to a Thermomix recipe, and save it to the Cookidoo account. Returns a confirmation with the Cookidoo recipe link."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The recipe link to import (e.g. https://www.marmiton.org/recettes/...)"),
			),
		),
		"preview_recipe": mcp.NewTool("preview_recipe",
			mcp.WithDescription("Preview a recipe from a web link converted to Thermomix format WITHOUT saving it to Cookidoo."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The recipe link to preview"),
			),
		),
		"list_imports": mcp.NewTool("list_imports",
			mcp.WithDescription("List the most recently imported recipes: title, source link, Cookidoo link, and import time."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of imports to return (default: 10)"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		History: cfg.History,
		Log:     cfg.Logger,
	}
}

// ServeStdio runs the server over stdin/stdout, the transport Claude Desktop
// launches MCP servers with.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}

func (s *Server) Close() {
	if s.History != nil {
		if err := s.History.Close(); err != nil {
			s.Log.Error(err, "error closing history store")
		}
	}
}
