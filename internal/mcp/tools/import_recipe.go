package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/mcp/tools/types"
)

type ImportService interface {
	Import(ctx context.Context, url string) (types.ImportOutcome, error)
}

type ImportRecipeHandler struct {
	Service ImportService
}

func (h *ImportRecipeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, _ := req.GetArguments()["url"].(string)
	if url == "" {
		return mcp.NewToolResultError("url parameter is required"), nil
	}

	outcome, err := h.Service.Import(ctx, url)
	switch {
	case err == nil:
		return mcp.NewToolResultText(formatImportSummary(outcome.Recipe, outcome.Upload)), nil
	case errors.Is(err, cookidoo.ErrMissingCredentials):
		return mcp.NewToolResultText(formatMissingCredentials()), nil
	case errors.Is(err, ErrConnect):
		return mcp.NewToolResultText(err.Error()), nil
	case outcome.Recipe.Name != "":
		// Scrape and conversion succeeded, the account write did not.
		return mcp.NewToolResultText(formatUploadFailure(outcome.Recipe.Name, err)), nil
	default:
		return mcp.NewToolResultText(formatScrapeFailure(url, err)), nil
	}
}
