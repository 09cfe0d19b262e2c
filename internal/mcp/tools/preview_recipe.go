package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

type PreviewService interface {
	Preview(ctx context.Context, url string) (recipe.Thermomix, error)
}

type PreviewRecipeHandler struct {
	Service PreviewService
}

func (h *PreviewRecipeHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, _ := req.GetArguments()["url"].(string)
	if url == "" {
		return mcp.NewToolResultError("url parameter is required"), nil
	}

	converted, err := h.Service.Preview(ctx, url)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Unable to read the recipe from %s\nError: %v", url, err)), nil
	}
	return mcp.NewToolResultText(formatPreview(converted)), nil
}
