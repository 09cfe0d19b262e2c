package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/history"
)

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]history.ImportRecord, error)
}

type ListImportsHandler struct {
	Service HistoryService
}

func (h *ListImportsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 10
	if raw, ok := req.GetArguments()["limit"].(float64); ok && int(raw) > 0 {
		limit = int(raw)
	}

	records, err := h.Service.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	response := struct {
		Imports []history.ImportRecord `json:"imports"`
		Total   int                    `json:"total"`
	}{Imports: records, Total: len(records)}

	payload, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
