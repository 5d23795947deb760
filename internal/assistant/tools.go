package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

type UserDayInput struct {
	UserID uint   `json:"user_id" jsonschema:"the user whose logs are analysed"`
	Date   string `json:"date,omitempty" jsonschema:"reference day as YYYY-MM-DD, defaults to today"`
}

type periodPrediction struct {
	ReferenceDate string                  `json:"reference_date"`
	Prediction    *services.Prediction    `json:"prediction"`
	LateStatus    *services.LateStatus    `json:"late_status"`
	FertileWindow *services.FertileWindow `json:"fertile_window"`
	Phase         services.CyclePhase     `json:"phase"`
}

func (server *Server) handleCycleContext(ctx context.Context, _ *mcp.CallToolRequest, input UserDayInput) (*mcp.CallToolResult, any, error) {
	insights, err := server.loadInsights(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	return textResult(services.FormatInsightsContext(insights)), nil, nil
}

func (server *Server) handlePeriodPrediction(ctx context.Context, _ *mcp.CallToolRequest, input UserDayInput) (*mcp.CallToolResult, any, error) {
	insights, err := server.loadInsights(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(periodPrediction{
		ReferenceDate: services.FormatDay(insights.ReferenceDate),
		Prediction:    insights.Prediction,
		LateStatus:    insights.LateStatus,
		FertileWindow: insights.FertileWindow,
		Phase:         insights.Phase,
	})
}

func (server *Server) handleCycleInsights(ctx context.Context, _ *mcp.CallToolRequest, input UserDayInput) (*mcp.CallToolResult, any, error) {
	insights, err := server.loadInsights(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(insights)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func jsonResult(value any) (*mcp.CallToolResult, any, error) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode tool result: %w", err)
	}
	return textResult(string(payload)), nil, nil
}
