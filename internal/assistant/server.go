package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

const serverName = "ovumcy-insights"

var (
	ErrUserRequired = errors.New("user_id is required")
	ErrInvalidDate  = errors.New("date must be a YYYY-MM-DD date")
)

// InsightsSource is the slice of the insights service the tools read from.
type InsightsSource interface {
	BuildForUser(ctx context.Context, userID uint, today time.Time) (services.CycleInsights, error)
}

// Server exposes the insight pipeline as MCP tools so an assistant can ground
// its answers in the user's own cycle history.
type Server struct {
	insights InsightsSource
	location *time.Location
	now      func() time.Time
	mcp      *mcp.Server
}

func NewServer(insights InsightsSource, location *time.Location, version string) *Server {
	if location == nil {
		location = time.UTC
	}
	if version == "" {
		version = "dev"
	}

	server := &Server{
		insights: insights,
		location: location,
		now:      time.Now,
		mcp:      mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
	}
	server.registerTools()
	return server
}

// Run serves the tools over stdin/stdout until ctx is cancelled or the client
// disconnects.
func (server *Server) Run(ctx context.Context) error {
	log.Info().Str("transport", "stdio").Msg("assistant server starting")
	return server.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (server *Server) registerTools() {
	mcp.AddTool(server.mcp, &mcp.Tool{
		Name:        "get_cycle_context",
		Description: "Summarize a user's cycle history, prediction, late status, symptom patterns and lifestyle as plain text for conversational answers.",
	}, server.handleCycleContext)

	mcp.AddTool(server.mcp, &mcp.Tool{
		Name:        "get_period_prediction",
		Description: "Return the next-period prediction with its range and confidence, the late-period status and the estimated fertile window as JSON.",
	}, server.handlePeriodPrediction)

	mcp.AddTool(server.mcp, &mcp.Tool{
		Name:        "get_cycle_insights",
		Description: "Return the full insight bundle for a user as JSON: cycles, statistics, prediction, irregularity, symptom patterns, phase and lifestyle.",
	}, server.handleCycleInsights)
}

func (server *Server) resolveReferenceDay(raw string) (time.Time, error) {
	if raw == "" {
		return services.DateAtLocation(server.now(), server.location), nil
	}
	day, err := services.ParseDay(raw, server.location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func (server *Server) loadInsights(ctx context.Context, input UserDayInput) (services.CycleInsights, error) {
	if input.UserID == 0 {
		return services.CycleInsights{}, ErrUserRequired
	}
	today, err := server.resolveReferenceDay(input.Date)
	if err != nil {
		return services.CycleInsights{}, err
	}

	insights, err := server.insights.BuildForUser(ctx, input.UserID, today)
	if err != nil {
		log.Error().Err(err).Uint("user_id", input.UserID).Msg("assistant insights failed")
		return services.CycleInsights{}, err
	}
	return insights, nil
}
