package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

type insightsSourceStub struct {
	logs     []models.LogEntry
	err      error
	lastUser uint
	lastDay  time.Time
}

func (stub *insightsSourceStub) BuildForUser(_ context.Context, userID uint, today time.Time) (services.CycleInsights, error) {
	stub.lastUser = userID
	stub.lastDay = today
	if stub.err != nil {
		return services.CycleInsights{}, stub.err
	}
	return services.BuildInsights(stub.logs, nil, today, services.DefaultInsightOptions()), nil
}

func periodLogs(t *testing.T, dates ...string) []models.LogEntry {
	t.Helper()
	logs := make([]models.LogEntry, 0, len(dates))
	for _, raw := range dates {
		day, err := services.ParseDay(raw, time.UTC)
		require.NoError(t, err)
		logs = append(logs, models.LogEntry{Date: day, LogType: models.LogTypePeriod, FlowIntensity: models.FlowMedium})
	}
	return logs
}

func newTestServer(t *testing.T, source InsightsSource) *Server {
	t.Helper()
	server := NewServer(source, time.UTC, "test")
	server.now = func() time.Time { return time.Date(2024, time.April, 5, 22, 0, 0, 0, time.UTC) }
	return server
}

func connectClient(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcp.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })
	return clientSession
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestServerListsTools(t *testing.T) {
	session := connectClient(t, newTestServer(t, &insightsSourceStub{}))

	listed, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(listed.Tools))
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_cycle_context", "get_period_prediction", "get_cycle_insights"}, names)
}

func TestCycleContextToolOverTransport(t *testing.T) {
	source := &insightsSourceStub{logs: periodLogs(t, "2024-01-01", "2024-01-29", "2024-02-27")}
	session := connectClient(t, newTestServer(t, source))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_cycle_context",
		Arguments: map[string]any{"user_id": 7},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Next period predicted: 2024-03-27")
	assert.Equal(t, uint(7), source.lastUser)
	assert.Equal(t, "2024-04-05", services.FormatDay(source.lastDay))
}

func TestPeriodPredictionToolReturnsJSON(t *testing.T) {
	source := &insightsSourceStub{logs: periodLogs(t, "2024-01-01", "2024-01-29", "2024-02-27")}
	server := newTestServer(t, source)

	result, _, err := server.handlePeriodPrediction(context.Background(), nil, UserDayInput{UserID: 7, Date: "2024-03-20"})
	require.NoError(t, err)

	decoded := struct {
		ReferenceDate string `json:"reference_date"`
		Prediction    *struct {
			Confidence string `json:"confidence"`
		} `json:"prediction"`
		LateStatus    *json.RawMessage `json:"late_status"`
		FertileWindow *struct {
			Ovulation string `json:"ovulation"`
		} `json:"fertile_window"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	assert.Equal(t, "2024-03-20", decoded.ReferenceDate)
	require.NotNil(t, decoded.Prediction)
	assert.Equal(t, "medium", decoded.Prediction.Confidence)
	assert.Nil(t, decoded.LateStatus)
	assert.NotNil(t, decoded.FertileWindow)
}

func TestCycleInsightsToolWithoutHistory(t *testing.T) {
	server := newTestServer(t, &insightsSourceStub{})

	result, _, err := server.handleCycleInsights(context.Background(), nil, UserDayInput{UserID: 3})
	require.NoError(t, err)

	decoded := struct {
		Prediction *json.RawMessage `json:"prediction"`
		Phase      struct {
			Phase string `json:"phase"`
		} `json:"phase"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	assert.Nil(t, decoded.Prediction)
	assert.Equal(t, services.PhaseUnknown, decoded.Phase.Phase)
}

func TestToolInputErrors(t *testing.T) {
	sourceErr := errors.New("database unavailable")

	testCases := []struct {
		name   string
		source *insightsSourceStub
		input  UserDayInput
		want   error
	}{
		{name: "missing user", source: &insightsSourceStub{}, input: UserDayInput{}, want: ErrUserRequired},
		{name: "bad date", source: &insightsSourceStub{}, input: UserDayInput{UserID: 1, Date: "tomorrow"}, want: ErrInvalidDate},
		{name: "source failure", source: &insightsSourceStub{err: sourceErr}, input: UserDayInput{UserID: 1}, want: sourceErr},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := newTestServer(t, testCase.source)
			_, _, err := server.handleCycleContext(context.Background(), nil, testCase.input)
			assert.ErrorIs(t, err, testCase.want)
		})
	}
}
