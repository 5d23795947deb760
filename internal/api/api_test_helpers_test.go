package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/ovumcy-insights/internal/db"
	"github.com/terraincognita07/ovumcy-insights/internal/i18n"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

const testSecretKey = "test-secret-key-with-at-least-32-characters"

var testNow = time.Date(2024, time.April, 5, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "insights.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	manager, err := i18n.NewEmbeddedManager(i18n.LangEN)
	require.NoError(t, err)

	serviceSet := NewServiceSet(db.NewRepositories(database), services.DefaultInsightOptions(), 0)
	handler, err := NewHandler(HandlerConfig{
		Logs:      serviceSet.Logs,
		Settings:  serviceSet.Settings,
		Insights:  serviceSet.Insights,
		I18n:      manager,
		Location:  time.UTC,
		SecretKey: testSecretKey,
	})
	require.NoError(t, err)
	handler.now = func() time.Time { return testNow }

	return NewApp(handler, AppOptions{})
}

func tokenFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := IssueToken([]byte(testSecretKey), userID, time.Hour, time.Now())
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, token string, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, payload
}

func decodeJSON(t *testing.T, payload []byte, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(payload, target), string(payload))
}

func createPeriodLog(t *testing.T, app *fiber.App, token string, date string) string {
	t.Helper()
	status, payload := doRequest(t, app, fiber.MethodPost, "/api/logs", token,
		`{"date":"`+date+`","log_type":"period","flow_intensity":"medium"}`)
	require.Equal(t, fiber.StatusCreated, status, string(payload))

	created := struct {
		ID string `json:"id"`
	}{}
	decodeJSON(t, payload, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}
