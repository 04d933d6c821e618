package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"timesheet/database"
	"timesheet/models"
)

// setupRouter points the global database handle at a fresh in-memory
// SQLite database and returns a fully wired router.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Set(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(New(logger), []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

// createTestEngagement posts a baseline engagement, with overrides merged
// into the default payload.
func createTestEngagement(t *testing.T, router http.Handler, overrides map[string]any) models.Engagement {
	t.Helper()

	payload := map[string]any{
		"title":                "Consulenza PMO",
		"subject":              "Supporto governance",
		"client_name":          "ACME SPA",
		"start_date":           "2026-01-01",
		"end_date":             "2026-12-31",
		"daily_rate":           500,
		"reporting_frequency":  "monthly",
		"reporting_anchor_day": 1,
	}
	for key, value := range overrides {
		payload[key] = value
	}

	rec := doJSON(t, router, http.MethodPost, "/engagements", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var engagement models.Engagement
	decodeBody(t, rec, &engagement)
	return engagement
}

func createTestWorkDay(t *testing.T, router http.Handler, engagementID uint, date string, overrides map[string]any) models.WorkDay {
	t.Helper()

	payload := map[string]any{
		"engagement_id": engagementID,
		"date":          date,
		"status":        "worked",
		"billable":      true,
	}
	for key, value := range overrides {
		payload[key] = value
	}

	rec := doJSON(t, router, http.MethodPost, "/workdays", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var workday models.WorkDay
	decodeBody(t, rec, &workday)
	return workday
}
