package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWorkDaysCSV(t *testing.T) {
	router := setupRouter(t)
	engagement := createTestEngagement(t, router, map[string]any{"weekend_allowed": true})
	workday := createTestWorkDay(t, router, engagement.ID, "2026-01-05", map[string]any{"location": "Milano"})
	createTestWorkDay(t, router, engagement.ID, "2026-02-02", nil)

	rec := doJSON(t, router, http.MethodPost, "/activities", map[string]any{
		"workday_id": workday.ID,
		"title":      "Riunione avanzamento",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/activities", map[string]any{
		"workday_id":        workday.ID,
		"title":             "Nota interna",
		"include_in_export": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/engagements/1/export/csv", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "engagement_1_workdays.csv")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Status", "Billable", "Location", "Activities", "Note"}, rows[0])
	assert.Equal(t, "2026-01-05", rows[1][0])
	assert.Equal(t, "Milano", rows[1][3])
	assert.Contains(t, rows[1][4], "Riunione avanzamento")
	assert.NotContains(t, rows[1][4], "Nota interna")

	// Date-range filter.
	rec = doJSON(t, router, http.MethodGet, "/engagements/1/export/csv?start_date=2026-02-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows, err = csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-02-02", rows[1][0])
}

func TestExportWorkDaysCSVUnknownEngagement(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/engagements/5/export/csv", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
