package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"timesheet/database"
	"timesheet/models"
)

// ExportWorkDaysCSV streams an engagement's workdays as CSV, one row per
// workday with its exportable activities joined. Activities flagged
// include_in_export=false are left out.
func (h *Handler) ExportWorkDaysCSV(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid engagement id")
		return
	}

	db := database.GetDB()
	engagement, ok := h.findEngagement(w, db, id)
	if !ok {
		return
	}

	query := db.Preload("Activities").Where("engagement_id = ?", engagement.ID)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		start, err := models.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		query = query.Where("date >= ?", start)
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		end, err := models.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date")
			return
		}
		query = query.Where("date <= ?", end)
	}

	var workdays []models.WorkDay
	if err := query.Order("date asc").Find(&workdays).Error; err != nil {
		h.internalError(w, "export workdays", err)
		return
	}

	filename := fmt.Sprintf("engagement_%d_workdays.csv", engagement.ID)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Status", "Billable", "Location", "Activities", "Note"})

	for _, workday := range workdays {
		var titles []string
		for _, activity := range workday.Activities {
			if activity.IncludeInExport {
				titles = append(titles, activity.Title)
			}
		}
		writer.Write([]string{
			workday.Date.String(),
			string(workday.Status),
			fmt.Sprintf("%t", workday.Billable),
			workday.Location,
			strings.Join(titles, "; "),
			workday.InternalNote,
		})
	}
}
