package handlers

import (
	"net/http"
	"strconv"

	"timesheet/billing"
)

// ListHolidays serves the fixed holiday catalog for a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	writeJSON(w, http.StatusOK, billing.HolidaysForYear(year))
}
