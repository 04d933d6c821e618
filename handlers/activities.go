package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"timesheet/database"
	"timesheet/models"
)

type activityCreateRequest struct {
	WorkDayID       uint   `json:"workday_id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Tags            string `json:"tags"`
	IncludeInExport *bool  `json:"include_in_export"`
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	db := database.GetDB()
	var workday models.WorkDay
	if err := db.First(&workday, req.WorkDayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "workday not found")
		} else {
			h.internalError(w, "load workday", err)
		}
		return
	}

	includeInExport := true
	if req.IncludeInExport != nil {
		includeInExport = *req.IncludeInExport
	}

	activity := models.Activity{
		WorkDayID:       workday.ID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Tags:            req.Tags,
		IncludeInExport: includeInExport,
	}
	if err := db.Create(&activity).Error; err != nil {
		h.internalError(w, "create activity", err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Model(&models.Activity{})

	if raw := r.URL.Query().Get("workday_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid workday_id")
			return
		}
		query = query.Where("work_day_id = ?", uint(id))
	}

	var activities []models.Activity
	if err := query.Order("id asc").Find(&activities).Error; err != nil {
		h.internalError(w, "list activities", err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
