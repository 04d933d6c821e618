package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"timesheet/billing"
	"timesheet/database"
	"timesheet/models"
)

type workDayCreateRequest struct {
	EngagementID uint                 `json:"engagement_id" validate:"required"`
	Date         models.Date          `json:"date"`
	Status       models.WorkDayStatus `json:"status" validate:"omitempty,oneof=worked non-worked blocked holiday weekend"`
	Billable     *bool                `json:"billable"`
	InternalNote string               `json:"internal_note"`
	Location     string               `json:"location"`
}

// CreateWorkDay admits a new workday after the engagement's eligibility
// rules pass. The billable-cap check is check-then-insert within one
// transaction; concurrent requests can still race past the cap.
func (h *Handler) CreateWorkDay(w http.ResponseWriter, r *http.Request) {
	var req workDayCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	status := req.Status
	if status == "" {
		status = models.WorkDayWorked
	}
	billable := true
	if req.Billable != nil {
		billable = *req.Billable
	}

	var workday models.WorkDay
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var engagement models.Engagement
		if err := tx.First(&engagement, req.EngagementID).Error; err != nil {
			return err
		}

		var billableCount int64
		if engagement.MaxBillableDays != nil && billable {
			if err := tx.Model(&models.WorkDay{}).
				Where("engagement_id = ? AND billable = ?", engagement.ID, true).
				Count(&billableCount).Error; err != nil {
				return err
			}
		}
		if err := billing.CheckWorkDayAdmission(&engagement, req.Date, status, billable, billableCount); err != nil {
			return err
		}

		workday = models.WorkDay{
			EngagementID: engagement.ID,
			Date:         req.Date,
			Status:       status,
			Billable:     billable,
			InternalNote: req.InternalNote,
			Location:     req.Location,
		}
		return tx.Create(&workday).Error
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "engagement not found")
		case errors.Is(txErr, billing.ErrWeekendBlocked), errors.Is(txErr, billing.ErrMaxBillableDays):
			writeError(w, http.StatusBadRequest, txErr.Error())
		default:
			h.internalError(w, "create workday", txErr)
		}
		return
	}
	writeJSON(w, http.StatusOK, workday)
}

func (h *Handler) ListWorkDays(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Model(&models.WorkDay{})

	if raw := r.URL.Query().Get("engagement_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid engagement_id")
			return
		}
		query = query.Where("engagement_id = ?", uint(id))
	}
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
		h.internalError(w, "list workdays", err)
		return
	}
	writeJSON(w, http.StatusOK, workdays)
}
