package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"timesheet/billing"
	"timesheet/database"
	"timesheet/models"
)

// recomputeTotals overwrites the period's aggregated totals from the
// workdays currently in range. It is idempotent and is never triggered by
// workday writes; totals drift until the next explicit recomputation.
func recomputeTotals(tx *gorm.DB, engagement *models.Engagement, period *models.ReportingPeriod) error {
	inRange := func() *gorm.DB {
		return tx.Model(&models.WorkDay{}).Where(
			"engagement_id = ? AND date >= ? AND date <= ? AND status = ?",
			period.EngagementID, period.StartDate, period.EndDate, models.WorkDayWorked,
		)
	}

	var worked, billable int64
	if err := inRange().Count(&worked).Error; err != nil {
		return err
	}
	if err := inRange().Where("billable = ?", true).Count(&billable).Error; err != nil {
		return err
	}

	period.TotalWorkedDays = int(worked)
	period.TotalBillableDays = int(billable)
	period.AmountEstimated = engagement.DailyRate.Mul(decimal.NewFromInt(billable))
	return nil
}

type periodCreateRequest struct {
	EngagementID uint                `json:"engagement_id" validate:"required"`
	StartDate    models.Date         `json:"start_date"`
	EndDate      models.Date         `json:"end_date"`
	Status       models.PeriodStatus `json:"status" validate:"omitempty,oneof=draft ready submitted approved rejected invoiced"`
	ClientNotes  string              `json:"client_notes"`
}

func (h *Handler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req periodCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		writeError(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	var period models.ReportingPeriod
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var engagement models.Engagement
		if err := tx.First(&engagement, req.EngagementID).Error; err != nil {
			return err
		}

		period = models.ReportingPeriod{
			EngagementID: engagement.ID,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Status:       req.Status,
			ClientNotes:  req.ClientNotes,
		}
		if period.Status == "" {
			period.Status = models.PeriodDraft
		}
		if err := recomputeTotals(tx, &engagement, &period); err != nil {
			return err
		}
		return tx.Create(&period).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "engagement not found")
		} else {
			h.internalError(w, "create period", txErr)
		}
		return
	}
	writeJSON(w, http.StatusOK, period)
}

func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Model(&models.ReportingPeriod{})

	if raw := r.URL.Query().Get("engagement_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid engagement_id")
			return
		}
		query = query.Where("engagement_id = ?", uint(id))
	}

	var periods []models.ReportingPeriod
	if err := query.Order("start_date desc").Find(&periods).Error; err != nil {
		h.internalError(w, "list periods", err)
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

type periodTransitionRequest struct {
	Status          models.PeriodStatus `json:"status" validate:"required,oneof=draft ready submitted approved rejected invoiced"`
	Reason          string              `json:"reason"`
	AllowZeroPeriod bool                `json:"allow_zero_period"`
}

// TransitionPeriod moves a period to a new status. Totals are recomputed
// first so the submission guard sees fresh numbers; every successful
// transition writes one audit entry tagged with the new status.
func (h *Handler) TransitionPeriod(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period id")
		return
	}

	var req periodTransitionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	var period models.ReportingPeriod
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&period, id).Error; err != nil {
			return err
		}
		var engagement models.Engagement
		if err := tx.First(&engagement, period.EngagementID).Error; err != nil {
			return err
		}

		if err := recomputeTotals(tx, &engagement, &period); err != nil {
			return err
		}
		if err := billing.CheckTransition(period.Status, req.Status, period.TotalBillableDays, req.AllowZeroPeriod, req.Reason); err != nil {
			return err
		}

		usedZeroOverride := req.Status == models.PeriodSubmitted && period.TotalBillableDays == 0 && req.AllowZeroPeriod

		period.Status = req.Status
		if err := tx.Save(&period).Error; err != nil {
			return err
		}
		if usedZeroOverride {
			if err := tx.Create(&models.AuditLog{
				EntityType: models.AuditPeriod,
				EntityID:   period.ID,
				Event:      "submit_zero_override",
				Reason:     req.Reason,
			}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&models.AuditLog{
			EntityType: models.AuditPeriod,
			EntityID:   period.ID,
			Event:      "status_" + string(req.Status),
			Reason:     req.Reason,
		}).Error
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "period not found")
		case errors.Is(txErr, billing.ErrZeroPeriodSubmission), errors.Is(txErr, billing.ErrReopenWithoutReason):
			writeError(w, http.StatusBadRequest, txErr.Error())
		default:
			h.internalError(w, "transition period", txErr)
		}
		return
	}
	writeJSON(w, http.StatusOK, period)
}

type generatePeriodsResponse struct {
	Created int                      `json:"created"`
	Periods []models.ReportingPeriod `json:"periods"`
}

// GeneratePeriods creates the missing reporting periods of an engagement
// up to through_date. Generation resumes after the last existing period,
// so re-running with a later ceiling only appends.
func (h *Handler) GeneratePeriods(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid engagement id")
		return
	}
	through, err := models.ParseDate(r.URL.Query().Get("through_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "through_date is required (YYYY-MM-DD)")
		return
	}

	created := []models.ReportingPeriod{}
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var engagement models.Engagement
		if err := tx.First(&engagement, id).Error; err != nil {
			return err
		}

		cursor := engagement.StartDate
		var last models.ReportingPeriod
		err := tx.Where("engagement_id = ?", engagement.ID).Order("end_date desc").First(&last).Error
		switch {
		case err == nil:
			cursor = last.EndDate.AddDays(1)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First generation starts at the engagement start.
		default:
			return err
		}

		step := billing.StepMonths(engagement.ReportingFrequency)
		for _, window := range billing.GeneratePeriods(cursor, engagement.EndDate, through, engagement.ReportingAnchorDay, step) {
			period := models.ReportingPeriod{
				EngagementID: engagement.ID,
				StartDate:    window.Start,
				EndDate:      window.End,
				Status:       models.PeriodDraft,
			}
			if err := recomputeTotals(tx, &engagement, &period); err != nil {
				return err
			}
			if err := tx.Create(&period).Error; err != nil {
				return err
			}
			created = append(created, period)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "engagement not found")
		} else {
			h.internalError(w, "generate periods", txErr)
		}
		return
	}
	writeJSON(w, http.StatusOK, generatePeriodsResponse{Created: len(created), Periods: created})
}
