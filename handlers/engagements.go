package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"timesheet/database"
	"timesheet/models"
)

type engagementCreateRequest struct {
	Title              string                    `json:"title" validate:"required"`
	Subject            string                    `json:"subject"`
	ClientName         string                    `json:"client_name" validate:"required"`
	StartDate          models.Date               `json:"start_date"`
	EndDate            models.Date               `json:"end_date"`
	WeekendAllowed     bool                      `json:"weekend_allowed"`
	HolidaysAllowed    bool                      `json:"holidays_allowed"`
	MaxBillableDays    *int                      `json:"max_billable_days" validate:"omitempty,min=0"`
	DailyRate          decimal.Decimal           `json:"daily_rate"`
	Currency           string                    `json:"currency" validate:"omitempty,len=3"`
	ReportingFrequency models.ReportingFrequency `json:"reporting_frequency" validate:"omitempty,oneof=monthly bimonthly quarterly custom"`
	ReportingAnchorDay int                       `json:"reporting_anchor_day" validate:"omitempty,min=1,max=28"`
	Status             models.EngagementStatus   `json:"status" validate:"omitempty,oneof=active closed suspended"`
}

func (h *Handler) CreateEngagement(w http.ResponseWriter, r *http.Request) {
	var req engagementCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		writeError(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	if !req.DailyRate.IsPositive() {
		writeError(w, http.StatusBadRequest, "daily_rate must be positive")
		return
	}

	engagement := models.Engagement{
		Title:              req.Title,
		Subject:            req.Subject,
		ClientName:         req.ClientName,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		WeekendAllowed:     req.WeekendAllowed,
		HolidaysAllowed:    req.HolidaysAllowed,
		MaxBillableDays:    req.MaxBillableDays,
		DailyRate:          req.DailyRate,
		Currency:           defaultString(req.Currency, "EUR"),
		ReportingFrequency: req.ReportingFrequency,
		ReportingAnchorDay: req.ReportingAnchorDay,
		Status:             req.Status,
	}
	if engagement.ReportingFrequency == "" {
		engagement.ReportingFrequency = models.FrequencyMonthly
	}
	if engagement.ReportingAnchorDay == 0 {
		engagement.ReportingAnchorDay = 1
	}
	if engagement.Status == "" {
		engagement.Status = models.EngagementActive
	}

	if err := database.GetDB().Create(&engagement).Error; err != nil {
		h.internalError(w, "create engagement", err)
		return
	}
	writeJSON(w, http.StatusOK, engagement)
}

func (h *Handler) ListEngagements(w http.ResponseWriter, r *http.Request) {
	var engagements []models.Engagement
	if err := database.GetDB().Order("id desc").Find(&engagements).Error; err != nil {
		h.internalError(w, "list engagements", err)
		return
	}
	writeJSON(w, http.StatusOK, engagements)
}

type engagementUpdateRequest struct {
	Title              *string                  `json:"title"`
	Subject            *string                  `json:"subject"`
	ClientName         *string                  `json:"client_name"`
	EndDate            *models.Date             `json:"end_date"`
	WeekendAllowed     *bool                    `json:"weekend_allowed"`
	HolidaysAllowed    *bool                    `json:"holidays_allowed"`
	MaxBillableDays    *int                     `json:"max_billable_days" validate:"omitempty,min=0"`
	DailyRate          *decimal.Decimal         `json:"daily_rate"`
	ReportingAnchorDay *int                     `json:"reporting_anchor_day" validate:"omitempty,min=1,max=28"`
	Status             *models.EngagementStatus `json:"status" validate:"omitempty,oneof=active closed suspended"`
}

// UpdateEngagement partially updates the mutable engagement fields; nil
// request fields are left untouched.
func (h *Handler) UpdateEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid engagement id")
		return
	}

	var req engagementUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.DailyRate != nil && !req.DailyRate.IsPositive() {
		writeError(w, http.StatusBadRequest, "daily_rate must be positive")
		return
	}

	db := database.GetDB()
	engagement, ok := h.findEngagement(w, db, id)
	if !ok {
		return
	}

	if req.Title != nil {
		engagement.Title = *req.Title
	}
	if req.Subject != nil {
		engagement.Subject = *req.Subject
	}
	if req.ClientName != nil {
		engagement.ClientName = *req.ClientName
	}
	if req.EndDate != nil {
		engagement.EndDate = *req.EndDate
	}
	if req.WeekendAllowed != nil {
		engagement.WeekendAllowed = *req.WeekendAllowed
	}
	if req.HolidaysAllowed != nil {
		engagement.HolidaysAllowed = *req.HolidaysAllowed
	}
	if req.MaxBillableDays != nil {
		engagement.MaxBillableDays = req.MaxBillableDays
	}
	if req.DailyRate != nil {
		engagement.DailyRate = *req.DailyRate
	}
	if req.ReportingAnchorDay != nil {
		engagement.ReportingAnchorDay = *req.ReportingAnchorDay
	}
	if req.Status != nil {
		engagement.Status = *req.Status
	}

	if err := db.Save(engagement).Error; err != nil {
		h.internalError(w, "update engagement", err)
		return
	}
	writeJSON(w, http.StatusOK, engagement)
}

// DeleteEngagement removes an engagement and everything it owns in one
// transaction. The cascade is explicit: activities, workdays, periods and
// invoices go with it. Audit entries stay (append-only).
func (h *Handler) DeleteEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid engagement id")
		return
	}

	db := database.GetDB()
	if _, ok := h.findEngagement(w, db, id); !ok {
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		workdayIDs := tx.Model(&models.WorkDay{}).Select("id").Where("engagement_id = ?", id)
		if err := tx.Where("work_day_id IN (?)", workdayIDs).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("engagement_id = ?", id).Delete(&models.WorkDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("engagement_id = ?", id).Delete(&models.ReportingPeriod{}).Error; err != nil {
			return err
		}
		if err := tx.Where("engagement_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Engagement{}, id).Error; err != nil {
			return err
		}
		return tx.Create(&models.AuditLog{
			EntityType: models.AuditEngagement,
			EntityID:   id,
			Event:      "deleted",
		}).Error
	})
	if err != nil {
		h.internalError(w, "delete engagement", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
