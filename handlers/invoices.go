package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"timesheet/billing"
	"timesheet/database"
	"timesheet/models"
)

var (
	errPeriodMismatch   = errors.New("period does not belong to the engagement")
	errPeriodNotInvoice = errors.New("period is not approved; provide override_reason to invoice anyway")
)

type invoiceCreateRequest struct {
	EngagementID    uint                   `json:"engagement_id" validate:"required"`
	PeriodID        uint                   `json:"period_id" validate:"required"`
	InvoiceNumber   string                 `json:"invoice_number" validate:"required"`
	InvoiceDate     models.Date            `json:"invoice_date"`
	Amount          decimal.Decimal        `json:"amount"`
	Currency        string                 `json:"currency" validate:"omitempty,len=3"`
	PaymentTermType models.PaymentTermType `json:"payment_term_type" validate:"omitempty,oneof=DF DFFM"`
	PaymentTermDays *int                   `json:"payment_term_days" validate:"omitempty,min=0,max=365"`
	Notes           string                 `json:"notes"`
	OverrideReason  string                 `json:"override_reason"`
}

// CreateInvoice issues an invoice against an approved period. A non-empty
// override_reason bypasses the approval gate and is recorded in the audit
// trail. The period is forced to invoiced either way.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.InvoiceDate.IsZero() {
		writeError(w, http.StatusBadRequest, "invoice_date is required")
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	termType := req.PaymentTermType
	if termType == "" {
		termType = models.TermDaysFromInvoice
	}
	termDays := 30
	if req.PaymentTermDays != nil {
		termDays = *req.PaymentTermDays
	}
	overrideReason := strings.TrimSpace(req.OverrideReason)

	var invoice models.Invoice
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var engagement models.Engagement
		if err := tx.First(&engagement, req.EngagementID).Error; err != nil {
			return err
		}
		var period models.ReportingPeriod
		if err := tx.First(&period, req.PeriodID).Error; err != nil {
			return err
		}
		if period.EngagementID != engagement.ID {
			return errPeriodMismatch
		}
		if period.Status != models.PeriodApproved && overrideReason == "" {
			return errPeriodNotInvoice
		}

		invoice = models.Invoice{
			EngagementID:    engagement.ID,
			PeriodID:        period.ID,
			InvoiceNumber:   req.InvoiceNumber,
			InvoiceDate:     req.InvoiceDate,
			Amount:          req.Amount,
			Currency:        defaultString(req.Currency, "EUR"),
			PaymentTermType: termType,
			PaymentTermDays: termDays,
			ComputedDueDate: billing.DueDate(req.InvoiceDate, termType, termDays),
			Status:          models.InvoicePrepared,
			Notes:           req.Notes,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		period.Status = models.PeriodInvoiced
		if err := tx.Save(&period).Error; err != nil {
			return err
		}

		entries := []models.AuditLog{
			{EntityType: models.AuditInvoice, EntityID: invoice.ID, Event: "created", Reason: overrideReason},
			{EntityType: models.AuditPeriod, EntityID: period.ID, Event: "status_invoiced", Reason: overrideReason},
		}
		if overrideReason != "" {
			entries = append(entries, models.AuditLog{
				EntityType: models.AuditInvoice,
				EntityID:   invoice.ID,
				Event:      "override_used",
				Reason:     overrideReason,
			})
		}
		return tx.Create(&entries).Error
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "engagement or period not found")
		case errors.Is(txErr, errPeriodMismatch), errors.Is(txErr, errPeriodNotInvoice):
			writeError(w, http.StatusBadRequest, txErr.Error())
		default:
			h.internalError(w, "create invoice", txErr)
		}
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Model(&models.Invoice{})

	if raw := r.URL.Query().Get("engagement_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid engagement_id")
			return
		}
		query = query.Where("engagement_id = ?", uint(id))
	}

	var invoices []models.Invoice
	if err := query.Order("id desc").Find(&invoices).Error; err != nil {
		h.internalError(w, "list invoices", err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}
