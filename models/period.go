package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PeriodStatus string

const (
	PeriodDraft     PeriodStatus = "draft"
	PeriodReady     PeriodStatus = "ready"
	PeriodSubmitted PeriodStatus = "submitted"
	PeriodApproved  PeriodStatus = "approved"
	PeriodRejected  PeriodStatus = "rejected"
	PeriodInvoiced  PeriodStatus = "invoiced"
)

func (s PeriodStatus) Valid() bool {
	switch s {
	case PeriodDraft, PeriodReady, PeriodSubmitted, PeriodApproved, PeriodRejected, PeriodInvoiced:
		return true
	}
	return false
}

// ReportingPeriod is a contiguous date range within an engagement used for
// billing. Totals are snapshots recomputed on demand; they can go stale if
// workdays change after computation.
type ReportingPeriod struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	EngagementID      uint            `gorm:"not null;index" json:"engagement_id"`
	Engagement        Engagement      `gorm:"foreignKey:EngagementID" json:"-"`
	StartDate         Date            `gorm:"not null;type:date" json:"start_date"`
	EndDate           Date            `gorm:"not null;type:date" json:"end_date"`
	Status            PeriodStatus    `gorm:"not null;size:20" json:"status"`
	TotalWorkedDays   int             `json:"total_worked_days"`
	TotalBillableDays int             `json:"total_billable_days"`
	AmountEstimated   decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_estimated"`
	ClientNotes       string          `gorm:"type:text" json:"client_notes,omitempty"`
}
