package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTermType selects how an invoice due date is computed.
type PaymentTermType string

const (
	// TermDaysFromInvoice: due = invoice date + term days.
	TermDaysFromInvoice PaymentTermType = "DF"
	// TermDaysFromMonthEnd: due = last day of the invoice month + term days.
	TermDaysFromMonthEnd PaymentTermType = "DFFM"
)

func (t PaymentTermType) Valid() bool {
	switch t {
	case TermDaysFromInvoice, TermDaysFromMonthEnd:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoicePrepared InvoiceStatus = "prepared"
	InvoiceSent     InvoiceStatus = "sent"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceOverdue  InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePrepared, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice is issued against exactly one reporting period and is immutable
// after creation. Only "prepared" is ever written by this service.
type Invoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	EngagementID    uint            `gorm:"not null;index" json:"engagement_id"`
	Engagement      Engagement      `gorm:"foreignKey:EngagementID" json:"-"`
	PeriodID        uint            `gorm:"not null;index" json:"period_id"`
	Period          ReportingPeriod `gorm:"foreignKey:PeriodID" json:"-"`
	InvoiceNumber   string          `gorm:"not null;size:100" json:"invoice_number"`
	InvoiceDate     Date            `gorm:"not null;type:date" json:"invoice_date"`
	Amount          decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"amount"`
	Currency        string          `gorm:"not null;size:3" json:"currency"`
	PaymentTermType PaymentTermType `gorm:"not null;size:10" json:"payment_term_type"`
	PaymentTermDays int             `gorm:"not null" json:"payment_term_days"`
	ComputedDueDate Date            `gorm:"not null;type:date" json:"computed_due_date"`
	Status          InvoiceStatus   `gorm:"not null;size:20" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
}
