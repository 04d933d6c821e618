package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportingFrequency string

const (
	FrequencyMonthly   ReportingFrequency = "monthly"
	FrequencyBimonthly ReportingFrequency = "bimonthly"
	FrequencyQuarterly ReportingFrequency = "quarterly"
	FrequencyCustom    ReportingFrequency = "custom"
)

func (f ReportingFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBimonthly, FrequencyQuarterly, FrequencyCustom:
		return true
	}
	return false
}

type EngagementStatus string

const (
	EngagementActive    EngagementStatus = "active"
	EngagementClosed    EngagementStatus = "closed"
	EngagementSuspended EngagementStatus = "suspended"
)

func (s EngagementStatus) Valid() bool {
	switch s {
	case EngagementActive, EngagementClosed, EngagementSuspended:
		return true
	}
	return false
}

// Engagement is a billable client contract. It owns workdays, reporting
// periods and invoices by foreign key; cascade deletion is an explicit
// application-level operation, not an ORM constraint.
type Engagement struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	Title              string             `gorm:"not null;size:255" json:"title"`
	Subject            string             `gorm:"type:text" json:"subject,omitempty"`
	ClientName         string             `gorm:"not null;size:255" json:"client_name"`
	StartDate          Date               `gorm:"not null;type:date" json:"start_date"`
	EndDate            Date               `gorm:"not null;type:date" json:"end_date"`
	WeekendAllowed     bool               `json:"weekend_allowed"`
	HolidaysAllowed    bool               `json:"holidays_allowed"`
	MaxBillableDays    *int               `json:"max_billable_days"`
	DailyRate          decimal.Decimal    `gorm:"not null;type:decimal(12,2)" json:"daily_rate"`
	Currency           string             `gorm:"not null;size:3" json:"currency"`
	ReportingFrequency ReportingFrequency `gorm:"not null;size:20" json:"reporting_frequency"`
	ReportingAnchorDay int                `gorm:"not null" json:"reporting_anchor_day"`
	Status             EngagementStatus   `gorm:"not null;size:20" json:"status"`

	WorkDays []WorkDay         `gorm:"foreignKey:EngagementID" json:"workdays,omitempty"`
	Periods  []ReportingPeriod `gorm:"foreignKey:EngagementID" json:"periods,omitempty"`
	Invoices []Invoice         `gorm:"foreignKey:EngagementID" json:"invoices,omitempty"`
}
