package models

import (
	"time"
)

type WorkDayStatus string

const (
	WorkDayWorked    WorkDayStatus = "worked"
	WorkDayNonWorked WorkDayStatus = "non-worked"
	WorkDayBlocked   WorkDayStatus = "blocked"
	WorkDayHoliday   WorkDayStatus = "holiday"
	WorkDayWeekend   WorkDayStatus = "weekend"
)

func (s WorkDayStatus) Valid() bool {
	switch s {
	case WorkDayWorked, WorkDayNonWorked, WorkDayBlocked, WorkDayHoliday, WorkDayWeekend:
		return true
	}
	return false
}

// WorkDay is a single day's work record under an engagement. Created once,
// never updated or deleted through the API.
type WorkDay struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	EngagementID uint          `gorm:"not null;index" json:"engagement_id"`
	Engagement   Engagement    `gorm:"foreignKey:EngagementID" json:"-"`
	Date         Date          `gorm:"not null;type:date;index" json:"date"`
	Status       WorkDayStatus `gorm:"not null;size:20" json:"status"`
	Billable     bool          `json:"billable"`
	InternalNote string        `gorm:"type:text" json:"internal_note,omitempty"`
	Location     string        `gorm:"size:255" json:"location,omitempty"`

	Activities []Activity `gorm:"foreignKey:WorkDayID" json:"activities,omitempty"`
}
