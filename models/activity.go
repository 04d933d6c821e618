package models

// Activity is a task record attached to a workday.
type Activity struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	WorkDayID       uint    `gorm:"not null;index" json:"workday_id"`
	WorkDay         WorkDay `gorm:"foreignKey:WorkDayID" json:"-"`
	Title           string  `gorm:"not null;size:255" json:"title"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	Category        string  `gorm:"size:100" json:"category,omitempty"`
	Tags            string  `gorm:"size:255" json:"tags,omitempty"`
	IncludeInExport bool    `json:"include_in_export"`
}
