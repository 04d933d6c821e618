package billing

import (
	"errors"
	"time"

	"timesheet/models"
)

var (
	ErrWeekendBlocked  = errors.New("weekend days are blocked for this engagement")
	ErrMaxBillableDays = errors.New("max billable days reached")
)

// CheckWorkDayAdmission applies the engagement's admission rules to a new
// workday. billableCount is the number of billable workdays the engagement
// already has, regardless of their status.
//
// There is no duplicate-date rule: multiple workdays may exist for the same
// calendar date.
func CheckWorkDayAdmission(engagement *models.Engagement, date models.Date, status models.WorkDayStatus, billable bool, billableCount int64) error {
	weekday := date.Weekday()
	if (weekday == time.Saturday || weekday == time.Sunday) && !engagement.WeekendAllowed && status == models.WorkDayWorked {
		return ErrWeekendBlocked
	}
	if engagement.MaxBillableDays != nil && billable && billableCount >= int64(*engagement.MaxBillableDays) {
		return ErrMaxBillableDays
	}
	return nil
}
