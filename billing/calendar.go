// Package billing holds the pure business rules of the back office:
// reporting-period boundary math, workday admission rules, the period
// status guards and invoice due-date arithmetic. It performs no I/O.
package billing

import (
	"time"

	"timesheet/models"
)

// StepMonths returns how many calendar months a reporting period spans.
// "custom" has no distinct stepping behavior and is treated as monthly.
func StepMonths(frequency models.ReportingFrequency) int {
	switch frequency {
	case models.FrequencyBimonthly:
		return 2
	case models.FrequencyQuarterly:
		return 3
	case models.FrequencyMonthly, models.FrequencyCustom:
		return 1
	default:
		return 1
	}
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n calendar months, clamping the day-of-month to the
// destination month's length (Jan 31 + 1 month = Feb 28/29).
func AddMonths(d models.Date, n int) models.Date {
	year, month, day := d.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return models.NewDate(first.Year(), first.Month(), day)
}

// PeriodBounds computes the reporting window that contains the cursor's
// month: start is the anchor day of that month (clamped to the month
// length), end is the day before the anchor stepMonths later.
func PeriodBounds(cursor models.Date, anchorDay, stepMonths int) (models.Date, models.Date) {
	year, month, _ := cursor.Date()
	day := anchorDay
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	start := models.NewDate(year, month, day)
	end := AddMonths(start, stepMonths).AddDays(-1)
	return start, end
}

// Window is a generated reporting-period date range.
type Window struct {
	Start models.Date
	End   models.Date
}

// GeneratePeriods walks from cursor to the earlier of engagementEnd and
// through, emitting consecutive non-overlapping reporting windows. Windows
// that end before the cursor advance it silently; a window is truncated at
// both edges to stay inside the generation range.
func GeneratePeriods(cursor, engagementEnd, through models.Date, anchorDay, stepMonths int) []Window {
	if anchorDay < 1 {
		anchorDay = 1
	}
	if stepMonths < 1 {
		stepMonths = 1
	}
	maxDate := engagementEnd
	if through.Time.Before(maxDate.Time) {
		maxDate = through
	}

	var windows []Window
	for !cursor.Time.After(maxDate.Time) {
		start, end := PeriodBounds(cursor, anchorDay, stepMonths)
		if end.Time.Before(cursor.Time) {
			cursor = end.AddDays(1)
			continue
		}
		if start.Time.Before(cursor.Time) {
			start = cursor
		}
		if end.Time.After(maxDate.Time) {
			end = maxDate
		}
		if start.Time.After(end.Time) {
			break
		}
		windows = append(windows, Window{Start: start, End: end})
		cursor = end.AddDays(1)
	}
	return windows
}

// DueDate computes an invoice due date from its payment term. DF counts
// term days from the invoice date; DFFM counts them from the last calendar
// day of the invoice month.
func DueDate(invoiceDate models.Date, termType models.PaymentTermType, termDays int) models.Date {
	if termType == models.TermDaysFromMonthEnd {
		endOfMonth := models.NewDate(invoiceDate.Year(), invoiceDate.Month(), daysInMonth(invoiceDate.Year(), invoiceDate.Month()))
		return endOfMonth.AddDays(termDays)
	}
	return invoiceDate.AddDays(termDays)
}
