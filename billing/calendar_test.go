package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/models"
)

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

func TestStepMonths(t *testing.T) {
	assert.Equal(t, 1, StepMonths(models.FrequencyMonthly))
	assert.Equal(t, 2, StepMonths(models.FrequencyBimonthly))
	assert.Equal(t, 3, StepMonths(models.FrequencyQuarterly))
	// "custom" steps like monthly.
	assert.Equal(t, 1, StepMonths(models.FrequencyCustom))
	assert.Equal(t, 1, StepMonths(models.ReportingFrequency("unknown")))
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name  string
		start models.Date
		n     int
		want  models.Date
	}{
		{"jan 31 to feb 28", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"jan 31 to leap feb 29", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"mar 31 to apr 30", date(2026, time.March, 31), 1, date(2026, time.April, 30)},
		{"mid month unchanged", date(2026, time.June, 15), 1, date(2026, time.July, 15)},
		{"across year end", date(2026, time.December, 15), 1, date(2027, time.January, 15)},
		{"quarter step", date(2026, time.January, 1), 3, date(2026, time.April, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.String(), AddMonths(tt.start, tt.n).String())
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	start, end := PeriodBounds(date(2026, time.January, 10), 1, 1)
	assert.Equal(t, "2026-01-01", start.String())
	assert.Equal(t, "2026-01-31", end.String())

	// Anchor larger than the month clamps to the month's last day.
	start, end = PeriodBounds(date(2026, time.February, 10), 31, 1)
	assert.Equal(t, "2026-02-28", start.String())
	assert.Equal(t, "2026-03-27", end.String())

	// Quarterly window.
	start, end = PeriodBounds(date(2026, time.January, 1), 1, 3)
	assert.Equal(t, "2026-01-01", start.String())
	assert.Equal(t, "2026-03-31", end.String())
}

func TestGeneratePeriodsMonthly(t *testing.T) {
	windows := GeneratePeriods(
		date(2026, time.January, 1),
		date(2026, time.December, 31),
		date(2026, time.February, 28),
		1, 1,
	)
	require.Len(t, windows, 2)
	assert.Equal(t, "2026-01-01", windows[0].Start.String())
	assert.Equal(t, "2026-01-31", windows[0].End.String())
	assert.Equal(t, "2026-02-01", windows[1].Start.String())
	assert.Equal(t, "2026-02-28", windows[1].End.String())
}

func TestGeneratePeriodsTruncatesAtCeiling(t *testing.T) {
	windows := GeneratePeriods(
		date(2026, time.January, 1),
		date(2026, time.December, 31),
		date(2026, time.February, 10),
		1, 1,
	)
	require.Len(t, windows, 2)
	assert.Equal(t, "2026-02-01", windows[1].Start.String())
	assert.Equal(t, "2026-02-10", windows[1].End.String())
}

func TestGeneratePeriodsMidMonthStart(t *testing.T) {
	// Engagement starts mid-month: the first window is truncated at the
	// cursor rather than reaching back to the anchor day.
	windows := GeneratePeriods(
		date(2026, time.January, 15),
		date(2026, time.December, 31),
		date(2026, time.January, 31),
		1, 1,
	)
	require.Len(t, windows, 1)
	assert.Equal(t, "2026-01-15", windows[0].Start.String())
	assert.Equal(t, "2026-01-31", windows[0].End.String())
}

func TestGeneratePeriodsQuarterly(t *testing.T) {
	windows := GeneratePeriods(
		date(2026, time.January, 1),
		date(2026, time.December, 31),
		date(2026, time.June, 30),
		1, 3,
	)
	require.Len(t, windows, 2)
	assert.Equal(t, "2026-03-31", windows[0].End.String())
	assert.Equal(t, "2026-04-01", windows[1].Start.String())
	assert.Equal(t, "2026-06-30", windows[1].End.String())
}

func TestGeneratePeriodsEmptyWhenCursorPastCeiling(t *testing.T) {
	windows := GeneratePeriods(
		date(2026, time.March, 1),
		date(2026, time.December, 31),
		date(2026, time.February, 28),
		1, 1,
	)
	assert.Empty(t, windows)
}

func TestDueDate(t *testing.T) {
	// Days from invoice date.
	due := DueDate(date(2026, time.February, 10), models.TermDaysFromInvoice, 30)
	assert.Equal(t, "2026-03-12", due.String())

	// Days from month end: Feb 2026 has 28 days, Feb 28 + 30 = Mar 30.
	due = DueDate(date(2026, time.February, 10), models.TermDaysFromMonthEnd, 30)
	assert.Equal(t, "2026-03-30", due.String())

	due = DueDate(date(2026, time.February, 10), models.TermDaysFromMonthEnd, 0)
	assert.Equal(t, "2026-02-28", due.String())
}
