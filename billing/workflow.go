package billing

import (
	"errors"
	"strings"

	"timesheet/models"
)

var (
	ErrZeroPeriodSubmission = errors.New("submitting a period with zero billable days requires allow_zero_period")
	ErrReopenWithoutReason  = errors.New("reopening a submitted, approved or invoiced period requires a reason")
)

// CheckTransition enforces the two mandatory period-transition guards:
// submitting a zero-billable period needs an explicit override, and
// reopening to draft from submitted, approved or invoiced needs a reason.
// Every other transition is permitted, including draft straight to
// invoiced.
func CheckTransition(current, next models.PeriodStatus, totalBillableDays int, allowZeroPeriod bool, reason string) error {
	switch next {
	case models.PeriodSubmitted:
		if totalBillableDays == 0 && !allowZeroPeriod {
			return ErrZeroPeriodSubmission
		}
	case models.PeriodDraft:
		switch current {
		case models.PeriodSubmitted, models.PeriodApproved, models.PeriodInvoiced:
			if strings.TrimSpace(reason) == "" {
				return ErrReopenWithoutReason
			}
		case models.PeriodDraft, models.PeriodReady, models.PeriodRejected:
			// Not a reopening.
		}
	case models.PeriodReady, models.PeriodApproved, models.PeriodRejected, models.PeriodInvoiced:
		// Unguarded.
	}
	return nil
}
