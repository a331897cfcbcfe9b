package tardiness

import (
	"fmt"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
)

// cutoffLastFirstHalf is the last day of the first reporting half.
const cutoffLastFirstHalf = 15

// CutoffPeriod buckets a date into its half-month reporting period by
// day number alone.
func CutoffPeriod(date time.Time) string {
	if date.Day() <= cutoffLastFirstHalf {
		return tardiness.CutoffFirst
	}
	return tardiness.CutoffSecond
}

// CutoffLabel renders the day range of the date's cutoff for display.
// The second half runs to the month's true last day, so February yields
// "16 - 28" or "16 - 29".
func CutoffLabel(date time.Time) string {
	if date.Day() <= cutoffLastFirstHalf {
		return fmt.Sprintf("1 - %d", cutoffLastFirstHalf)
	}
	lastDay := time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
	return fmt.Sprintf("%d - %d", cutoffLastFirstHalf+1, lastDay)
}
