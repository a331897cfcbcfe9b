package tardiness

import (
	"time"
)

// Cutoff periods partition a month into its two reporting halves.
const (
	CutoffFirst  = "cutoff1" // day 1-15
	CutoffSecond = "cutoff2" // day 16 to end of month
)

// Record is one observed late arrival for an employee on a calendar day.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time // calendar day, time component ignored
	ActualIn     string    // raw clock-in as entered, "8:14 AM" or "08:14"

	// Derived by the recompute engine from the full loaded window.
	// Never edited directly; any change to ActualIn invalidates all of
	// them for every record sharing the same employee key.
	LateMinutes    int
	GraceBreach    bool
	LateOccurrence int    // 1-based ordinal among this employee's breaches, 0 if no breach
	WarningLevel   int    // 0 for breaches 1-2, occurrence-2 from the 3rd on
	CutoffPeriod   string // CutoffFirst or CutoffSecond

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeKey is the grouping key for warning escalation. Rows imported
// without an employee id fall back to the display name.
func (r Record) EmployeeKey() string {
	if r.EmployeeID != "" {
		return r.EmployeeID
	}
	return r.EmployeeName
}
