package tardiness

import (
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/pkg/validator"
)

// ========================================
// TARDINESS DTOs
// ========================================

type CreateRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"` // "2006-01-02"
	ActualIn     string `json:"actual_in"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) && validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "an employee must be selected",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ActualIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_in",
			Message: "arrival time is required",
		})
	} else if !validator.IsValidClockTime(r.ActualIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_in",
			Message: "arrival time must look like 8:05 AM or 08:05",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the request date as a calendar day. Call Validate first.
func (r *CreateRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type UpdateTimeRequest struct {
	ID       string `json:"-"`
	ActualIn string `json:"actual_in"`
}

func (r *UpdateTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if validator.IsEmpty(r.ActualIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_in",
			Message: "arrival time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter selects and filters one reporting window.
type ListFilter struct {
	Month   int
	Year    int
	Search  string // fuzzy-matched against employee names, space-separated terms
	Cutoff  string // optional: CutoffFirst or CutoffSecond
	Refresh bool   // force a refetch even when the window is already loaded
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 1900 || f.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if f.Cutoff != "" && !validator.IsInSlice(f.Cutoff, []string{CutoffFirst, CutoffSecond}) {
		errs = append(errs, validator.ValidationError{
			Field:   "cutoff",
			Message: "cutoff must be cutoff1 or cutoff2",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id,omitempty"`
	EmployeeName   string `json:"employee_name"`
	Date           string `json:"date"`
	ActualIn       string `json:"actual_in"`
	LateMinutes    int    `json:"late_minutes"`
	GraceBreach    bool   `json:"grace_breach"`
	LateOccurrence int    `json:"late_occurrence"`
	WarningLevel   int    `json:"warning_level"`
	CutoffPeriod   string `json:"cutoff_period"`
	CutoffLabel    string `json:"cutoff_label"`
}

type ListResponse struct {
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Records []RecordResponse `json:"records"`
}
