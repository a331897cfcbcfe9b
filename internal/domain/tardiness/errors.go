package tardiness

import "errors"

// Tardiness domain errors
var (
	ErrRecordNotFound  = errors.New("lateness record not found")
	ErrDuplicateRecord = errors.New("a lateness record already exists for this employee and date")
	ErrWindowNotLoaded = errors.New("no reporting window loaded for this month and year")
)
