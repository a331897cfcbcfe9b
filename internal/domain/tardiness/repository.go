package tardiness

import (
	"context"
	"time"
)

// Repository defines data access for lateness records. The engine only
// ever sees base fields; derived fields are recomputed on load, except
// LateMinutes which is stored alongside the corrected time for reporting
// queries that never run the engine.
type Repository interface {
	// ListByMonth retrieves all records whose date falls in the given
	// month and year.
	ListByMonth(ctx context.Context, month int, year int) ([]Record, error)

	// Create persists a new record. Returns ErrDuplicateRecord when one
	// already exists for the same employee and date.
	Create(ctx context.Context, record Record) (Record, error)

	// UpdateTime persists a corrected arrival time and its derived
	// minutes. Returns ErrRecordNotFound for an unknown id.
	UpdateTime(ctx context.Context, id string, actualIn string, lateMinutes int) error

	// ExistsForDate reports whether a record already exists for the
	// employee key on the given calendar day.
	ExistsForDate(ctx context.Context, employeeKey string, date time.Time) (bool, error)
}
