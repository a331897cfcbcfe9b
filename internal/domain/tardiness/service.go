package tardiness

import (
	"context"
)

// Service defines business logic for tardiness monitoring.
type Service interface {
	// List loads (or serves the already-loaded) reporting window, runs
	// the warning escalation recompute and applies search/cutoff filters.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Create validates and persists a newly logged late arrival, then
	// folds it into the loaded window.
	Create(ctx context.Context, req CreateRequest) (RecordResponse, error)

	// EditTime applies a corrected arrival time optimistically to the
	// loaded window and schedules a debounced persistence call.
	EditTime(ctx context.Context, req UpdateTimeRequest) (RecordResponse, error)
}
