package reportyear

import "context"

// Repository is the append/remove registry of reporting years offered
// for window selection.
type Repository interface {
	// List returns all registered years, newest first.
	List(ctx context.Context) ([]int, error)

	// Add registers a year. Returns ErrYearExists when already present.
	Add(ctx context.Context, year int) error

	// Remove unregisters a year. Returns ErrYearNotFound when absent.
	Remove(ctx context.Context, year int) error
}
