package reportyear

import "context"

// Service defines business logic for the reporting year registry.
type Service interface {
	List(ctx context.Context) ([]int, error)
	Add(ctx context.Context, year int) error
	Remove(ctx context.Context, year int) error
}
