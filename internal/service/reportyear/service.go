package reportyear

import (
	"context"
	"fmt"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/reportyear"
)

type ServiceImpl struct {
	repo reportyear.Repository
}

func NewReportYearService(repo reportyear.Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

// List implements reportyear.Service.
func (s *ServiceImpl) List(ctx context.Context) ([]int, error) {
	years, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reporting years: %w", err)
	}
	return years, nil
}

// Add implements reportyear.Service.
func (s *ServiceImpl) Add(ctx context.Context, year int) error {
	if year < 1900 || year > 9999 {
		return reportyear.ErrYearInvalid
	}
	return s.repo.Add(ctx, year)
}

// Remove implements reportyear.Service.
func (s *ServiceImpl) Remove(ctx context.Context, year int) error {
	return s.repo.Remove(ctx, year)
}
