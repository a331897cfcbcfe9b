package postgresql

import (
	"context"
	"fmt"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/reportyear"
	"github.com/bizdesk/tardiness-backend-go/internal/pkg/database"
)

type reportYearRepository struct {
	db *database.DB
}

func NewReportYearRepository(db *database.DB) reportyear.Repository {
	return &reportYearRepository{db: db}
}

// List implements reportyear.Repository.
func (r *reportYearRepository) List(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT year FROM report_years ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list report years: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan report year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report years: %w", err)
	}

	return years, nil
}

// Add implements reportyear.Repository.
func (r *reportYearRepository) Add(ctx context.Context, year int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `INSERT INTO report_years (year) VALUES ($1) ON CONFLICT (year) DO NOTHING`, year)
	if err != nil {
		return fmt.Errorf("failed to add report year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reportyear.ErrYearExists
	}

	return nil
}

// Remove implements reportyear.Repository.
func (r *reportYearRepository) Remove(ctx context.Context, year int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM report_years WHERE year = $1`, year)
	if err != nil {
		return fmt.Errorf("failed to remove report year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reportyear.ErrYearNotFound
	}

	return nil
}
