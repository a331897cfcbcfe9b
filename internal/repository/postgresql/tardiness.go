package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/bizdesk/tardiness-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type tardinessRepository struct {
	db *database.DB
}

func NewTardinessRepository(db *database.DB) tardiness.Repository {
	return &tardinessRepository{db: db}
}

// ListByMonth implements tardiness.Repository.
func (r *tardinessRepository) ListByMonth(ctx context.Context, month int, year int) ([]tardiness.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, date, actual_in, late_minutes,
		       created_at, updated_at
		FROM lateness_records
		WHERE EXTRACT(MONTH FROM date) = $1
		  AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date, employee_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list lateness records: %w", err)
	}
	defer rows.Close()

	var records []tardiness.Record
	for rows.Next() {
		var rec tardiness.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date, &rec.ActualIn,
			&rec.LateMinutes, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lateness record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lateness records: %w", err)
	}

	return records, nil
}

// Create implements tardiness.Repository.
// The duplicate check and the insert run in one transaction so two
// concurrent creates for the same employee and date cannot both land.
func (r *tardinessRepository) Create(ctx context.Context, record tardiness.Record) (tardiness.Record, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)

		exists, err := r.ExistsForDate(txCtx, record.EmployeeKey(), record.Date)
		if err != nil {
			return err
		}
		if exists {
			return tardiness.ErrDuplicateRecord
		}

		q := GetQuerier(txCtx, r.db)
		query := `
			INSERT INTO lateness_records (id, employee_id, employee_name, date, actual_in, late_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at
		`
		return q.QueryRow(txCtx, query,
			record.ID,
			record.EmployeeID,
			record.EmployeeName,
			record.Date,
			record.ActualIn,
			record.LateMinutes,
		).Scan(&record.CreatedAt, &record.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, tardiness.ErrDuplicateRecord) {
			return tardiness.Record{}, err
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return tardiness.Record{}, tardiness.ErrDuplicateRecord
		}
		return tardiness.Record{}, fmt.Errorf("failed to create lateness record: %w", err)
	}

	return record, nil
}

// UpdateTime implements tardiness.Repository.
func (r *tardinessRepository) UpdateTime(ctx context.Context, id string, actualIn string, lateMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE lateness_records
		SET actual_in = $2, late_minutes = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, actualIn, lateMinutes)
	if err != nil {
		return fmt.Errorf("failed to update lateness record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tardiness.ErrRecordNotFound
	}

	return nil
}

// ExistsForDate implements tardiness.Repository.
func (r *tardinessRepository) ExistsForDate(ctx context.Context, employeeKey string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// The key is the employee id when present, the display name for
	// rows imported without one.
	query := `
		SELECT id
		FROM lateness_records
		WHERE date = $2
		  AND (
		      (employee_id <> '' AND employee_id = $1)
		      OR (employee_id = '' AND employee_name = $1)
		  )
		LIMIT 1
	`

	var id string
	err := q.QueryRow(ctx, query, employeeKey, date).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check for existing lateness record: %w", err)
	}

	return true, nil
}
