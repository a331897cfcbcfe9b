package tardiness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/bizdesk/tardiness-backend-go/internal/pkg/fuzzy"
	"github.com/google/uuid"
)

type ServiceImpl struct {
	repo        tardiness.Repository
	window      *recordWindow
	coordinator *EditCoordinator
}

// NewTardinessService wires the recompute engine, the window snapshot
// holder and the debounced edit coordinator around a record repository.
func NewTardinessService(repo tardiness.Repository, quietWindow time.Duration, notifier Notifier) *ServiceImpl {
	s := &ServiceImpl{
		repo:   repo,
		window: &recordWindow{},
	}
	s.coordinator = NewEditCoordinator(quietWindow, repo.UpdateTime, notifier)
	return s
}

// List implements tardiness.Service.
func (s *ServiceImpl) List(ctx context.Context, filter tardiness.ListFilter) (tardiness.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return tardiness.ListResponse{}, err
	}

	// The loaded window carries local optimistic edits that may not have
	// been persisted yet; serve it rather than refetching so the most
	// recent local state always wins.
	if filter.Refresh || !s.window.matches(filter.Month, filter.Year) {
		records, err := s.repo.ListByMonth(ctx, filter.Month, filter.Year)
		if err != nil {
			return tardiness.ListResponse{}, fmt.Errorf("failed to list lateness records: %w", err)
		}
		s.window.replace(filter.Month, filter.Year, Recompute(records))
		slog.Debug("reporting window loaded", "month", filter.Month, "year", filter.Year, "records", len(records))
	}

	resp := tardiness.ListResponse{
		Month:   filter.Month,
		Year:    filter.Year,
		Records: make([]tardiness.RecordResponse, 0),
	}
	for _, rec := range s.window.snapshot() {
		if filter.Cutoff != "" && rec.CutoffPeriod != filter.Cutoff {
			continue
		}
		if filter.Search != "" && !fuzzy.MatchAll(filter.Search, rec.EmployeeName) {
			continue
		}
		resp.Records = append(resp.Records, toResponse(rec))
	}
	return resp, nil
}

// Create implements tardiness.Service.
func (s *ServiceImpl) Create(ctx context.Context, req tardiness.CreateRequest) (tardiness.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return tardiness.RecordResponse{}, err
	}

	date := req.ParsedDate()
	rec := tardiness.Record{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         date,
		ActualIn:     req.ActualIn,
		LateMinutes:  LateMinutes(req.ActualIn),
	}

	// Reject duplicates locally before touching storage: first against
	// the loaded window, then against the repository for records outside
	// the window or windows never loaded.
	if s.window.matches(int(date.Month()), date.Year()) && s.window.contains(rec.EmployeeKey(), req.Date) {
		return tardiness.RecordResponse{}, tardiness.ErrDuplicateRecord
	}
	exists, err := s.repo.ExistsForDate(ctx, rec.EmployeeKey(), date)
	if err != nil {
		return tardiness.RecordResponse{}, fmt.Errorf("failed to check for duplicate record: %w", err)
	}
	if exists {
		return tardiness.RecordResponse{}, tardiness.ErrDuplicateRecord
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return tardiness.RecordResponse{}, fmt.Errorf("failed to create lateness record: %w", err)
	}

	if s.window.matches(int(date.Month()), date.Year()) {
		created = s.window.insert(created)
	} else {
		// Window not loaded for this month; derive fields standalone so
		// the response is still complete.
		one := Recompute([]tardiness.Record{created})
		created = one[0]
	}
	return toResponse(created), nil
}

// EditTime implements tardiness.Service.
func (s *ServiceImpl) EditTime(ctx context.Context, req tardiness.UpdateTimeRequest) (tardiness.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return tardiness.RecordResponse{}, err
	}

	// Optimistic local apply plus full recompute; corrected warning
	// levels are visible before any network round-trip.
	updated, ok := s.window.apply(req.ID, func(rec *tardiness.Record) {
		rec.ActualIn = req.ActualIn
		rec.LateMinutes = LateMinutes(req.ActualIn)
	})
	if !ok {
		return tardiness.RecordResponse{}, tardiness.ErrRecordNotFound
	}

	s.coordinator.Schedule(updated.ID, updated.ActualIn, updated.LateMinutes)
	return toResponse(updated), nil
}

// Flush waits for all pending debounced persistence calls. Called on
// shutdown so queued corrections are not lost.
func (s *ServiceImpl) Flush() {
	s.coordinator.Wait()
}

func toResponse(rec tardiness.Record) tardiness.RecordResponse {
	return tardiness.RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		Date:           rec.Date.Format("2006-01-02"),
		ActualIn:       rec.ActualIn,
		LateMinutes:    rec.LateMinutes,
		GraceBreach:    rec.GraceBreach,
		LateOccurrence: rec.LateOccurrence,
		WarningLevel:   rec.WarningLevel,
		CutoffPeriod:   rec.CutoffPeriod,
		CutoffLabel:    CutoffLabel(rec.Date),
	}
}
