package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

// Service runs the aggregations over entries loaded from an EntrySource.
type Service struct {
	source EntrySource
}

func NewService(source EntrySource) *Service {
	return &Service{source: source}
}

func (s *Service) DailyTotals(ctx context.Context, weekNumber, year int) ([]domain.DailyTotal, error) {
	snapshot, err := s.source.EntriesForWeek(ctx, weekNumber, year)
	if err != nil {
		return nil, fmt.Errorf("load entries of week %d/%d: %w", weekNumber, year, err)
	}
	return DailyTotals(snapshot), nil
}

func (s *Service) WeeklyStaffTotals(ctx context.Context, weekNumber, year int) ([]domain.WeeklyStaffTotal, error) {
	snapshot, err := s.source.EntriesForWeek(ctx, weekNumber, year)
	if err != nil {
		return nil, fmt.Errorf("load entries of week %d/%d: %w", weekNumber, year, err)
	}
	return WeeklyStaffTotals(snapshot), nil
}

func (s *Service) WhoIsWorkingAt(ctx context.Context, date time.Time, t domain.TimeOfDay) ([]OnDuty, error) {
	snapshot, err := s.source.EntriesForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load entries of %s: %w", date.Format(time.DateOnly), err)
	}
	return WhoIsWorkingAt(snapshot, date, t), nil
}

// Week loads the snapshot of a week together with both aggregations, as used by reports.
func (s *Service) Week(ctx context.Context, weekNumber, year int) (*WeekSnapshot, []domain.DailyTotal, []domain.WeeklyStaffTotal, error) {
	snapshot, err := s.source.EntriesForWeek(ctx, weekNumber, year)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load entries of week %d/%d: %w", weekNumber, year, err)
	}
	return snapshot, DailyTotals(snapshot), WeeklyStaffTotals(snapshot), nil
}
