package repository

import (
	"context"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

const weeklyScheduleColumns = `
	id, week_number, year, start_date, end_date, notes, created_by, created_at, updated_by, updated_at, version
`

func scanWeeklySchedule(row interface{ Scan(...any) error }) (*domain.WeekPeriod, error) {
	week := &domain.WeekPeriod{}
	dst := []any{
		&week.ID,
		&week.WeekNumber,
		&week.Year,
		&week.StartDate,
		&week.EndDate,
		&week.Notes,
		&week.CreatedBy,
		&week.CreatedAt,
		&week.UpdatedBy,
		&week.UpdatedAt,
		&week.Version,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	return week, nil
}

func (r *Repository) GetAllWeeklySchedules() ([]*domain.WeekPeriod, error) {
	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules ORDER BY year DESC, week_number DESC`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := make([]*domain.WeekPeriod, 0)
	for rows.Next() {
		week, err := scanWeeklySchedule(rows)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weeks, nil
}

func (r *Repository) GetWeeklyScheduleByID(id int64) (*domain.WeekPeriod, error) {
	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanWeeklySchedule(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetWeeklyScheduleByWeek(weekNumber, year int) (*domain.WeekPeriod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.getWeeklyScheduleByWeek(ctx, weekNumber, year)
}

func (r *Repository) getWeeklyScheduleByWeek(ctx context.Context, weekNumber, year int) (*domain.WeekPeriod, error) {
	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules WHERE week_number = $1 AND year = $2`

	return scanWeeklySchedule(r.dbpool.QueryRowContext(ctx, query, weekNumber, year))
}

func (r *Repository) CreateWeeklySchedule(week *domain.WeekPeriod, actor string) error {
	query := `
		INSERT INTO weekly_schedules (week_number, year, start_date, end_date, notes, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_by, created_at, updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{week.WeekNumber, week.Year, week.StartDate, week.EndDate, week.Notes, actor}
	dst := []any{&week.ID, &week.CreatedBy, &week.CreatedAt, &week.UpdatedBy, &week.UpdatedAt, &week.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

// UpdateWeeklySchedule only changes the notes; week number and dates are fixed once entries reference them.
func (r *Repository) UpdateWeeklySchedule(week *domain.WeekPeriod, actor string) error {
	query := `
		UPDATE weekly_schedules
		SET
			notes = $1,
			updated_by = $2,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{week.Notes, actor, week.ID, week.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&week.UpdatedBy, &week.UpdatedAt, &week.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWeeklySchedule(id int64) error {
	query := `
		DELETE FROM weekly_schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
