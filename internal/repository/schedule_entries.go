package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

const entryColumns = `
	se.id,
	se.weekly_schedule_id,
	se.staff_id,
	se.day_of_week,
	se.work_date,
	se.status,
	to_char(se.start_time, 'HH24:MI'),
	to_char(se.end_time, 'HH24:MI'),
	se.working_minutes,
	se.break_minutes,
	se.notes,
	se.created_by,
	se.created_at,
	se.updated_by,
	se.updated_at,
	se.version
`

const entryViewColumns = entryColumns + `,
	s.full_name,
	s.role,
	COALESCE(g.name, '')
`

const entryViewFrom = `
	FROM schedule_entries se
	JOIN staff s ON s.id = se.staff_id
	LEFT JOIN age_groups g ON g.id = s.group_id
`

type entryRow struct {
	entry     domain.ShiftEntry
	startTime sql.NullString
	endTime   sql.NullString
}

func (row *entryRow) dst() []any {
	e := &row.entry
	return []any{
		&e.ID,
		&e.WeeklyScheduleID,
		&e.StaffID,
		&e.DayOfWeek,
		&e.WorkDate,
		&e.Status,
		&row.startTime,
		&row.endTime,
		&e.WorkingMinutes,
		&e.BreakMinutes,
		&e.Notes,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedBy,
		&e.UpdatedAt,
		&e.Version,
	}
}

func (row *entryRow) toEntry() (domain.ShiftEntry, error) {
	e := row.entry
	if row.startTime.Valid {
		t, err := domain.ParseTimeOfDay(row.startTime.String)
		if err != nil {
			return e, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		e.StartTime = &t
	}
	if row.endTime.Valid {
		t, err := domain.ParseTimeOfDay(row.endTime.String)
		if err != nil {
			return e, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		e.EndTime = &t
	}
	return e, nil
}

func scanEntryViews(rows *sql.Rows) ([]*domain.ShiftEntryView, error) {
	views := make([]*domain.ShiftEntryView, 0)
	for rows.Next() {
		var (
			row  entryRow
			view domain.ShiftEntryView
		)
		dst := append(row.dst(), &view.StaffName, &view.StaffRole, &view.GroupName)
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		entry, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		view.ShiftEntry = entry
		view.WorkingHoursFormatted = roster.FormatMinutes(entry.WorkingMinutes)
		view.BreakTimeFormatted = roster.FormatMinutes(entry.BreakMinutes)
		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func sqlTime(t *domain.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.SQLValue()
}

func (r *Repository) queryEntryViews(query string, args ...any) ([]*domain.ShiftEntryView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntryViews(rows)
}

func (r *Repository) GetScheduleEntriesByWeek(weekNumber, year int) ([]*domain.ShiftEntryView, error) {
	query := `SELECT ` + entryViewColumns + entryViewFrom + `
		JOIN weekly_schedules ws ON ws.id = se.weekly_schedule_id
		WHERE ws.week_number = $1 AND ws.year = $2
		ORDER BY s.full_name, se.day_of_week
	`

	return r.queryEntryViews(query, weekNumber, year)
}

func (r *Repository) GetScheduleEntriesByStaffAndWeek(staffID int64, weekNumber, year int) ([]*domain.ShiftEntryView, error) {
	query := `SELECT ` + entryViewColumns + entryViewFrom + `
		JOIN weekly_schedules ws ON ws.id = se.weekly_schedule_id
		WHERE se.staff_id = $1 AND ws.week_number = $2 AND ws.year = $3
		ORDER BY se.day_of_week
	`

	return r.queryEntryViews(query, staffID, weekNumber, year)
}

func (r *Repository) GetScheduleEntriesByDate(date time.Time) ([]*domain.ShiftEntryView, error) {
	query := `SELECT ` + entryViewColumns + entryViewFrom + `
		WHERE se.work_date = $1
		ORDER BY s.full_name
	`

	return r.queryEntryViews(query, domain.DateOf(date))
}

func (r *Repository) GetScheduleEntriesByStatus(status domain.Status, from, to time.Time) ([]*domain.ShiftEntryView, error) {
	query := `SELECT ` + entryViewColumns + entryViewFrom + `
		WHERE se.status = $1 AND se.work_date BETWEEN $2 AND $3
		ORDER BY se.work_date, s.full_name
	`

	return r.queryEntryViews(query, status, domain.DateOf(from), domain.DateOf(to))
}

func (r *Repository) GetScheduleEntryByID(id int64) (*domain.ShiftEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM schedule_entries se WHERE se.id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var row entryRow
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(row.dst()...); err != nil {
		return nil, err
	}

	entry, err := row.toEntry()
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// CreateScheduleEntry stores entry as given; callers recalculate the derived minutes first.
func (r *Repository) CreateScheduleEntry(entry *domain.ShiftEntry, actor string) error {
	query := `
		INSERT INTO schedule_entries (
			weekly_schedule_id,
			staff_id,
			day_of_week,
			work_date,
			status,
			start_time,
			end_time,
			working_minutes,
			break_minutes,
			notes,
			created_by,
			updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, created_by, created_at, updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		entry.WeeklyScheduleID,
		entry.StaffID,
		entry.DayOfWeek,
		domain.DateOf(entry.WorkDate),
		entry.Status,
		sqlTime(entry.StartTime),
		sqlTime(entry.EndTime),
		entry.WorkingMinutes,
		entry.BreakMinutes,
		entry.Notes,
		actor,
	}
	dst := []any{&entry.ID, &entry.CreatedBy, &entry.CreatedAt, &entry.UpdatedBy, &entry.UpdatedAt, &entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateScheduleEntry(entry *domain.ShiftEntry, actor string) error {
	query := `
		UPDATE schedule_entries
		SET
			staff_id = $1,
			day_of_week = $2,
			work_date = $3,
			status = $4,
			start_time = $5,
			end_time = $6,
			working_minutes = $7,
			break_minutes = $8,
			notes = $9,
			updated_by = $10,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		entry.StaffID,
		entry.DayOfWeek,
		domain.DateOf(entry.WorkDate),
		entry.Status,
		sqlTime(entry.StartTime),
		sqlTime(entry.EndTime),
		entry.WorkingMinutes,
		entry.BreakMinutes,
		entry.Notes,
		actor,
		entry.ID,
		entry.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.UpdatedBy, &entry.UpdatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteScheduleEntry(id int64) error {
	query := `
		DELETE FROM schedule_entries WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

// CreateScheduleEntries inserts a week's worth of entries in one transaction.
func (r *Repository) CreateScheduleEntries(entries []*domain.ShiftEntry, actor string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO schedule_entries (
			weekly_schedule_id, staff_id, day_of_week, work_date, status, start_time, end_time,
			working_minutes, break_minutes, notes, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, created_at, updated_at, version
	`

	for _, entry := range entries {
		args := []any{
			entry.WeeklyScheduleID,
			entry.StaffID,
			entry.DayOfWeek,
			domain.DateOf(entry.WorkDate),
			entry.Status,
			sqlTime(entry.StartTime),
			sqlTime(entry.EndTime),
			entry.WorkingMinutes,
			entry.BreakMinutes,
			entry.Notes,
			actor,
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt, &entry.Version); err != nil {
			return err
		}
		entry.CreatedBy = actor
		entry.UpdatedBy = actor
	}

	return tx.Commit()
}
