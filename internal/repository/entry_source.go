package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

var _ roster.EntrySource = (*Repository)(nil)

const snapshotColumns = entryColumns + `,
	s.full_name,
	s.role,
	s.group_id,
	s.is_intern,
	s.is_active,
	s.email,
	g.name
`

type snapshotRow struct {
	entryRow
	staff     domain.Staff
	groupName sql.NullString
}

func (row *snapshotRow) dst() []any {
	return append(row.entryRow.dst(),
		&row.staff.FullName,
		&row.staff.Role,
		&row.staff.GroupID,
		&row.staff.IsIntern,
		&row.staff.IsActive,
		&row.staff.Email,
		&row.groupName,
	)
}

func (r *Repository) querySnapshotRows(ctx context.Context, query string, args []any, visit func(domain.ShiftEntry, domain.Staff, *domain.Group)) error {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row snapshotRow
		if err := rows.Scan(row.dst()...); err != nil {
			return err
		}

		entry, err := row.toEntry()
		if err != nil {
			return err
		}

		staff := row.staff
		staff.ID = entry.StaffID
		var group *domain.Group
		if staff.GroupID != nil && row.groupName.Valid {
			staff.GroupName = row.groupName.String
			group = &domain.Group{ID: *staff.GroupID, Name: row.groupName.String}
		}

		visit(entry, staff, group)
	}

	return rows.Err()
}

// EntriesForWeek loads every entry of the week with its staff and group records.
// An unknown week yields an empty snapshot.
func (r *Repository) EntriesForWeek(ctx context.Context, weekNumber, year int) (*roster.WeekSnapshot, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	snapshot := &roster.WeekSnapshot{
		Entries: make([]domain.ShiftEntry, 0),
		Staff:   make(map[int64]domain.Staff),
		Groups:  make(map[int64]domain.Group),
	}

	week, err := r.getWeeklyScheduleByWeek(ctx, weekNumber, year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			snapshot.Week = domain.NewWeekPeriod(year, weekNumber)
			return snapshot, nil
		}
		return nil, err
	}
	snapshot.Week = *week

	query := `SELECT ` + snapshotColumns + entryViewFrom + `
		WHERE se.weekly_schedule_id = $1
		ORDER BY s.full_name, se.day_of_week
	`

	err = r.querySnapshotRows(ctx, query, []any{week.ID}, func(entry domain.ShiftEntry, staff domain.Staff, group *domain.Group) {
		snapshot.Entries = append(snapshot.Entries, entry)
		snapshot.Staff[staff.ID] = staff
		if group != nil {
			snapshot.Groups[group.ID] = *group
		}
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// EntriesForDate loads every entry on the given calendar date.
func (r *Repository) EntriesForDate(ctx context.Context, date time.Time) (*roster.DaySnapshot, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	snapshot := &roster.DaySnapshot{
		Date:    domain.DateOf(date),
		Entries: make([]domain.ShiftEntry, 0),
		Staff:   make(map[int64]domain.Staff),
	}

	query := `SELECT ` + snapshotColumns + entryViewFrom + `
		WHERE se.work_date = $1
		ORDER BY s.full_name
	`

	err := r.querySnapshotRows(ctx, query, []any{snapshot.Date}, func(entry domain.ShiftEntry, staff domain.Staff, _ *domain.Group) {
		snapshot.Entries = append(snapshot.Entries, entry)
		snapshot.Staff[staff.ID] = staff
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
