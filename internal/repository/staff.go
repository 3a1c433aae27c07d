package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

type StaffFilter struct {
	ActiveOnly bool
	GroupID    *int64
	Interns    *bool
}

const staffColumns = `
	s.id, s.first_name, s.last_name, s.full_name, s.role, s.group_id, COALESCE(g.name, ''),
	s.employment_type, s.weekly_hours, s.email, s.phone, s.is_intern, s.is_active,
	s.hire_date, s.termination_date, s.created_by, s.created_at, s.updated_by, s.updated_at, s.version
`

func scanStaff(row interface{ Scan(...any) error }) (*domain.Staff, error) {
	var (
		staff       domain.Staff
		weeklyHours sql.NullFloat64
	)

	dst := []any{
		&staff.ID,
		&staff.FirstName,
		&staff.LastName,
		&staff.FullName,
		&staff.Role,
		&staff.GroupID,
		&staff.GroupName,
		&staff.EmploymentType,
		&weeklyHours,
		&staff.Email,
		&staff.Phone,
		&staff.IsIntern,
		&staff.IsActive,
		&staff.HireDate,
		&staff.TerminationDate,
		&staff.CreatedBy,
		&staff.CreatedAt,
		&staff.UpdatedBy,
		&staff.UpdatedAt,
		&staff.Version,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	if weeklyHours.Valid {
		staff.WeeklyHours = &weeklyHours.Float64
	}

	return &staff, nil
}

func (r *Repository) GetAllStaff(filter StaffFilter) ([]*domain.Staff, error) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if filter.ActiveOnly {
		conditions = append(conditions, "s.is_active")
	}
	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		conditions = append(conditions, fmt.Sprintf("s.group_id = $%d", len(args)))
	}
	if filter.Interns != nil {
		args = append(args, *filter.Interns)
		conditions = append(conditions, fmt.Sprintf("s.is_intern = $%d", len(args)))
	}

	query := `SELECT ` + staffColumns + ` FROM staff s LEFT JOIN age_groups g ON g.id = s.group_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.full_name"

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffList := make([]*domain.Staff, 0)
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staffList = append(staffList, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffList, nil
}

func (r *Repository) GetStaffByID(id int64) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff s LEFT JOIN age_groups g ON g.id = s.group_id WHERE s.id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanStaff(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) CreateStaff(staff *domain.Staff, actor string) error {
	query := `
		INSERT INTO staff (
			first_name,
			last_name,
			full_name,
			role,
			group_id,
			employment_type,
			weekly_hours,
			email,
			phone,
			is_intern,
			is_active,
			hire_date,
			termination_date,
			created_by,
			updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id, created_by, created_at, updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		staff.FirstName,
		staff.LastName,
		staff.FullName,
		staff.Role,
		staff.GroupID,
		staff.EmploymentType,
		staff.WeeklyHours,
		staff.Email,
		staff.Phone,
		staff.IsIntern,
		staff.IsActive,
		staff.HireDate,
		staff.TerminationDate,
		actor,
	}
	dst := []any{&staff.ID, &staff.CreatedBy, &staff.CreatedAt, &staff.UpdatedBy, &staff.UpdatedAt, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaff(staff *domain.Staff, actor string) error {
	query := `
		UPDATE staff
		SET
			first_name = $1,
			last_name = $2,
			full_name = $3,
			role = $4,
			group_id = $5,
			employment_type = $6,
			weekly_hours = $7,
			email = $8,
			phone = $9,
			is_intern = $10,
			is_active = $11,
			hire_date = $12,
			termination_date = $13,
			updated_by = $14,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $15 AND version = $16
		RETURNING updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		staff.FirstName,
		staff.LastName,
		staff.FullName,
		staff.Role,
		staff.GroupID,
		staff.EmploymentType,
		staff.WeeklyHours,
		staff.Email,
		staff.Phone,
		staff.IsIntern,
		staff.IsActive,
		staff.HireDate,
		staff.TerminationDate,
		actor,
		staff.ID,
		staff.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.UpdatedBy, &staff.UpdatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(id int64) error {
	query := `
		DELETE FROM staff WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

// CreateStaffBatch inserts all staff members in one transaction, skipping names that already exist.
func (r *Repository) CreateStaffBatch(staffList []*domain.Staff, actor string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO staff (
			first_name, last_name, full_name, role, group_id, employment_type, weekly_hours,
			email, phone, is_intern, is_active, hire_date, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT ON CONSTRAINT staff_full_name_key DO NOTHING
	`

	inserted := 0
	for _, staff := range staffList {
		args := []any{
			staff.FirstName,
			staff.LastName,
			staff.FullName,
			staff.Role,
			staff.GroupID,
			staff.EmploymentType,
			staff.WeeklyHours,
			staff.Email,
			staff.Phone,
			staff.IsIntern,
			staff.IsActive,
			staff.HireDate,
			actor,
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return inserted, nil
}
