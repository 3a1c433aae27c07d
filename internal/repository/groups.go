package repository

import (
	"context"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func (r *Repository) GetAllGroups(activeOnly bool) ([]*domain.Group, error) {
	query := `
		SELECT id, name, description, is_active, created_by, created_at, updated_by, updated_at, version
		FROM age_groups
		WHERE is_active OR NOT $1
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		group := &domain.Group{}
		dst := []any{&group.ID, &group.Name, &group.Description, &group.IsActive, &group.CreatedBy, &group.CreatedAt, &group.UpdatedBy, &group.UpdatedAt, &group.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *Repository) GetGroupByID(id int64) (*domain.Group, error) {
	query := `
		SELECT name, description, is_active, created_by, created_at, updated_by, updated_at, version
		FROM age_groups WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	group := &domain.Group{
		ID: id,
	}

	dst := []any{&group.Name, &group.Description, &group.IsActive, &group.CreatedBy, &group.CreatedAt, &group.UpdatedBy, &group.UpdatedAt, &group.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return group, nil
}

func (r *Repository) CreateGroup(group *domain.Group, actor string) error {
	query := `
		INSERT INTO age_groups (name, description, is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_by, created_at, updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{group.Name, group.Description, group.IsActive, actor}
	dst := []any{&group.ID, &group.CreatedBy, &group.CreatedAt, &group.UpdatedBy, &group.UpdatedAt, &group.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateGroup(group *domain.Group, actor string) error {
	query := `
		UPDATE age_groups
		SET
			name = $1,
			description = $2,
			is_active = $3,
			updated_by = $4,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING updated_by, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{group.Name, group.Description, group.IsActive, actor, group.ID, group.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&group.UpdatedBy, &group.UpdatedAt, &group.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGroup(id int64) error {
	query := `
		DELETE FROM age_groups WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
