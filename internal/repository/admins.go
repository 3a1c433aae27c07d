package repository

import (
	"context"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func (r *Repository) GetAdminByID(id int64) (*domain.Admin, error) {
	query := `
		SELECT username, password_hash, full_name, email, role, is_active, last_login, created_at, version
		FROM admins WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	admin := &domain.Admin{
		ID: id,
	}

	dst := []any{&admin.Username, &admin.PasswordHash, &admin.FullName, &admin.Email, &admin.Role, &admin.IsActive, &admin.LastLogin, &admin.CreatedAt, &admin.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return admin, nil
}

func (r *Repository) GetAdminByUsername(username string) (*domain.Admin, error) {
	query := `
		SELECT id, password_hash, full_name, email, role, is_active, last_login, created_at, version
		FROM admins WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	admin := &domain.Admin{
		Username: username,
	}

	dst := []any{&admin.ID, &admin.PasswordHash, &admin.FullName, &admin.Email, &admin.Role, &admin.IsActive, &admin.LastLogin, &admin.CreatedAt, &admin.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return admin, nil
}

func (r *Repository) UpdateAdmin(admin *domain.Admin) error {
	query := `
		UPDATE admins
		SET
			password_hash = $1,
			email = $2,
			role = $3,
			is_active = $4,
			last_login = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING username, full_name, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{admin.PasswordHash, admin.Email, admin.Role, admin.IsActive, admin.LastLogin, admin.ID, admin.Version}
	dst := []any{&admin.Username, &admin.FullName, &admin.CreatedAt, &admin.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateAdmin(admin *domain.Admin) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO admins (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	args := []any{admin.Username, admin.PasswordHash, admin.FullName, admin.Email, admin.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &admin.IsActive, &admin.CreatedAt, &admin.Version); err != nil {
		return err
	}

	return nil
}
