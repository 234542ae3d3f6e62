package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	Update(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = `id, email, password_hash, display_name, phone, created_at, last_login_at, is_active, is_admin`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Phone,
		&u.CreatedAt, &u.LastLoginAt, &u.IsActive, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user failed: %w", err)
	}
	return &u, nil
}

func (r *pgxRepository) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO public.users (email, password_hash, display_name, phone, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.DisplayName, u.Phone, u.IsActive, u.IsAdmin).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var args []interface{}
	queryBase := `
		SELECT ` + userColumns + `, count(*) OVER() as total_count
		FROM public.users
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Email != "" {
		queryBase += fmt.Sprintf(" AND email ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Email+"%")
		paramIndex++
	}
	if filter.IsActive != nil {
		queryBase += fmt.Sprintf(" AND is_active = $%d", paramIndex)
		args = append(args, *filter.IsActive)
		paramIndex++
	}

	queryBase += " ORDER BY created_at DESC"

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	queryBase += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	var users []*User
	var total int

	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Phone,
			&u.CreatedAt, &u.LastLoginAt, &u.IsActive, &u.IsAdmin, &total); err != nil {
			return nil, 0, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, &u)
	}

	return users, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, u *User) error {
	const query = `
		UPDATE public.users
		SET display_name = $1, phone = $2, is_active = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, u.DisplayName, u.Phone, u.IsActive, u.ID)
	if err != nil {
		return fmt.Errorf("update user failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE public.users SET last_login_at = $1 WHERE id = $2`
	if _, err := r.pool.Exec(ctx, query, at, id); err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}
