package offering

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Offering) error
	GetByID(ctx context.Context, id string) (*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, int, error)
	Update(ctx context.Context, o *Offering) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *Offering) error {
	const query = `
		INSERT INTO public.offerings (name, description, duration_minutes, max_participants, price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		o.Name, o.Description, o.DurationMinutes, o.MaxParticipants, o.Price, o.IsActive).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create offering failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Offering, error) {
	const query = `
		SELECT id, name, description, duration_minutes, max_participants, price, is_active, created_at, updated_at
		FROM public.offerings
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var o Offering
	if err := row.Scan(&o.ID, &o.Name, &o.Description, &o.DurationMinutes,
		&o.MaxParticipants, &o.Price, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offering failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Offering, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, name, description, duration_minutes, max_participants, price, is_active, created_at, updated_at,
		       count(*) OVER() as total_count
		FROM public.offerings
		WHERE 1=1
	`
	paramIndex := 1

	if filter.ActiveOnly {
		queryBase += " AND is_active = true"
	}
	if filter.Keyword != "" {
		queryBase += fmt.Sprintf(" AND name ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Keyword+"%")
		paramIndex++
	}

	queryBase += " ORDER BY name ASC"

	// Pagination
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
		return nil, 0, fmt.Errorf("list offerings failed: %w", err)
	}
	defer rows.Close()

	var offerings []*Offering
	var total int

	for rows.Next() {
		var o Offering
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.DurationMinutes,
			&o.MaxParticipants, &o.Price, &o.IsActive, &o.CreatedAt, &o.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan offering failed: %w", err)
		}
		offerings = append(offerings, &o)
	}

	return offerings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, o *Offering) error {
	const query = `
		UPDATE public.offerings
		SET name = $1, description = $2, duration_minutes = $3, max_participants = $4,
		    price = $5, is_active = $6, updated_at = now()
		WHERE id = $7
	`
	ct, err := r.pool.Exec(ctx, query,
		o.Name, o.Description, o.DurationMinutes, o.MaxParticipants, o.Price, o.IsActive, o.ID)
	if err != nil {
		return fmt.Errorf("update offering failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.offerings WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete offering failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
