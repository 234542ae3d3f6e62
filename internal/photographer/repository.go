package photographer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Photographer) error
	GetByID(ctx context.Context, id string) (*Photographer, error)
	List(ctx context.Context, filter Filter) ([]*Photographer, int, error)
	Update(ctx context.Context, p *Photographer) error
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, img *PortfolioImage) error
	GetImage(ctx context.Context, id string) (*PortfolioImage, error)
	ListImages(ctx context.Context, photographerID string) ([]*PortfolioImage, error)
	DeleteImage(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Photographer) error {
	const query = `
		INSERT INTO public.photographers (display_name, bio, specialty, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, p.DisplayName, p.Bio, p.Specialty, p.IsActive).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create photographer failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Photographer, error) {
	const query = `
		SELECT id, display_name, bio, specialty, is_active, created_at
		FROM public.photographers
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var p Photographer
	if err := row.Scan(&p.ID, &p.DisplayName, &p.Bio, &p.Specialty, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get photographer failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Photographer, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, display_name, bio, specialty, is_active, created_at, count(*) OVER() as total_count
		FROM public.photographers
		WHERE 1=1
	`
	paramIndex := 1

	if filter.ActiveOnly {
		queryBase += " AND is_active = true"
	}
	if filter.Specialty != "" {
		queryBase += fmt.Sprintf(" AND specialty = $%d", paramIndex)
		args = append(args, filter.Specialty)
		paramIndex++
	}

	queryBase += " ORDER BY display_name ASC"

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
		return nil, 0, fmt.Errorf("list photographers failed: %w", err)
	}
	defer rows.Close()

	var photographers []*Photographer
	var total int

	for rows.Next() {
		var p Photographer
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Bio, &p.Specialty, &p.IsActive, &p.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan photographer failed: %w", err)
		}
		photographers = append(photographers, &p)
	}

	return photographers, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Photographer) error {
	const query = `
		UPDATE public.photographers
		SET display_name = $1, bio = $2, specialty = $3, is_active = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, p.DisplayName, p.Bio, p.Specialty, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("update photographer failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.photographers WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete photographer failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddImage(ctx context.Context, img *PortfolioImage) error {
	const query = `
		INSERT INTO public.photographer_images (photographer_id, path, thumbnail_path, caption)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, img.PhotographerID, img.Path, img.ThumbnailPath, img.Caption).
		Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("add portfolio image failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetImage(ctx context.Context, id string) (*PortfolioImage, error) {
	const query = `
		SELECT id, photographer_id, path, thumbnail_path, caption, created_at
		FROM public.photographer_images
		WHERE id = $1
	`
	var img PortfolioImage
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&img.ID, &img.PhotographerID, &img.Path, &img.ThumbnailPath, &img.Caption, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("get portfolio image failed: %w", err)
	}
	return &img, nil
}

func (r *pgxRepository) ListImages(ctx context.Context, photographerID string) ([]*PortfolioImage, error) {
	const query = `
		SELECT id, photographer_id, path, thumbnail_path, caption, created_at
		FROM public.photographer_images
		WHERE photographer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, photographerID)
	if err != nil {
		return nil, fmt.Errorf("list portfolio images failed: %w", err)
	}
	defer rows.Close()

	var images []*PortfolioImage
	for rows.Next() {
		var img PortfolioImage
		if err := rows.Scan(&img.ID, &img.PhotographerID, &img.Path, &img.ThumbnailPath, &img.Caption, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan portfolio image failed: %w", err)
		}
		images = append(images, &img)
	}
	return images, nil
}

func (r *pgxRepository) DeleteImage(ctx context.Context, id string) error {
	const query = `DELETE FROM public.photographer_images WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete portfolio image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrImageNotFound
	}
	return nil
}
