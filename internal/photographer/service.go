package photographer

import (
	"context"
	"strings"
)

type CreateRequest struct {
	DisplayName string
	Bio         string
	Specialty   string
}

type UpdateRequest struct {
	DisplayName *string
	Bio         *string
	Specialty   *string
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Photographer, error)
	GetByID(ctx context.Context, id string) (*Photographer, error)
	List(ctx context.Context, filter Filter) ([]*Photographer, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Photographer, error)
	Delete(ctx context.Context, id string) error

	AddPortfolioImage(ctx context.Context, img *PortfolioImage) error
	ListPortfolio(ctx context.Context, photographerID string) ([]*PortfolioImage, error)
	RemovePortfolioImage(ctx context.Context, photographerID, imageID string) (*PortfolioImage, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Photographer, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrEmptyName
	}

	p := &Photographer{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Specialty:   req.Specialty,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Photographer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Photographer, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Photographer, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, ErrEmptyName
		}
		p.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Specialty != nil {
		p.Specialty = *req.Specialty
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AddPortfolioImage(ctx context.Context, img *PortfolioImage) error {
	if _, err := s.repo.GetByID(ctx, img.PhotographerID); err != nil {
		return err
	}
	return s.repo.AddImage(ctx, img)
}

func (s *service) ListPortfolio(ctx context.Context, photographerID string) ([]*PortfolioImage, error) {
	if _, err := s.repo.GetByID(ctx, photographerID); err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx, photographerID)
}

func (s *service) RemovePortfolioImage(ctx context.Context, photographerID, imageID string) (*PortfolioImage, error) {
	img, err := s.repo.GetImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if img.PhotographerID != photographerID {
		return nil, ErrImageNotFound
	}
	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return nil, err
	}
	return img, nil
}
