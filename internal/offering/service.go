package offering

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	MaxParticipants int
	Price           float64
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	MaxParticipants *int
	Price           *float64
	IsActive        *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Offering, error)
	GetByID(ctx context.Context, id string) (*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Offering, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.MaxParticipants < 1 {
		return nil, ErrInvalidCapacity
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	o := &Offering{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Offering, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Offering, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		o.Name = *req.Name
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		o.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants < 1 {
			return nil, ErrInvalidCapacity
		}
		o.MaxParticipants = *req.MaxParticipants
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		o.Price = *req.Price
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
