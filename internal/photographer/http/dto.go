package http

import (
	"time"

	"github.com/shuttercal/booking-backend/internal/photographer"
	"github.com/shuttercal/booking-backend/internal/pkg/request"
)

// ListPhotographersRequest defines query parameters for listing photographers.
type ListPhotographersRequest struct {
	request.ListParams
	Specialty string `form:"specialty"`
	All       bool   `form:"all"` // admins may include inactive photographers
}

type PhotographerResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Specialty   string    `json:"specialty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPhotographerResponse(p *photographer.Photographer) PhotographerResponse {
	return PhotographerResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Specialty:   p.Specialty,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

type CreatePhotographerRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Bio         string `json:"bio"`
	Specialty   string `json:"specialty"`
}

type UpdatePhotographerRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Specialty   *string `json:"specialty"`
	IsActive    *bool   `json:"is_active"`
}

type PortfolioImageResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Caption      string    `json:"caption"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPortfolioImageResponse(img *photographer.PortfolioImage) PortfolioImageResponse {
	return PortfolioImageResponse{
		ID:           img.ID,
		URL:          "/media/" + img.Path,
		ThumbnailURL: "/media/" + img.ThumbnailPath,
		Caption:      img.Caption,
		CreatedAt:    img.CreatedAt,
	}
}
