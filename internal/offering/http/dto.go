package http

import (
	"time"

	"github.com/shuttercal/booking-backend/internal/offering"
	"github.com/shuttercal/booking-backend/internal/pkg/request"
)

// ListOfferingsRequest defines query parameters for listing offerings.
type ListOfferingsRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
	All     bool   `form:"all"` // admins may include inactive offerings
}

type OfferingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxParticipants int       `json:"max_participants"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewOfferingResponse(o *offering.Offering) OfferingResponse {
	return OfferingResponse{
		ID:              o.ID,
		Name:            o.Name,
		Description:     o.Description,
		DurationMinutes: o.DurationMinutes,
		MaxParticipants: o.MaxParticipants,
		Price:           o.Price,
		IsActive:        o.IsActive,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type CreateOfferingRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
	MaxParticipants int     `json:"max_participants" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"min=0"`
}

type UpdateOfferingRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=1"`
	MaxParticipants *int     `json:"max_participants" binding:"omitempty,min=1"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	IsActive        *bool    `json:"is_active"`
}
