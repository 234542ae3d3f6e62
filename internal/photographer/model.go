package photographer

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("photographer not found")
	ErrEmptyName     = errors.New("display name cannot be empty")
	ErrImageNotFound = errors.New("portfolio image not found")
)

// Photographer is the human resource that fulfills bookings.
// Bookings may also be created unassigned ("to be determined").
type Photographer struct {
	ID          string
	DisplayName string
	Bio         string
	Specialty   string
	IsActive    bool
	CreatedAt   time.Time
}

// PortfolioImage is a showcase image attached to a photographer profile.
type PortfolioImage struct {
	ID             string
	PhotographerID string
	Path           string
	ThumbnailPath  string
	Caption        string
	CreatedAt      time.Time
}

// Filter defines parameters for listing photographers.
type Filter struct {
	ActiveOnly bool
	Specialty  string
	Page       int
	PageSize   int
}
