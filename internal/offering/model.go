package offering

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("offering not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidCapacity = errors.New("max participants must be at least 1")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

// Offering represents a bookable photography service
// (e.g. "Portrait Session", "Wedding Package").
type Offering struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	MaxParticipants int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration returns the session length as a time.Duration.
func (o *Offering) Duration() time.Duration {
	return time.Duration(o.DurationMinutes) * time.Minute
}

// Filter defines parameters for listing offerings.
type Filter struct {
	ActiveOnly bool
	Keyword    string
	Page       int
	PageSize   int
}
