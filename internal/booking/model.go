package booking

import (
	"net/http"
	"time"

	"github.com/shuttercal/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrOfferingNotFound     = apperror.New(http.StatusNotFound, "offering not found")
	ErrPhotographerNotFound = apperror.New(http.StatusNotFound, "photographer not found")
	ErrSlotUnavailable      = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTransition    = apperror.New(http.StatusConflict, "booking status does not allow this operation")
	ErrPastDate             = apperror.New(http.StatusBadRequest, "cannot book a time in the past")
	ErrOutsideHours         = apperror.New(http.StatusBadRequest, "requested time is outside operating hours")
	ErrUnalignedSlot        = apperror.New(http.StatusBadRequest, "start time is not aligned to the slot grid")
	ErrInvalidOffering      = apperror.New(http.StatusBadRequest, "offering is not bookable")
	ErrInvalidParticipants  = apperror.New(http.StatusBadRequest, "participants count is out of range")
	ErrPermissionDenied     = apperror.New(http.StatusForbidden, "permission denied")
	ErrConflict             = apperror.New(http.StatusConflict, "booking was modified concurrently, please retry")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation of an offering at a concrete time window.
// PhotographerID is nil while the assignment is still to be determined;
// conflicts are then evaluated at the offering level.
type Booking struct {
	ID                 string
	OfferingID         string
	OfferingName       string
	ClientID           string
	ClientName         string
	PhotographerID     *string
	PhotographerName   *string
	StartTime          time.Time
	EndTime            time.Time
	Participants       int
	Status             Status
	CancellationReason string // set only when Status is cancelled
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Window returns the booking's occupied time window.
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ClientID       string
	OfferingID     string
	PhotographerID string
	Status         string
	StartTime      *time.Time // bookings ending after this time
	EndTime        *time.Time // bookings starting before this time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}
