package http

import (
	"time"

	"github.com/shuttercal/booking-backend/internal/booking"
	"github.com/shuttercal/booking-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	OfferingID     string     `form:"offering_id" binding:"omitempty,uuid"`
	PhotographerID string     `form:"photographer_id" binding:"omitempty,uuid"`
	Status         string     `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	UserID         string     `form:"user_id" binding:"omitempty,uuid"`
	StartTimeFrom  *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo    *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy         string     `form:"sort_by" binding:"omitempty,oneof=start_time end_time created_at status"`
}

// AvailableSlotsRequest defines query parameters for the slot listing.
type AvailableSlotsRequest struct {
	Date           string `form:"date" binding:"required,datetime=2006-01-02"`
	PhotographerID string `form:"photographer_id" binding:"omitempty,uuid"`
}

// SlotResponse is one bookable time window.
type SlotResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func NewSlotResponse(w booking.TimeWindow) SlotResponse {
	return SlotResponse{StartTime: w.Start, EndTime: w.End}
}

type OfferingTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PhotographerTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID                 string           `json:"id"`
	Offering           OfferingTag      `json:"offering"`
	Client             UserTag          `json:"client"`
	Photographer       *PhotographerTag `json:"photographer"` // null while unassigned
	StartTime          time.Time        `json:"start_time"`
	EndTime            time.Time        `json:"end_time"`
	Participants       int              `json:"participants"`
	Status             string           `json:"status"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	Notes              string           `json:"notes,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		Offering:           OfferingTag{ID: b.OfferingID, Name: b.OfferingName},
		Client:             UserTag{ID: b.ClientID, Name: b.ClientName},
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Participants:       b.Participants,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if b.PhotographerID != nil {
		tag := PhotographerTag{ID: *b.PhotographerID}
		if b.PhotographerName != nil {
			tag.Name = *b.PhotographerName
		}
		resp.Photographer = &tag
	}
	return resp
}

type CreateBookingRequest struct {
	OfferingID     string  `json:"offering_id" binding:"required,uuid"`
	PhotographerID *string `json:"photographer_id" binding:"omitempty,uuid"`
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" binding:"required,datetime=15:04"`
	Participants   int     `json:"participants" binding:"required,min=1"`
	Notes          string  `json:"notes"`
}

type RescheduleBookingRequest struct {
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" binding:"required,datetime=15:04"`
	Notes     *string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

// parseDayClock combines a "2006-01-02" date and a "15:04" clock time into
// a UTC timestamp.
func parseDayClock(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
