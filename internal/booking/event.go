package booking

import (
	"context"
	"time"
)

// Event keys follow the booking.<action> convention.
const (
	EventCreated     = "booking.created"
	EventConfirmed   = "booking.confirmed"
	EventCancelled   = "booking.cancelled"
	EventCompleted   = "booking.completed"
	EventRescheduled = "booking.rescheduled"
	EventDeleted     = "booking.deleted"
)

// Event describes a committed lifecycle change of a booking.
type Event struct {
	Key            string
	BookingID      string
	ClientID       string
	OfferingID     string
	PhotographerID *string
	StartTime      time.Time
	EndTime        time.Time
	Status         Status
	Reason         string
	OccurredAt     time.Time
}

// Publisher receives events after a transition has committed.
// Implementations must not fail the request path: delivery problems are
// theirs to log and absorb.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
