package notification

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("notification not found")
)

// Notification is a per-user record of a booking lifecycle change.
// Delivery (email, push) is out of scope; this is the inbox the frontend
// polls or fetches on demand.
type Notification struct {
	ID        string
	UserID    string
	BookingID string
	Kind      string // booking event key, e.g. "booking.confirmed"
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// Filter defines parameters for listing notifications.
type Filter struct {
	UserID     string
	UnreadOnly bool
	Page       int
	PageSize   int
}
