package http

import (
	"time"

	"github.com/shuttercal/booking-backend/internal/notification"
	"github.com/shuttercal/booking-backend/internal/pkg/request"
)

// ListNotificationsRequest defines query parameters for listing notifications.
type ListNotificationsRequest struct {
	request.ListParams
	UnreadOnly bool `form:"unread_only"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Kind:      n.Kind,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
