package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shuttercal/booking-backend/internal/booking"
)

// Recorder turns booking lifecycle events into notification rows for the
// affected client. It implements booking.Publisher; failures are logged and
// absorbed so a notification problem never fails a booking operation.
type Recorder struct {
	repo Repository
	log  *zap.Logger
}

func NewRecorder(repo Repository, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{repo: repo, log: log}
}

func (r *Recorder) Publish(ctx context.Context, e booking.Event) {
	msg := messageFor(e)
	if msg == "" {
		return
	}

	n := &Notification{
		UserID:    e.ClientID,
		BookingID: e.BookingID,
		Kind:      e.Key,
		Message:   msg,
	}

	if err := r.repo.Create(ctx, n); err != nil {
		r.log.Error("failed to record booking notification",
			zap.String("booking_id", e.BookingID),
			zap.String("kind", e.Key),
			zap.Error(err))
	}
}

func messageFor(e booking.Event) string {
	when := e.StartTime.Format("2006-01-02 15:04")

	switch e.Key {
	case booking.EventCreated:
		return fmt.Sprintf("Your booking for %s was received and is awaiting approval.", when)
	case booking.EventConfirmed:
		return fmt.Sprintf("Your booking for %s has been confirmed.", when)
	case booking.EventCancelled:
		if e.Reason != "" {
			return fmt.Sprintf("Your booking for %s was cancelled: %s", when, e.Reason)
		}
		return fmt.Sprintf("Your booking for %s was cancelled.", when)
	case booking.EventCompleted:
		return "Your session has been marked as completed. Thank you!"
	case booking.EventRescheduled:
		return fmt.Sprintf("Your booking was moved to %s and is awaiting re-approval.", when)
	case booking.EventDeleted:
		// No inbox entry for hard deletes.
		return ""
	}
	return ""
}
