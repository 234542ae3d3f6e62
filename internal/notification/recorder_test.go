package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttercal/booking-backend/internal/booking"
)

type fakeNotificationRepo struct {
	created []*Notification
	failErr error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *Notification) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, filter Filter) ([]*Notification, int, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	return nil
}

func testEvent(key, reason string) booking.Event {
	return booking.Event{
		Key:       key,
		BookingID: "booking-1",
		ClientID:  "client-1",
		StartTime: time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC),
		Reason:    reason,
	}
}

func TestRecorderPublish(t *testing.T) {
	repo := &fakeNotificationRepo{}
	rec := NewRecorder(repo, nil)
	ctx := context.Background()

	rec.Publish(ctx, testEvent(booking.EventCreated, ""))
	rec.Publish(ctx, testEvent(booking.EventConfirmed, ""))
	rec.Publish(ctx, testEvent(booking.EventCancelled, "studio closed"))

	require.Len(t, repo.created, 3)

	assert.Equal(t, "client-1", repo.created[0].UserID)
	assert.Equal(t, "booking-1", repo.created[0].BookingID)
	assert.Equal(t, booking.EventCreated, repo.created[0].Kind)
	assert.Contains(t, repo.created[0].Message, "awaiting approval")

	assert.Contains(t, repo.created[1].Message, "confirmed")
	assert.Contains(t, repo.created[2].Message, "studio closed")
}

func TestRecorderIgnoresDeletions(t *testing.T) {
	repo := &fakeNotificationRepo{}
	rec := NewRecorder(repo, nil)

	rec.Publish(context.Background(), testEvent(booking.EventDeleted, ""))

	assert.Empty(t, repo.created, "deletions do not notify")
}

func TestRecorderAbsorbsRepositoryErrors(t *testing.T) {
	repo := &fakeNotificationRepo{failErr: errors.New("db down")}
	rec := NewRecorder(repo, nil)

	// Must not panic or propagate; publishing is best effort.
	rec.Publish(context.Background(), testEvent(booking.EventCreated, ""))
	assert.Empty(t, repo.created)
}
