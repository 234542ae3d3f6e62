package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttercal/booking-backend/internal/offering"
	"github.com/shuttercal/booking-backend/internal/photographer"
)

// fakeRepo is an in-memory Repository that mirrors the transactional
// conflict check of the pgx implementation.
type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int

	// failWith is drained one entry per write, letting tests inject
	// transient conflicts.
	failWith []error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (r *fakeRepo) popFailure() error {
	if len(r.failWith) == 0 {
		return nil
	}
	err := r.failWith[0]
	r.failWith = r.failWith[1:]
	return err
}

// contends mirrors the SQL predicate: an assigned booking contends with the
// photographer's rows and with unassigned rows of the same offering; an
// unassigned booking contends with every row of the offering.
func contends(b, other *Booking) bool {
	if other.Status == StatusCancelled {
		return false
	}
	if !b.Window().Overlaps(other.Window()) {
		return false
	}
	if b.PhotographerID != nil {
		if other.PhotographerID != nil {
			return *other.PhotographerID == *b.PhotographerID
		}
		return other.OfferingID == b.OfferingID
	}
	return other.OfferingID == b.OfferingID
}

func (r *fakeRepo) checkConflict(b *Booking, excludeID string) error {
	for _, other := range r.bookings {
		if other.ID == excludeID {
			continue
		}
		if contends(b, other) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

func (r *fakeRepo) Create(ctx context.Context, b *Booking) error {
	if err := r.popFailure(); err != nil {
		return err
	}
	if err := r.checkConflict(b, ""); err != nil {
		return err
	}
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if filter.ClientID != "" && b.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		// Half-open range semantics, as the SQL implementation.
		if filter.StartTime != nil && !b.EndTime.After(*filter.StartTime) {
			continue
		}
		if filter.EndTime != nil && !b.StartTime.Before(*filter.EndTime) {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListForWindow(ctx context.Context, offeringID string, photographerID *string, from, to time.Time) ([]*Booking, error) {
	probe := &Booking{
		OfferingID:     offeringID,
		PhotographerID: photographerID,
		StartTime:      from,
		EndTime:        to,
	}
	var out []*Booking
	for _, b := range r.bookings {
		if b.Status != StatusCancelled && contends(probe, b) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, b *Booking, expected Status) error {
	if err := r.popFailure(); err != nil {
		return err
	}
	stored, ok := r.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	// Compare-and-set, as the SQL implementation's WHERE status = expected.
	if stored.Status != expected {
		return ErrConflict
	}
	stored.Status = b.Status
	stored.CancellationReason = b.CancellationReason
	return nil
}

func (r *fakeRepo) UpdateSchedule(ctx context.Context, b *Booking) error {
	if err := r.popFailure(); err != nil {
		return err
	}
	if err := r.checkConflict(b, b.ID); err != nil {
		return err
	}
	stored, ok := r.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	// The SQL implementation only matches pending or confirmed rows.
	if stored.Status.IsTerminal() {
		return ErrConflict
	}
	stored.StartTime = b.StartTime
	stored.EndTime = b.EndTime
	stored.Status = b.Status
	stored.Notes = b.Notes
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// fakeOfferings serves a fixed catalogue.
type fakeOfferings struct {
	items map[string]*offering.Offering
}

func (f *fakeOfferings) Create(ctx context.Context, req offering.CreateRequest) (*offering.Offering, error) {
	return nil, nil
}

func (f *fakeOfferings) GetByID(ctx context.Context, id string) (*offering.Offering, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, offering.ErrNotFound
	}
	return o, nil
}

func (f *fakeOfferings) List(ctx context.Context, filter offering.Filter) ([]*offering.Offering, int, error) {
	return nil, 0, nil
}

func (f *fakeOfferings) Update(ctx context.Context, id string, req offering.UpdateRequest) (*offering.Offering, error) {
	return nil, nil
}

func (f *fakeOfferings) Delete(ctx context.Context, id string) error { return nil }

// fakePhotographers recognizes a fixed set of IDs.
type fakePhotographers struct {
	ids map[string]bool
}

func (f *fakePhotographers) Create(ctx context.Context, req photographer.CreateRequest) (*photographer.Photographer, error) {
	return nil, nil
}

func (f *fakePhotographers) GetByID(ctx context.Context, id string) (*photographer.Photographer, error) {
	if !f.ids[id] {
		return nil, photographer.ErrNotFound
	}
	return &photographer.Photographer{ID: id, IsActive: true}, nil
}

func (f *fakePhotographers) List(ctx context.Context, filter photographer.Filter) ([]*photographer.Photographer, int, error) {
	return nil, 0, nil
}

func (f *fakePhotographers) Update(ctx context.Context, id string, req photographer.UpdateRequest) (*photographer.Photographer, error) {
	return nil, nil
}

func (f *fakePhotographers) Delete(ctx context.Context, id string) error { return nil }

func (f *fakePhotographers) AddPortfolioImage(ctx context.Context, img *photographer.PortfolioImage) error {
	return nil
}

func (f *fakePhotographers) ListPortfolio(ctx context.Context, photographerID string) ([]*photographer.PortfolioImage, error) {
	return nil, nil
}

func (f *fakePhotographers) RemovePortfolioImage(ctx context.Context, photographerID, imageID string) (*photographer.PortfolioImage, error) {
	return nil, nil
}

// capturePublisher records every published event.
type capturePublisher struct {
	events []Event
}

func (p *capturePublisher) Publish(ctx context.Context, e Event) {
	p.events = append(p.events, e)
}

func (p *capturePublisher) keys() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Key
	}
	return out
}

const (
	offeringID     = "offering-1"
	clientID       = "client-1"
	otherClientID  = "client-2"
	photographerID = "photog-1"
)

type fixture struct {
	svc  *service
	repo *fakeRepo
	pub  *capturePublisher
}

// newFixture wires the service against in-memory collaborators with a fixed
// clock (2026-02-01 08:00 UTC) and one 60-minute offering.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newFakeRepo()
	pub := &capturePublisher{}
	offerings := &fakeOfferings{items: map[string]*offering.Offering{
		offeringID: {
			ID:              offeringID,
			Name:            "Portrait Session",
			DurationMinutes: 60,
			MaxParticipants: 4,
			IsActive:        true,
		},
	}}
	photographers := &fakePhotographers{ids: map[string]bool{photographerID: true}}

	svc := NewService(repo, offerings, photographers, testHours, pub, nil).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	}

	return &fixture{svc: svc, repo: repo, pub: pub}
}

// startAt returns a clock time on 2026-02-08, a week past the fixture clock.
func startAt(hour, min int) time.Time {
	return time.Date(2026, 2, 8, hour, min, 0, 0, time.UTC)
}

func createRequest(start time.Time) CreateRequest {
	return CreateRequest{
		ClientID:     clientID,
		OfferingID:   offeringID,
		StartTime:    start,
		Participants: 2,
	}
}

func TestServiceCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, startAt(10, 0), b.StartTime)
	assert.Equal(t, startAt(11, 0), b.EndTime, "end time is derived from the offering duration")
	assert.Equal(t, []string{EventCreated}, f.pub.keys())
}

func TestServiceCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "unknown offering",
			mutate:  func(r *CreateRequest) { r.OfferingID = "nope" },
			wantErr: ErrOfferingNotFound,
		},
		{
			name:    "unknown photographer",
			mutate:  func(r *CreateRequest) { id := "nope"; r.PhotographerID = &id },
			wantErr: ErrPhotographerNotFound,
		},
		{
			name:    "zero participants",
			mutate:  func(r *CreateRequest) { r.Participants = 0 },
			wantErr: ErrInvalidParticipants,
		},
		{
			name:    "too many participants",
			mutate:  func(r *CreateRequest) { r.Participants = 5 },
			wantErr: ErrInvalidParticipants,
		},
		{
			name:    "start in the past",
			mutate:  func(r *CreateRequest) { r.StartTime = time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC) },
			wantErr: ErrPastDate,
		},
		{
			name:    "start before opening",
			mutate:  func(r *CreateRequest) { r.StartTime = startAt(8, 0) },
			wantErr: ErrOutsideHours,
		},
		{
			name:    "session would run past closing",
			mutate:  func(r *CreateRequest) { r.StartTime = startAt(17, 30) },
			wantErr: ErrOutsideHours,
		},
		{
			name:    "start off the slot grid",
			mutate:  func(r *CreateRequest) { r.StartTime = startAt(10, 15) },
			wantErr: ErrUnalignedSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(startAt(10, 0))
			tt.mutate(&req)
			_, err := f.svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, f.pub.events, "no events for rejected requests")
}

func TestServiceCreateConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	// A pending booking already blocks the slot.
	_, err = f.svc.Create(ctx, CreateRequest{
		ClientID:     otherClientID,
		OfferingID:   offeringID,
		StartTime:    startAt(10, 30),
		Participants: 1,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// An adjacent slot is fine.
	_, err = f.svc.Create(ctx, CreateRequest{
		ClientID:     otherClientID,
		OfferingID:   offeringID,
		StartTime:    startAt(11, 0),
		Participants: 1,
	})
	assert.NoError(t, err)
}

func TestServiceCreateRetriesOnConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Two transient serialization conflicts, then success.
	f.repo.failWith = []error{ErrConflict, ErrConflict}

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
}

func TestServiceCreateGivesUpAfterRetries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.failWith = []error{ErrConflict, ErrConflict, ErrConflict}

	_, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, f.pub.events)
}

func TestServiceGetByIDPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, b.ID, clientID, false)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(ctx, b.ID, otherClientID, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.GetByID(ctx, b.ID, otherClientID, true)
	assert.NoError(t, err, "admins can read any booking")

	_, err = f.svc.GetByID(ctx, "missing", clientID, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	accepted, err := f.svc.Accept(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, accepted.Status)

	// A confirmed booking cannot be accepted again.
	_, err = f.svc.Accept(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	completed, err := f.svc.Complete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)

	// Completed is terminal.
	_, err = f.svc.Cancel(ctx, b.ID, clientID, false, "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Equal(t, []string{EventCreated, EventConfirmed, EventCompleted}, f.pub.keys())
}

func TestServiceCompleteRequiresConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestServiceReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	rejected, err := f.svc.Reject(ctx, b.ID, "double booked studio")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, rejected.Status)
	assert.Equal(t, "double booked studio", rejected.CancellationReason)

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "double booked studio", stored.CancellationReason)

	// The slot opens up again.
	_, err = f.svc.Create(ctx, CreateRequest{
		ClientID:     otherClientID,
		OfferingID:   offeringID,
		StartTime:    startAt(10, 0),
		Participants: 1,
	})
	assert.NoError(t, err)
}

func TestServiceCancelPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, b.ID, otherClientID, false, "not mine")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	cancelled, err := f.svc.Cancel(ctx, b.ID, clientID, false, "sick that day")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, "sick that day", cancelled.CancellationReason)
}

func TestServiceReschedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Accept(ctx, b.ID)
	require.NoError(t, err)

	moved, err := f.svc.Reschedule(ctx, b.ID, startAt(14, 0), clientID, false, nil)
	require.NoError(t, err)

	assert.Equal(t, startAt(14, 0), moved.StartTime)
	assert.Equal(t, startAt(15, 0), moved.EndTime)
	assert.Equal(t, StatusPending, moved.Status, "rescheduling a confirmed booking needs re-approval")
	assert.Equal(t, []string{EventCreated, EventConfirmed, EventRescheduled}, f.pub.keys())
}

func TestServiceRescheduleOntoOwnSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	// Overlapping its own current window is not a conflict.
	moved, err := f.svc.Reschedule(ctx, b.ID, startAt(10, 30), clientID, false, nil)
	require.NoError(t, err)
	assert.Equal(t, startAt(10, 30), moved.StartTime)
}

func TestServiceRescheduleConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, CreateRequest{
		ClientID:     otherClientID,
		OfferingID:   offeringID,
		StartTime:    startAt(14, 0),
		Participants: 1,
	})
	require.NoError(t, err)

	_, err = f.svc.Reschedule(ctx, b.ID, startAt(14, 0), clientID, false, nil)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, startAt(10, 0), stored.StartTime, "failed reschedule leaves the booking untouched")
}

func TestServiceRescheduleGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	_, err = f.svc.Reschedule(ctx, b.ID, startAt(14, 0), otherClientID, false, nil)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.Reschedule(ctx, b.ID, startAt(14, 15), clientID, false, nil)
	assert.ErrorIs(t, err, ErrUnalignedSlot)

	_, err = f.svc.Cancel(ctx, b.ID, clientID, false, "")
	require.NoError(t, err)

	_, err = f.svc.Reschedule(ctx, b.ID, startAt(14, 0), clientID, false, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cancelled bookings cannot move")
}

func TestServiceDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	err = f.svc.Delete(ctx, b.ID, otherClientID, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = f.svc.Delete(ctx, b.ID, clientID, false)
	require.NoError(t, err)

	_, err = f.repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{EventCreated, EventDeleted}, f.pub.keys())
}

func TestServiceAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	day := startAt(0, 0)

	slots, err := f.svc.AvailableSlots(ctx, offeringID, day, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 17)

	_, err = f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	slots, err = f.svc.AvailableSlots(ctx, offeringID, day, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 14)

	_, err = f.svc.AvailableSlots(ctx, "nope", day, nil)
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}

func TestServiceAvailableSlotsPerPhotographer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	day := startAt(0, 0)
	pid := photographerID

	req := createRequest(startAt(10, 0))
	req.PhotographerID = &pid
	_, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	slots, err := f.svc.AvailableSlots(ctx, offeringID, day, &pid)
	require.NoError(t, err)
	assert.Len(t, slots, 14, "the photographer's own bookings block their slots")

	unknown := "nope"
	_, err = f.svc.AvailableSlots(ctx, offeringID, day, &unknown)
	assert.ErrorIs(t, err, ErrPhotographerNotFound)
}

// staleReadRepo serves a fixed snapshot from the first GetByID and delegates
// afterwards, modeling a read that raced a concurrently committed write.
type staleReadRepo struct {
	*fakeRepo
	stale *Booking
	used  bool
}

func (r *staleReadRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	if !r.used && r.stale != nil && r.stale.ID == id {
		r.used = true
		copied := *r.stale
		return &copied, nil
	}
	return r.fakeRepo.GetByID(ctx, id)
}

func TestServiceAcceptAfterConcurrentCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	// Snapshot taken while still pending, then the cancel commits.
	stale := *b
	_, err = f.svc.Cancel(ctx, b.ID, clientID, false, "client called in")
	require.NoError(t, err)

	f.svc.repo = &staleReadRepo{fakeRepo: f.repo, stale: &stale}

	_, err = f.svc.Accept(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition,
		"a cancelled booking must not be confirmed from a stale read")

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
}

func TestServiceRescheduleAfterConcurrentCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)

	stale := *b
	_, err = f.svc.Cancel(ctx, b.ID, clientID, false, "client called in")
	require.NoError(t, err)

	f.svc.repo = &staleReadRepo{fakeRepo: f.repo, stale: &stale}

	_, err = f.svc.Reschedule(ctx, b.ID, startAt(14, 0), clientID, false, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition,
		"a cancelled booking must not be revived by a stale reschedule")

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.Equal(t, startAt(10, 0), stored.StartTime)
}

func TestServiceListTimeRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 10:00-11:00 and 14:00-15:00.
	_, err := f.svc.Create(ctx, createRequest(startAt(10, 0)))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createRequest(startAt(14, 0)))
	require.NoError(t, err)

	from := startAt(11, 0)
	bookings, _, err := f.svc.List(ctx, Filter{ClientID: clientID, StartTime: &from})
	require.NoError(t, err)
	require.Len(t, bookings, 1,
		"a booking ending exactly at the range start does not occupy it")
	assert.Equal(t, startAt(14, 0), bookings[0].StartTime)

	to := startAt(14, 0)
	bookings, _, err = f.svc.List(ctx, Filter{ClientID: clientID, EndTime: &to})
	require.NoError(t, err)
	require.Len(t, bookings, 1,
		"a booking starting exactly at the range end is outside it")
	assert.Equal(t, startAt(10, 0), bookings[0].StartTime)
}
