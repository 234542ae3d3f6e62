package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shuttercal/booking-backend/internal/offering"
	"github.com/shuttercal/booking-backend/internal/photographer"
)

// conflictRetries bounds how many times a write is re-attempted after the
// repository reports a concurrent-writer conflict.
const conflictRetries = 3

type CreateRequest struct {
	ClientID       string
	OfferingID     string
	PhotographerID *string
	StartTime      time.Time
	Participants   int
	Notes          string
}

type Service interface {
	// AvailableSlots computes the bookable time windows for an offering on
	// a given day, optionally narrowed to one photographer.
	AvailableSlots(ctx context.Context, offeringID string, day time.Time, photographerID *string) ([]TimeWindow, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Lifecycle transitions. Accept, Reject and Complete are admin
	// operations (enforced at the route level); Cancel, Reschedule and
	// Delete check ownership against the explicit actor.
	Accept(ctx context.Context, id string) (*Booking, error)
	Reject(ctx context.Context, id, reason string) (*Booking, error)
	Cancel(ctx context.Context, id, actorID string, isAdmin bool, reason string) (*Booking, error)
	Complete(ctx context.Context, id string) (*Booking, error)
	Reschedule(ctx context.Context, id string, newStart time.Time, actorID string, isAdmin bool, notes *string) (*Booking, error)
	Delete(ctx context.Context, id, actorID string, isAdmin bool) error
}

type service struct {
	repo          Repository
	offerings     offering.Service
	photographers photographer.Service
	hours         Hours
	pub           Publisher
	log           *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewService(
	repo Repository,
	offerings offering.Service,
	photographers photographer.Service,
	hours Hours,
	pub Publisher,
	log *zap.Logger,
) Service {
	if pub == nil {
		pub = NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:          repo,
		offerings:     offerings,
		photographers: photographers,
		hours:         hours,
		pub:           pub,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) getOffering(ctx context.Context, id string) (*offering.Offering, error) {
	o, err := s.offerings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offering.ErrNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *service) checkPhotographer(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := s.photographers.GetByID(ctx, *id); err != nil {
		if errors.Is(err, photographer.ErrNotFound) {
			return ErrPhotographerNotFound
		}
		return err
	}
	return nil
}

func (s *service) AvailableSlots(ctx context.Context, offeringID string, day time.Time, photographerID *string) ([]TimeWindow, error) {
	o, err := s.getOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if !o.IsActive || o.DurationMinutes <= 0 {
		return nil, ErrInvalidOffering
	}
	if err := s.checkPhotographer(ctx, photographerID); err != nil {
		return nil, err
	}

	operating, err := s.hours.WindowOn(day)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListForWindow(ctx, offeringID, photographerID, operating.Start, operating.End)
	if err != nil {
		return nil, err
	}

	return AvailableSlots(s.hours, o.Duration(), day, existing, s.now())
}

// validateStart checks a requested start time against the clock and the
// operating-hours grid, returning the resulting window on success.
func (s *service) validateStart(start time.Time, duration time.Duration) (TimeWindow, error) {
	start = start.UTC()
	if start.Before(s.now()) {
		return TimeWindow{}, ErrPastDate
	}

	operating, err := s.hours.WindowOn(start)
	if err != nil {
		return TimeWindow{}, err
	}

	w := TimeWindow{Start: start, End: start.Add(duration)}
	if start.Before(operating.Start) || w.End.After(operating.End) {
		return TimeWindow{}, ErrOutsideHours
	}
	if start.Sub(operating.Start)%s.hours.Step() != 0 {
		return TimeWindow{}, ErrUnalignedSlot
	}
	return w, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	o, err := s.getOffering(ctx, req.OfferingID)
	if err != nil {
		return nil, err
	}
	if !o.IsActive || o.DurationMinutes <= 0 {
		return nil, ErrInvalidOffering
	}
	if req.Participants < 1 || req.Participants > o.MaxParticipants {
		return nil, ErrInvalidParticipants
	}
	if err := s.checkPhotographer(ctx, req.PhotographerID); err != nil {
		return nil, err
	}

	// EndTime is derived, never supplied: end = start + offering duration.
	w, err := s.validateStart(req.StartTime, o.Duration())
	if err != nil {
		return nil, err
	}

	b := &Booking{
		OfferingID:     req.OfferingID,
		ClientID:       req.ClientID,
		PhotographerID: req.PhotographerID,
		StartTime:      w.Start,
		EndTime:        w.End,
		Participants:   req.Participants,
		Status:         StatusPending,
		Notes:          req.Notes,
	}

	// The repository re-checks the slot conflict inside its transaction, so
	// a concurrent writer cannot sneak in between check and insert.
	if err := s.withRetry(ctx, func() error { return s.repo.Create(ctx, b) }); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("offering_id", b.OfferingID),
		zap.Time("start", b.StartTime))
	s.publish(ctx, EventCreated, b, "")

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.ClientID != actorID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Accept(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusConfirmed, EventConfirmed, "")
}

func (s *service) Reject(ctx context.Context, id, reason string) (*Booking, error) {
	return s.transition(ctx, id, StatusCancelled, EventCancelled, reason)
}

func (s *service) Cancel(ctx context.Context, id, actorID string, isAdmin bool, reason string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.ClientID != actorID {
		return nil, ErrPermissionDenied
	}
	return s.applyTransition(ctx, b, StatusCancelled, EventCancelled, reason)
}

func (s *service) Complete(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusCompleted, EventCompleted, "")
}

// transition loads a booking and applies a status change guarded by the
// state machine.
func (s *service) transition(ctx context.Context, id string, to Status, eventKey, reason string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyTransition(ctx, b, to, eventKey, reason)
}

func (s *service) applyTransition(ctx context.Context, b *Booking, to Status, eventKey, reason string) (*Booking, error) {
	var from Status
	err := s.withRetry(ctx, func() error {
		if !CanTransition(b.Status, to) {
			return ErrInvalidTransition
		}

		from = b.Status
		b.Status = to
		if to == StatusCancelled {
			b.CancellationReason = reason
		}

		// Compare-and-set against the status this snapshot was read at. If
		// a concurrent transition won, reload so the next attempt checks
		// the committed state instead of a stale one.
		err := s.repo.UpdateStatus(ctx, b, from)
		if err != nil {
			b.Status = from
			if errors.Is(err, ErrConflict) {
				fresh, ferr := s.repo.GetByID(ctx, b.ID)
				if ferr != nil {
					return ferr
				}
				*b = *fresh
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking status changed",
		zap.String("booking_id", b.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	s.publish(ctx, eventKey, b, reason)

	return b, nil
}

func (s *service) Reschedule(ctx context.Context, id string, newStart time.Time, actorID string, isAdmin bool, notes *string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.ClientID != actorID {
		return nil, ErrPermissionDenied
	}
	// Completed and cancelled bookings cannot move; a new booking must be
	// created instead.
	if b.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	o, err := s.getOffering(ctx, b.OfferingID)
	if err != nil {
		return nil, err
	}

	w, err := s.validateStart(newStart, o.Duration())
	if err != nil {
		return nil, err
	}

	b.StartTime = w.Start
	b.EndTime = w.End
	// Any reschedule reverts to pending for re-approval, even from confirmed.
	b.Status = StatusPending
	if notes != nil {
		b.Notes = *notes
	}

	// UpdateSchedule re-runs the conflict check excluding this booking
	// inside its transaction, and only writes while the row is still
	// non-terminal. A booking that got cancelled or completed after our
	// read is an invalid transition, not something to retry into.
	if err := s.withRetry(ctx, func() error {
		err := s.repo.UpdateSchedule(ctx, b)
		if errors.Is(err, ErrConflict) {
			fresh, ferr := s.repo.GetByID(ctx, b.ID)
			if ferr != nil {
				return ferr
			}
			if fresh.Status.IsTerminal() {
				return ErrInvalidTransition
			}
		}
		return err
	}); err != nil {
		return nil, err
	}

	s.log.Info("booking rescheduled",
		zap.String("booking_id", b.ID),
		zap.Time("start", b.StartTime))
	s.publish(ctx, EventRescheduled, b, "")

	return b, nil
}

func (s *service) Delete(ctx context.Context, id, actorID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && b.ClientID != actorID {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("booking deleted", zap.String("booking_id", id))
	s.publish(ctx, EventDeleted, b, "")

	return nil
}

// withRetry re-attempts a repository write after concurrency conflicts.
// Any other error, including ErrSlotUnavailable, aborts immediately.
func (s *service) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= conflictRetries; attempt++ {
		err = op()
		if !errors.Is(err, ErrConflict) {
			return err
		}
		s.log.Warn("booking write conflicted, retrying",
			zap.Int("attempt", attempt))
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return err
}

func (s *service) publish(ctx context.Context, key string, b *Booking, reason string) {
	s.pub.Publish(ctx, Event{
		Key:            key,
		BookingID:      b.ID,
		ClientID:       b.ClientID,
		OfferingID:     b.OfferingID,
		PhotographerID: b.PhotographerID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status,
		Reason:         reason,
		OccurredAt:     s.now(),
	})
}
