package booking

import (
	"fmt"
	"time"
)

// Hours describes the daily booking window and the slot grid granularity.
// It is configuration, not business law: callers load it from the
// environment and pass it in.
type Hours struct {
	DayStart    string // "15:04" clock time, e.g. "09:00"
	DayEnd      string // e.g. "18:00"
	StepMinutes int    // slot grid granularity, e.g. 30
}

// Validate checks the hours configuration for internal consistency.
func (h Hours) Validate() error {
	open, err := parseClock(h.DayStart)
	if err != nil {
		return fmt.Errorf("invalid day start %q: %w", h.DayStart, err)
	}
	close, err := parseClock(h.DayEnd)
	if err != nil {
		return fmt.Errorf("invalid day end %q: %w", h.DayEnd, err)
	}
	if close <= open {
		return fmt.Errorf("day end %q must be after day start %q", h.DayEnd, h.DayStart)
	}
	if h.StepMinutes <= 0 {
		return fmt.Errorf("step minutes must be positive, got %d", h.StepMinutes)
	}
	return nil
}

// WindowOn returns the operating window anchored to the given day (UTC).
func (h Hours) WindowOn(day time.Time) (TimeWindow, error) {
	if err := h.Validate(); err != nil {
		return TimeWindow{}, err
	}
	open, _ := parseClock(h.DayStart)
	close, _ := parseClock(h.DayEnd)
	midnight := DayOf(day)
	return TimeWindow{
		Start: midnight.Add(time.Duration(open) * time.Minute),
		End:   midnight.Add(time.Duration(close) * time.Minute),
	}, nil
}

// Step returns the slot grid granularity as a duration.
func (h Hours) Step() time.Duration {
	return time.Duration(h.StepMinutes) * time.Minute
}

// parseClock converts a "15:04" string into minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AvailableSlots enumerates every step-aligned window of the given duration
// within the operating hours on day that does not overlap an existing
// non-cancelled booking. The result is ordered by start time; an empty
// result is a valid outcome (fully booked day), not an error.
//
// The caller supplies the booking snapshot already scoped to the right
// resource (the photographer's bookings, or the whole offering's when the
// photographer is unassigned); this function only tests overlap.
//
// If day equals today, windows whose start has already passed relative to
// now are excluded.
func AvailableSlots(hours Hours, duration time.Duration, day time.Time, existing []*Booking, now time.Time) ([]TimeWindow, error) {
	if duration <= 0 {
		return nil, ErrInvalidOffering
	}

	day = DayOf(day)
	today := DayOf(now)
	if day.Before(today) {
		return nil, ErrPastDate
	}

	operating, err := hours.WindowOn(day)
	if err != nil {
		return nil, err
	}

	slots := make([]TimeWindow, 0)
	for start := operating.Start; !start.Add(duration).After(operating.End); start = start.Add(hours.Step()) {
		if day.Equal(today) && start.Before(now) {
			continue
		}
		w := TimeWindow{Start: start, End: start.Add(duration)}
		if conflictsWith(w, existing, "") {
			continue
		}
		slots = append(slots, w)
	}

	return slots, nil
}

// conflictsWith reports whether w overlaps any non-cancelled booking in
// existing, skipping the booking with excludeID (used on reschedule so a
// booking does not conflict with itself). Any single overlap suffices.
func conflictsWith(w TimeWindow, existing []*Booking, excludeID string) bool {
	for _, b := range existing {
		if b.Status == StatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if w.Overlaps(b.Window()) {
			return true
		}
	}
	return false
}
