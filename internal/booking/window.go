package booking

import "time"

// TimeWindow is a half-open [Start, End) interval.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open windows intersect:
// (StartA < EndB) AND (StartB < EndA). Windows that merely touch
// (one ends exactly when the other starts) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// DayOf truncates t to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
