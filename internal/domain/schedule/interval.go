package schedule

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, ErrInvalidInterval
	}
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func NewIntervalFromDuration(start time.Time, d time.Duration) (Interval, error) {
	return NewInterval(start, start.Add(d))
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Overlaps reports whether two half-open intervals intersect. Invalid or
// zero-length intervals never overlap anything: conflict checks fail closed
// instead of rejecting a slot on garbage input.
func Overlaps(a, b Interval) bool {
	if !valid(a) || !valid(b) {
		return false
	}
	return a.start.Before(b.end) && a.end.After(b.start)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

func valid(i Interval) bool {
	if i.start.IsZero() || i.end.IsZero() {
		return false
	}
	return i.end.After(i.start)
}
