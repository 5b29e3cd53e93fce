package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open availability range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalises both instants to UTC and rejects empty or inverted ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, &ValidationError{
			Field:  "interval",
			Reason: fmt.Sprintf("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		}
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether the interval fully contains w.
// Partial overlap does not count.
func (i Interval) Contains(w Window) bool {
	return !i.Start.After(w.Start) && !i.End.Before(w.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Window is a candidate meeting window derived from interval boundaries.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Less orders windows by start, then end.
func (w Window) Less(o Window) bool {
	if !w.Start.Equal(o.Start) {
		return w.Start.Before(o.Start)
	}
	return w.End.Before(o.End)
}
