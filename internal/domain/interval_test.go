package domain

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "valid range", start: at(9, 0), end: at(10, 0)},
		{name: "zero length is rejected", start: at(9, 0), end: at(9, 0), wantErr: true},
		{name: "inverted range is rejected", start: at(10, 0), end: at(9, 0), wantErr: true},
		{name: "non-UTC instants are accepted", start: at(9, 0).In(tokyo), end: at(10, 0).In(tokyo)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := NewInterval(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsValidation(err) {
					t.Errorf("expected validation error, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if iv.Start.Location() != time.UTC || iv.End.Location() != time.UTC {
				t.Errorf("expected UTC instants, got %v / %v", iv.Start.Location(), iv.End.Location())
			}
			if !iv.Start.Equal(tt.start) || !iv.End.Equal(tt.end) {
				t.Errorf("instants changed: got [%v, %v)", iv.Start, iv.End)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: at(9, 0), End: at(11, 0)}

	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{name: "identical window", window: Window{Start: at(9, 0), End: at(11, 0)}, want: true},
		{name: "window strictly inside", window: Window{Start: at(9, 30), End: at(10, 30)}, want: true},
		{name: "window touching start", window: Window{Start: at(9, 0), End: at(9, 30)}, want: true},
		{name: "window touching end", window: Window{Start: at(10, 30), End: at(11, 0)}, want: true},
		{name: "window overlapping start", window: Window{Start: at(8, 30), End: at(9, 30)}, want: false},
		{name: "window overlapping end", window: Window{Start: at(10, 30), End: at(11, 30)}, want: false},
		{name: "window enclosing interval", window: Window{Start: at(8, 0), End: at(12, 0)}, want: false},
		{name: "disjoint window", window: Window{Start: at(12, 0), End: at(13, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Contains(tt.window); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestIntervalContains_ShrinkAndGrow(t *testing.T) {
	iv := Interval{Start: at(9, 0), End: at(17, 0)}
	w := Window{Start: at(10, 0), End: at(12, 0)}

	if !iv.Contains(w) {
		t.Fatal("expected base window to be covered")
	}

	for step := time.Minute; step <= time.Hour; step += 7 * time.Minute {
		shrunk := Window{Start: w.Start.Add(step / 2), End: w.End.Add(-step / 2)}
		if shrunk.Start.Before(shrunk.End) && !iv.Contains(shrunk) {
			t.Errorf("shrinking by %v removed coverage", step)
		}
	}

	grownBefore := Window{Start: iv.Start.Add(-time.Minute), End: w.End}
	if iv.Contains(grownBefore) {
		t.Error("growing beyond interval start kept coverage")
	}
	grownAfter := Window{Start: w.Start, End: iv.End.Add(time.Minute)}
	if iv.Contains(grownAfter) {
		t.Error("growing beyond interval end kept coverage")
	}
}

func TestUserAvailabilityCovers(t *testing.T) {
	user := UserAvailability{
		UserID: "u1",
		Intervals: []Interval{
			{Start: at(8, 0), End: at(9, 0)},
			{Start: at(10, 0), End: at(12, 0)},
			{Start: at(14, 0), End: at(15, 0)},
		},
	}

	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{name: "covered by first interval", window: Window{Start: at(8, 15), End: at(8, 45)}, want: true},
		{name: "covered by middle interval", window: Window{Start: at(10, 0), End: at(12, 0)}, want: true},
		{name: "spans a gap", window: Window{Start: at(8, 30), End: at(10, 30)}, want: false},
		{name: "inside a gap", window: Window{Start: at(12, 0), End: at(14, 0)}, want: false},
		{name: "after all intervals", window: Window{Start: at(16, 0), End: at(17, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.Covers(tt.window); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestUserAvailabilityCovers_UnsortedIntervals(t *testing.T) {
	user := UserAvailability{
		UserID: "u1",
		Intervals: []Interval{
			{Start: at(12, 0), End: at(13, 0)},
			{Start: at(9, 0), End: at(11, 0)},
		},
	}

	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{name: "covered by later listed interval", window: Window{Start: at(9, 0), End: at(11, 0)}, want: true},
		{name: "inside later listed interval", window: Window{Start: at(9, 30), End: at(10, 0)}, want: true},
		{name: "covered by first listed interval", window: Window{Start: at(12, 0), End: at(13, 0)}, want: true},
		{name: "gap between intervals", window: Window{Start: at(11, 0), End: at(12, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.Covers(tt.window); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}
