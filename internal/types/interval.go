package types

import (
	"fmt"
	"time"
)

// TimeInterval is a span of wall-clock time.
//
// Intervals are values and are never mutated in place; Shift returns a new
// interval.
type TimeInterval struct {
	Start time.Time `json:"start"`
	Stop  time.Time `json:"stop"`
}

// NewTimeInterval returns an interval, rejecting start after stop.
func NewTimeInterval(start, stop time.Time) (TimeInterval, error) {
	if start.After(stop) {
		return TimeInterval{}, fmt.Errorf("%w: start %s after stop %s",
			ErrInvalidDateTime, start.Format(time.RFC3339Nano), stop.Format(time.RFC3339Nano))
	}
	return TimeInterval{Start: start, Stop: stop}, nil
}

// Shift moves both ends of the interval by d.
func (iv TimeInterval) Shift(d time.Duration) TimeInterval {
	return TimeInterval{Start: iv.Start.Add(d), Stop: iv.Stop.Add(d)}
}

// Duration returns Stop - Start. It is negative for inverted intervals.
func (iv TimeInterval) Duration() time.Duration {
	return iv.Stop.Sub(iv.Start)
}

// Contains reports whether t lies within [Start, Stop].
func (iv TimeInterval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.Stop)
}

func (iv TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.Start.Format(time.RFC3339Nano), iv.Stop.Format(time.RFC3339Nano))
}

// ValidateStart checks a candidate read start against the record interval:
// it must not precede the record start and must be strictly before its stop.
func (iv TimeInterval) ValidateStart(t time.Time) error {
	if iv.Contains(t) && t.Before(iv.Stop) {
		return nil
	}
	return &IntervalError{Bound: "start", Value: t, Record: iv, Err: ErrInvalidDateTime}
}

// ValidateStop checks a candidate read stop against the record interval: it
// must be strictly after the record start and must not exceed its stop.
func (iv TimeInterval) ValidateStop(t time.Time) error {
	if iv.Contains(t) && t.After(iv.Start) {
		return nil
	}
	return &IntervalError{Bound: "stop", Value: t, Record: iv, Err: ErrInvalidDateTime}
}
