package clicker

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultMinInterval = 20 * time.Millisecond
	DefaultMaxInterval = 30 * time.Millisecond
)

// Interval is the inclusive range the pause between two clicks is drawn from.
type Interval struct {
	Min time.Duration
	Max time.Duration
}

// DefaultInterval returns the 20-30ms range.
func DefaultInterval() Interval {
	return Interval{Min: DefaultMinInterval, Max: DefaultMaxInterval}
}

// Validate rejects empty and inverted ranges.
func (iv Interval) Validate() error {
	if iv.Min <= 0 {
		return fmt.Errorf("click interval minimum must be positive, got %s", iv.Min)
	}
	if iv.Max < iv.Min {
		return fmt.Errorf("click interval maximum %s is below minimum %s", iv.Max, iv.Min)
	}
	return nil
}

// Sample draws a duration uniformly from [Min, Max] at nanosecond
// resolution. A nil r uses the shared generator.
func (iv Interval) Sample(r *rand.Rand) time.Duration {
	span := int64(iv.Max-iv.Min) + 1
	if r == nil {
		return iv.Min + time.Duration(rand.Int64N(span))
	}
	return iv.Min + time.Duration(r.Int64N(span))
}
