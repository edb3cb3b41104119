package backoff

import (
	"math"
	"math/rand/v2"
	"time"
)

// RandomFunc represents a function that returns a uniform random number in the closed interval [0,n].
//
// Implementations must be safe for concurrent use.
type RandomFunc func(n float64) float64

// Default configuration values
const (
	DefaultFactor   = 1.75
	DefaultInterval = time.Millisecond * 500
	DefaultJitter   = time.Millisecond * 150
)

// DefaultRandomFunc returns a random function backed by the shared math/rand/v2
// generator, which is safe for concurrent use.
func DefaultRandomFunc() RandomFunc {
	return func(n float64) float64 {
		if n <= 0 {
			return 0
		}
		return rand.Float64() * n
	}
}

// Exponential calculates backoff durations that grow geometrically with the
// attempt count. It holds no mutable state, so a single instance may be
// shared by any number of goroutines.
type Exponential struct {
	// factor is the multiplicative growth rate per attempt.
	factor float64
	// interval is the unscaled wait at attempt 0, in nanoseconds.
	interval float64
	// jitter is the upper bound of the additive random noise, in nanoseconds.
	jitter float64
	// max caps returned durations, in nanoseconds. Only read when capped is true.
	max int64
	// capped reports whether max is set.
	capped bool
	// rf draws the jitter sample on every call.
	rf RandomFunc
}

// New creates an Exponential with the default configuration, modified by the
// given options. Option values are not validated: out-of-range inputs produce
// a best-effort result, and bounding them is the caller's responsibility.
func New(options ...Option) *Exponential {
	e := &Exponential{
		factor:   DefaultFactor,
		interval: float64(DefaultInterval.Nanoseconds()),
		jitter:   float64(DefaultJitter.Nanoseconds()),
		rf:       DefaultRandomFunc(),
	}
	for _, o := range options {
		o(e)
	}

	return e
}

// Duration returns the calculated backoff duration for the given zero-based
// attempt. The duration is factor^attempt times the base interval plus a
// fresh jitter sample, truncated to whole nanoseconds and bounded by the
// configured maximum. Without a maximum, results that exceed the representable
// range saturate at the largest duration.
func (e *Exponential) Duration(attempt int) time.Duration {
	nanoseconds := math.Pow(e.factor, float64(attempt))*e.interval + e.rf(e.jitter)

	var truncated int64
	if nanoseconds >= math.MaxInt64 || math.IsNaN(nanoseconds) {
		truncated = math.MaxInt64
	} else {
		truncated = int64(nanoseconds)
	}

	if e.capped && truncated > e.max {
		return time.Duration(e.max)
	}

	return time.Duration(truncated)
}
