package backoff

import "time"

type Option func(e *Exponential)

// WithFactor sets the multiplicative growth rate for the backoff algorithm. Default is 1.75.
func WithFactor(factor float64) Option {
	return func(e *Exponential) {
		e.factor = factor
	}
}

// WithInterval sets the base wait interval for the backoff algorithm. Default is 500 milliseconds.
func WithInterval(d time.Duration) Option {
	return func(e *Exponential) {
		e.interval = float64(d.Nanoseconds())
	}
}

// WithJitter sets the maximum jitter for the backoff algorithm. Default is 150 milliseconds.
func WithJitter(d time.Duration) Option {
	return func(e *Exponential) {
		e.jitter = float64(d.Nanoseconds())
	}
}

// WithMax sets the maximum duration despite the number of attempts. Unbounded growth is the default.
func WithMax(d time.Duration) Option {
	return func(e *Exponential) {
		e.max = d.Nanoseconds()
		e.capped = true
	}
}

// WithRandomFunc sets the random function that is used to generate jitter samples in the closed interval [0,n].
func WithRandomFunc(rf RandomFunc) Option {
	return func(e *Exponential) {
		e.rf = rf
	}
}
