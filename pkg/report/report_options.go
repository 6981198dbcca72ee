package report

import "io"

// Option alters the behavior of a Reporter
type Option func(*Reporter)

// WithWriter redirects output, e.g. to a buffer in tests
func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithColors forces colors on or off instead of detecting a terminal
func WithColors(enabled bool) Option {
	return func(r *Reporter) {
		r.colors = enabled
	}
}

// WithVerbose enables per file and per pattern detail
func WithVerbose(enabled bool) Option {
	return func(r *Reporter) {
		r.verbose = enabled
	}
}

// WithFunny selects the funny message variants
func WithFunny(enabled bool) Option {
	return func(r *Reporter) {
		r.funny = enabled
	}
}
