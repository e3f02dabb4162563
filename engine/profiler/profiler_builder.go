package profiler

import "time"

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are reported. Values <= 0 keep the 1 second default.
//
// Parameters:
//   - interval: the reporting window
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithReporter replaces the default log output.
//
// Parameters:
//   - report: called with each window's statistics, outside the profiler's lock
//
// Returns:
//   - ProfilerOption: option function to apply
func WithReporter(report func(Stats)) ProfilerOption {
	return func(p *Profiler) {
		if report != nil {
			p.report = report
		}
	}
}

// WithClock replaces time.Now. Used by tests to control elapsed time.
//
// Parameters:
//   - now: the clock function
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
