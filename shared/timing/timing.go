// Package timing measures wall-clock spans.
package timing

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Measure runs fn and returns the span it took.
func Measure(fn func()) TimeSpan {
	start := time.Now()
	fn()
	return timespan.BetweenTimes(start, time.Now())
}

// Seconds returns the span length in fractional seconds.
func Seconds(ts TimeSpan) float64 {
	return ts.Duration().Seconds()
}
