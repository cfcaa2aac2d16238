package clock

import "time"

// NowFunc is injected wherever wall clock time is read, tests substitute
// a fixed clock.
type NowFunc func() time.Time
