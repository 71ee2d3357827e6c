package tracef

import "time"

// Clock is the time capability the façade requires: elapsed milliseconds
// since an implementation-defined epoch, monotonic non-decreasing. The
// façade reads it exactly once per rendered line and never when a call is
// gated off.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() uint64

// Now calls f().
func (f ClockFunc) Now() uint64 { return f() }

type wallClock struct {
	start time.Time
}

// NewWallClock returns a Clock counting milliseconds since its construction.
// It rides Go's monotonic clock reading, so wall-time jumps do not move it
// backwards.
func NewWallClock() Clock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}
