package bump

import "time"

// Clock abstracts now and single-shot timers so countdown ticks can be driven
// deterministically under test. The scheduler re-arms Schedule on every tick;
// there is no repeating-timer requirement.
type Clock interface {
	Now() time.Time
	Schedule(d time.Duration, fn func())
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewClock returns the wall clock.
func NewClock() Clock { return realClock{} }
