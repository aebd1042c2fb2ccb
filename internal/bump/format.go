package bump

import "fmt"

// FormatRemaining renders a remaining-seconds value for display, dropping
// unit granularity as the value shrinks: hours/minutes/seconds above one
// hour, minutes/seconds above one minute, seconds alone below that.
func FormatRemaining(secondsLeft int64) string {
	h := secondsLeft / secondsPerHour
	m := (secondsLeft % secondsPerHour) / secondsPerMinute
	s := secondsLeft % secondsPerMinute

	switch {
	case secondsLeft > secondsPerHour:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case secondsLeft > secondsPerMinute:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// NextTickDelay returns how long to sleep before the next display update.
// The interval depends on how much time remains, and the delay snaps the
// wake-up to the next interval boundary rather than a fixed cadence.
func NextTickDelay(secondsLeft int64) int64 {
	var interval int64
	switch {
	case secondsLeft > TickBracketOpening:
		interval = TickIntervalFast
	case secondsLeft > TickBracketFinalHour:
		interval = TickIntervalSlow
	case secondsLeft > TickBracketFinalMinute:
		interval = TickIntervalSlow
	default:
		interval = TickIntervalFast
	}

	rem := secondsLeft % interval
	if rem == 0 {
		rem = interval
	}
	return rem * 1000 // milliseconds
}
