package bump

import "time"

// ============================================================================
// Cycle Timing
// ============================================================================

// Cooldown is the fixed interval between successful bumps; the next bump
// instant is always trigger time plus this duration.
const Cooldown = 2 * time.Hour

// ============================================================================
// Tick Intervals
// ============================================================================

// Remaining-seconds brackets and the display update interval used inside
// each. The scheduled delay snaps to the next interval boundary so updates
// land on round numbers.
const (
	TickBracketFinalMinute = 60   // at or below: tick every 2s
	TickBracketFinalHour   = 3600 // at or below: tick every 5s
	TickBracketOpening     = 7140 // above (>119min): tick every 2s

	TickIntervalFast = 2 // seconds
	TickIntervalSlow = 5 // seconds
)

// ============================================================================
// Display Formatting
// ============================================================================

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCountdownStarted      = "Countdown started"
	LogMsgCountdownSuperseded   = "Countdown superseded, stopping stale tick chain"
	LogMsgCountdownExpired      = "Countdown expired"
	LogMsgDisplayUpdateFailed   = "Failed to update countdown display"
	LogMsgDisplayTeardownFailed = "Failed to delete countdown display"
	LogMsgDisplayCreateFailed   = "Failed to create countdown display"
	LogMsgNotificationSkipped   = "Completion already notified, skipping"
	LogMsgResumingCycle         = "Resuming persisted bump cycle"
	LogMsgCycleAlreadyDue       = "Persisted bump cycle already due, notifying"
	LogMsgBumpDetected          = "Bump success detected"
	LogMsgNotifyFailed          = "Failed to send bump reminder"
	LogMsgTotalsReset           = "Year rolled over, gacha totals reset"
)
