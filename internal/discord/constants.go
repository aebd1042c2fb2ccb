package discord

// ============================================================================
// External Application IDs
// ============================================================================

const (
	// DisboardAppID is the bot account that posts bump confirmations.
	DisboardAppID = "302050872383242240"
)

// ============================================================================
// Embed Colors
// ============================================================================

const (
	ColorBlue  = 0x3498db
	ColorGreen = 0x2ecc71
	ColorGrey  = 0x95a5a6
)

// ============================================================================
// User-Facing Messages
// ============================================================================

const (
	MsgReminderTitle = "Bump available!"
	MsgReminderBody  = "Use `/bump` to push the server up the listing."

	MsgNoCycleRecord  = "No upcoming bump is recorded yet."
	MsgBumpReadyNow   = "You can bump right now!"
	MsgGachaBadPulls  = "Pulls must be 1, 10 or 100."
	MsgDrawingHundred = "Drawing 100 times..."
	MsgHundredDone    = "Drew 100 times."
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBumpMessageSeen    = "Disboard message observed"
	LogMsgBumpSuccessMatched = "Disboard bump confirmation matched"
	LogMsgBumpHandleFailed   = "Failed to handle bump success"
	LogMsgReminderThreadSend = "Sending bump reminder"
	LogMsgReminderFellBack   = "Reminder thread unavailable, using bump channel"
)
