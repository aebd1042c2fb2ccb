package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameBumpCycles            = "bump_cycles_total"
	MetricNameBumpNotifications     = "bump_notifications_total"
	MetricNameCountdownTicks        = "countdown_ticks_total"
	MetricNameCountdownEditsSkipped = "countdown_edits_skipped_total"
	MetricNameGachaDraws            = "gacha_draws_total"
	MetricNameGachaSessions         = "gacha_sessions_total"
	MetricNameCommandsHandled       = "discord_commands_handled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextBumpCycles            = "Total number of bump cycles started"
	HelpTextBumpNotifications     = "Total number of bump completion notifications sent"
	HelpTextCountdownTicks        = "Total number of countdown display ticks"
	HelpTextCountdownEditsSkipped = "Total number of countdown ticks that skipped a redundant display edit"
	HelpTextGachaDraws            = "Total number of individual gacha draws by tier"
	HelpTextGachaSessions         = "Total number of gacha sessions by length"
	HelpTextCommandsHandled       = "Total number of slash commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelTier    = "tier"
	LabelLength  = "length"
	LabelCommand = "command"
)
