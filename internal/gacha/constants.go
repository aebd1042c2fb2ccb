package gacha

// ============================================================================
// Draw Thresholds
// ============================================================================

// Cumulative thresholds checked against a uniform [0,100) roll, in tier order.
// These four boundaries are the single source of truth for every probability
// used in this package; derived per-tier probabilities come from Tier.Probability.
const (
	ThresholdCommon       = 88.5
	ThresholdRare         = 97.0
	ThresholdStandardEpic = 98.8
	ThresholdUpper        = 100.0
)

// RollScale converts a [0,1) sample into the [0,100) roll space the
// thresholds are defined in.
const RollScale = 100.0

// ============================================================================
// Session Lengths
// ============================================================================

// Valid session lengths. Only a full session is eligible for the guarantee rule.
const (
	SessionSingle = 1
	SessionShort  = 9
	SessionFull   = 10
)

// ============================================================================
// Milestone Cadence
// ============================================================================

// Lifetime-count multiples at which the final draw of a session is overridden.
// The FeaturedEpic milestone takes precedence over the StandardEpic one.
const (
	MilestoneFeaturedEvery = 20
	MilestoneEpicEvery     = 10
)

// ============================================================================
// Display
// ============================================================================

// PercentDecimals is the fixed precision callers rely on when a probability is
// rendered as a percentage.
const PercentDecimals = 4

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextInvalidSessionLength = "invalid session length"
	ErrContextTallyMismatch        = "first-nine tally must sum to"
	ErrContextImpossibleFinalTier  = "final tier impossible under guarantee"
)
