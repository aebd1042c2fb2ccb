package gacha

import "fmt"

// SessionResult is the immutable outcome of one draw session.
type SessionResult struct {
	Tally           Tally
	Sequence        []Tier // one entry per draw, in draw order
	FinalTier       Tier
	GuaranteeActive bool // first nine draws were all Common in a full session
}

// tierForRoll maps a [0,100) roll onto a tier via the cumulative thresholds.
func tierForRoll(roll float64) Tier {
	switch {
	case roll < ThresholdCommon:
		return TierCommon
	case roll < ThresholdRare:
		return TierRare
	case roll < ThresholdStandardEpic:
		return TierStandardEpic
	default:
		return TierFeaturedEpic
	}
}

// guaranteeTierForRoll resolves the final draw of a full session whose first
// nine draws were all Common. The original cumulative thresholds are checked
// against a fresh roll with everything below ThresholdRare treated as Rare,
// so Common is structurally impossible on this branch. The split is
// deliberately not renormalized; the upper cut points still partition
// correctly once Common is excluded.
func guaranteeTierForRoll(roll float64) Tier {
	switch {
	case roll < ThresholdRare:
		return TierRare
	case roll < ThresholdStandardEpic:
		return TierStandardEpic
	default:
		return TierFeaturedEpic
	}
}

// DrawSession runs one session of the given length against the random source.
// Pure apart from consuming the source; a seeded source reproduces the exact
// sequence. Only SessionFull sessions apply the guarantee rule to their last
// draw. Milestone overrides are a policy layer on top (see DrawSessionWithRule).
func DrawSession(length int, src RandomSource) (SessionResult, error) {
	return DrawSessionWithRule(length, RuleNormal, src)
}

// DrawSessionWithRule runs a session with an explicit final-draw rule. The
// rule has precedence over the guarantee check; RuleNormal falls through to
// ordinary sampling with the guarantee applied when it triggers.
func DrawSessionWithRule(length int, rule FinalDrawRule, src RandomSource) (SessionResult, error) {
	if length != SessionSingle && length != SessionShort && length != SessionFull {
		return SessionResult{}, fmt.Errorf("%s: %d", ErrContextInvalidSessionLength, length)
	}
	if src == nil {
		src = DefaultSource()
	}

	res := SessionResult{Sequence: make([]Tier, 0, length)}

	for i := 0; i < length-1; i++ {
		tier := tierForRoll(src.Float64() * RollScale)
		res.Tally.Add(tier)
		res.Sequence = append(res.Sequence, tier)
	}

	var final Tier
	switch rule {
	case RuleForcedFeatured:
		final = TierFeaturedEpic
	case RuleForcedEpic:
		if src.Float64()*RollScale < ThresholdStandardEpic {
			final = TierStandardEpic
		} else {
			final = TierFeaturedEpic
		}
	default:
		roll := src.Float64() * RollScale
		if length == SessionFull && res.Tally.Common == SessionShort {
			final = guaranteeTierForRoll(roll)
			res.GuaranteeActive = true
		} else {
			final = tierForRoll(roll)
		}
	}

	res.Tally.Add(final)
	res.Sequence = append(res.Sequence, final)
	res.FinalTier = final
	return res, nil
}
