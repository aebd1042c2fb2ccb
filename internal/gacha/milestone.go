package gacha

// FinalDrawRule selects how a session's last draw is resolved. Rules come
// from the lifetime draw counter, which the caller tracks externally; they
// take precedence over both the guarantee rule and ordinary sampling.
type FinalDrawRule int

const (
	// RuleNormal applies ordinary thresholds, with the guarantee rule when
	// it triggers.
	RuleNormal FinalDrawRule = iota
	// RuleForcedEpic forces an epic: StandardEpic below ThresholdStandardEpic
	// on a fresh roll, FeaturedEpic otherwise.
	RuleForcedEpic
	// RuleForcedFeatured forces FeaturedEpic with certainty.
	RuleForcedFeatured
)

// RuleForCount returns the milestone rule for the given lifetime session
// count. Every 20th session forces FeaturedEpic; every 10th that is not a
// 20th forces an epic draw.
func RuleForCount(count int) FinalDrawRule {
	switch {
	case count%MilestoneFeaturedEvery == 0:
		return RuleForcedFeatured
	case count%MilestoneEpicEvery == 0:
		return RuleForcedEpic
	default:
		return RuleNormal
	}
}

func (r FinalDrawRule) String() string {
	switch r {
	case RuleForcedEpic:
		return "forced_epic"
	case RuleForcedFeatured:
		return "forced_featured"
	default:
		return "normal"
	}
}
