package gacha

// Tier is one of the four mutually exclusive reward rarities, ordered from
// most to least common.
type Tier int

const (
	TierCommon Tier = iota
	TierRare
	TierStandardEpic
	TierFeaturedEpic
)

// Tiers lists all tiers in draw-threshold order.
var Tiers = []Tier{TierCommon, TierRare, TierStandardEpic, TierFeaturedEpic}

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierRare:
		return "rare"
	case TierStandardEpic:
		return "standard_epic"
	case TierFeaturedEpic:
		return "featured_epic"
	default:
		return "unknown"
	}
}

// Probability returns the unconditional single-draw probability of the tier,
// derived from the shared cumulative thresholds rather than re-literaled.
func (t Tier) Probability() float64 {
	switch t {
	case TierCommon:
		return ThresholdCommon / RollScale
	case TierRare:
		return (ThresholdRare - ThresholdCommon) / RollScale
	case TierStandardEpic:
		return (ThresholdStandardEpic - ThresholdRare) / RollScale
	case TierFeaturedEpic:
		return (ThresholdUpper - ThresholdStandardEpic) / RollScale
	default:
		return 0
	}
}

// Tally counts how many draws of a session landed in each tier.
type Tally struct {
	Common       int
	Rare         int
	StandardEpic int
	FeaturedEpic int
}

// Add records one draw of the given tier.
func (ta *Tally) Add(t Tier) {
	switch t {
	case TierCommon:
		ta.Common++
	case TierRare:
		ta.Rare++
	case TierStandardEpic:
		ta.StandardEpic++
	case TierFeaturedEpic:
		ta.FeaturedEpic++
	}
}

// Count returns the number of draws recorded for the given tier.
func (ta Tally) Count(t Tier) int {
	switch t {
	case TierCommon:
		return ta.Common
	case TierRare:
		return ta.Rare
	case TierStandardEpic:
		return ta.StandardEpic
	case TierFeaturedEpic:
		return ta.FeaturedEpic
	default:
		return 0
	}
}

// Sum returns the total number of recorded draws.
func (ta Tally) Sum() int {
	return ta.Common + ta.Rare + ta.StandardEpic + ta.FeaturedEpic
}

// WithoutFinal returns a copy of the tally with one draw of the given tier
// removed, isolating the first-nine breakdown a full session's probability
// calculation needs.
func (ta Tally) WithoutFinal(t Tier) Tally {
	out := ta
	switch t {
	case TierCommon:
		out.Common--
	case TierRare:
		out.Rare--
	case TierStandardEpic:
		out.StandardEpic--
	case TierFeaturedEpic:
		out.FeaturedEpic--
	}
	return out
}
