package gacha

import (
	"fmt"
	"math"
)

// ProbabilityOf returns the exact joint probability of a realized full
// session: the multinomial mass of the first-nine tally times the branch
// probability of the observed final tier. The result is in [0,1].
//
// The first-nine tally must sum to SessionShort. When guaranteeActive is
// set, a Common final tier is structurally impossible and reported as an
// error rather than probability zero.
func ProbabilityOf(firstNine Tally, finalTier Tier, guaranteeActive bool) (float64, error) {
	if firstNine.Sum() != SessionShort {
		return 0, fmt.Errorf("%s %d, got %d", ErrContextTallyMismatch, SessionShort, firstNine.Sum())
	}

	multinom := float64(factorial(SessionShort)) /
		float64(factorial(firstNine.Common)*factorial(firstNine.Rare)*
			factorial(firstNine.StandardEpic)*factorial(firstNine.FeaturedEpic))

	probNine := multinom
	for _, t := range Tiers {
		probNine *= math.Pow(t.Probability(), float64(firstNine.Count(t)))
	}

	probFinal := finalTier.Probability()
	if guaranteeActive {
		if finalTier == TierCommon {
			return 0, fmt.Errorf("%s: %s", ErrContextImpossibleFinalTier, finalTier)
		}
		// The guarantee branch reuses the ordinary upper-tier probabilities
		// unrenormalized, matching how the draw itself is resolved.
	}

	return probNine * probFinal, nil
}

// FormatPercent renders a probability as a fixed four-decimal percentage,
// the precision displayed alongside draw results.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.*f", PercentDecimals, p*RollScale)
}

// factorial is iterative; inputs are bounded by the session length so there
// is no overflow concern.
func factorial(n int) int64 {
	res := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		res *= i
	}
	return res
}
