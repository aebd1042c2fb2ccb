package gacha

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityOfAllCommonGuarantee(t *testing.T) {
	firstNine := Tally{Common: 9}

	got, err := ProbabilityOf(firstNine, TierRare, true)
	require.NoError(t, err)

	want := math.Pow(0.885, 9) * 0.085
	assert.InDelta(t, want, got, 1e-12)
	assert.Equal(t, "2.8308", FormatPercent(got))
}

func TestProbabilityOfMixedTally(t *testing.T) {
	firstNine := Tally{Common: 5, Rare: 3, StandardEpic: 1}

	got, err := ProbabilityOf(firstNine, TierFeaturedEpic, false)
	require.NoError(t, err)

	// 9!/(5!3!1!) * 0.885^5 * 0.085^3 * 0.018^1, times the ordinary 0.012
	// final-draw probability.
	multinom := float64(factorial(9)) / float64(factorial(5)*factorial(3)*factorial(1))
	want := multinom *
		math.Pow(TierCommon.Probability(), 5) *
		math.Pow(TierRare.Probability(), 3) *
		TierStandardEpic.Probability() *
		TierFeaturedEpic.Probability()
	assert.InDelta(t, want, got, 1e-15)
}

func TestProbabilityOfFinalBranch(t *testing.T) {
	firstNine := Tally{Common: 8, Rare: 1}

	tests := []struct {
		name      string
		finalTier Tier
	}{
		{"common final", TierCommon},
		{"rare final", TierRare},
		{"standard epic final", TierStandardEpic},
		{"featured epic final", TierFeaturedEpic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProbabilityOf(firstNine, tt.finalTier, false)
			require.NoError(t, err)

			base, err := ProbabilityOf(firstNine, TierCommon, false)
			require.NoError(t, err)

			// Varying only the final tier scales the result by the ratio of
			// the final-draw probabilities.
			want := base / TierCommon.Probability() * tt.finalTier.Probability()
			assert.InDelta(t, want, got, 1e-15)
		})
	}
}

func TestProbabilityOfGuaranteeRejectsCommonFinal(t *testing.T) {
	_, err := ProbabilityOf(Tally{Common: 9}, TierCommon, true)
	assert.Error(t, err)
}

func TestProbabilityOfTallyPrecondition(t *testing.T) {
	_, err := ProbabilityOf(Tally{Common: 8}, TierRare, false)
	assert.Error(t, err)

	_, err = ProbabilityOf(Tally{Common: 10}, TierRare, false)
	assert.Error(t, err)
}

func TestProbabilityOfTierPermutationSymmetry(t *testing.T) {
	// Swapping which tier carries which count leaves the multinomial
	// coefficient untouched; only the probability powers move. Two tallies
	// with the same count multiset and matching probability assignments must
	// produce the same mass when the pairing is internally consistent.
	a := Tally{Common: 4, Rare: 4, StandardEpic: 1}
	b := Tally{Common: 4, Rare: 1, StandardEpic: 4}

	pa, err := ProbabilityOf(a, TierCommon, false)
	require.NoError(t, err)
	pb, err := ProbabilityOf(b, TierCommon, false)
	require.NoError(t, err)

	// Same coefficient, different powers: relate them explicitly.
	ratio := math.Pow(TierRare.Probability(), 3) / math.Pow(TierStandardEpic.Probability(), 3)
	assert.InDelta(t, pa, pb*ratio, 1e-15)
}

func TestTierProbabilitiesDeriveFromThresholds(t *testing.T) {
	sum := 0.0
	for _, tier := range Tiers {
		sum += tier.Probability()
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	assert.InDelta(t, 0.885, TierCommon.Probability(), 1e-12)
	assert.InDelta(t, 0.085, TierRare.Probability(), 1e-12)
	assert.InDelta(t, 0.018, TierStandardEpic.Probability(), 1e-12)
	assert.InDelta(t, 0.012, TierFeaturedEpic.Probability(), 1e-12)
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, int64(1), factorial(0))
	assert.Equal(t, int64(1), factorial(1))
	assert.Equal(t, int64(362880), factorial(9))
}
