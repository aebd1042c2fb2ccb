package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same sample.
type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

// scriptSource replays a fixed sequence of samples.
type scriptSource struct {
	values []float64
	pos    int
}

func (s *scriptSource) Float64() float64 {
	v := s.values[s.pos]
	s.pos++
	return v
}

func TestDrawSessionTallySum(t *testing.T) {
	src := NewSeededSource(42)

	for _, length := range []int{SessionSingle, SessionShort, SessionFull} {
		for i := 0; i < 200; i++ {
			res, err := DrawSession(length, src)
			require.NoError(t, err)

			assert.Equal(t, length, res.Tally.Sum(), "tally must sum to session length")
			assert.Len(t, res.Sequence, length)
			assert.Equal(t, res.Sequence[len(res.Sequence)-1], res.FinalTier)
		}
	}
}

func TestDrawSessionInvalidLength(t *testing.T) {
	for _, length := range []int{0, 2, 11, 100, -1} {
		_, err := DrawSession(length, NewSeededSource(1))
		assert.Error(t, err, "length %d must be rejected", length)
	}
}

func TestDrawSessionGuarantee(t *testing.T) {
	t.Run("nine commons trigger guarantee on full session", func(t *testing.T) {
		// Every sample lands below the Common threshold. The tenth draw must
		// still come out non-Common because the guarantee branch excludes it.
		res, err := DrawSession(SessionFull, fixedSource{v: 0.5})
		require.NoError(t, err)

		assert.True(t, res.GuaranteeActive)
		assert.Equal(t, SessionShort, res.Tally.Common)
		assert.Equal(t, TierRare, res.FinalTier, "roll 50 resolves to Rare on the guarantee branch")
		for _, tier := range res.Sequence[:SessionShort] {
			assert.Equal(t, TierCommon, tier)
		}
	})

	t.Run("short session never applies guarantee", func(t *testing.T) {
		res, err := DrawSession(SessionShort, fixedSource{v: 0.5})
		require.NoError(t, err)

		assert.False(t, res.GuaranteeActive)
		assert.Equal(t, SessionShort, res.Tally.Common)
	})

	t.Run("guarantee branch tier boundaries", func(t *testing.T) {
		tests := []struct {
			name string
			roll float64 // final sample in [0,1)
			want Tier
		}{
			{"below rare cut is rare", 0.0, TierRare},
			{"just under standard cut", 0.9879, TierStandardEpic},
			{"top of range is featured", 0.999, TierFeaturedEpic},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				src := &scriptSource{values: []float64{
					0, 0, 0, 0, 0, 0, 0, 0, 0, // nine commons
					tt.roll,
				}}
				res, err := DrawSession(SessionFull, src)
				require.NoError(t, err)
				assert.True(t, res.GuaranteeActive)
				assert.Equal(t, tt.want, res.FinalTier)
			})
		}
	})
}

func TestTierForRollThresholds(t *testing.T) {
	tests := []struct {
		roll float64
		want Tier
	}{
		{0, TierCommon},
		{88.4999, TierCommon},
		{88.5, TierRare},
		{96.9999, TierRare},
		{97.0, TierStandardEpic},
		{98.7999, TierStandardEpic},
		{98.8, TierFeaturedEpic},
		{99.9999, TierFeaturedEpic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tierForRoll(tt.roll), "roll %v", tt.roll)
	}
}

func TestDrawSessionReproducible(t *testing.T) {
	a, err := DrawSession(SessionFull, NewSeededSource(7))
	require.NoError(t, err)
	b, err := DrawSession(SessionFull, NewSeededSource(7))
	require.NoError(t, err)

	assert.Equal(t, a, b, "seeded sources must reproduce the exact session")
}

func TestDrawSessionWithRuleMilestones(t *testing.T) {
	t.Run("forced featured wins regardless of samples", func(t *testing.T) {
		// Samples that would ordinarily produce Common everywhere.
		res, err := DrawSessionWithRule(SessionFull, RuleForcedFeatured, fixedSource{v: 0.0})
		require.NoError(t, err)

		assert.Equal(t, TierFeaturedEpic, res.FinalTier)
		assert.Equal(t, 1, res.Tally.FeaturedEpic)
		assert.False(t, res.GuaranteeActive, "milestone has precedence over the guarantee")
	})

	t.Run("forced epic splits standard and featured", func(t *testing.T) {
		low := &scriptSource{values: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0.5}}
		res, err := DrawSessionWithRule(SessionFull, RuleForcedEpic, low)
		require.NoError(t, err)
		assert.Equal(t, TierStandardEpic, res.FinalTier)

		high := &scriptSource{values: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0.995}}
		res, err = DrawSessionWithRule(SessionFull, RuleForcedEpic, high)
		require.NoError(t, err)
		assert.Equal(t, TierFeaturedEpic, res.FinalTier)
	})
}

func TestRuleForCount(t *testing.T) {
	tests := []struct {
		count int
		want  FinalDrawRule
	}{
		{1, RuleNormal},
		{9, RuleNormal},
		{10, RuleForcedEpic},
		{15, RuleNormal},
		{20, RuleForcedFeatured},
		{30, RuleForcedEpic},
		{40, RuleForcedFeatured},
		{199, RuleNormal},
		{200, RuleForcedFeatured},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RuleForCount(tt.count), "count %d", tt.count)
	}
}

func TestTallyWithoutFinal(t *testing.T) {
	tally := Tally{Common: 5, Rare: 3, StandardEpic: 1, FeaturedEpic: 1}
	firstNine := tally.WithoutFinal(TierFeaturedEpic)

	assert.Equal(t, SessionShort, firstNine.Sum())
	assert.Equal(t, 0, firstNine.FeaturedEpic)
	assert.Equal(t, 1, tally.FeaturedEpic, "original tally is unchanged")
}
