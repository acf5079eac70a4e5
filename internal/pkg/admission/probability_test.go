package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
)

func TestPredict_Boundaries(t *testing.T) {
	for _, c := range []int{100, 1000, 5000, 12345, 80000} {
		b := Boundaries(c)

		at, ok := Predict(int(b.Assured), c)
		require.True(t, ok)
		assert.Equal(t, TierAssured, at.Tier)
		assert.GreaterOrEqual(t, at.Probability, AssuredFloor)

		reach, ok := Predict(int(b.Reachable), c)
		require.True(t, ok)
		assert.Equal(t, TierReachable, reach.Tier)
		assert.InDelta(t, ReachableFloor, reach.Probability, 45.0/(b.Reachable-b.Assured)+1e-9)

		amb, ok := Predict(int(b.Ambitious), c)
		require.True(t, ok)
		assert.Equal(t, TierAmbitious, amb.Tier)
		assert.InDelta(t, AmbitiousFloor, amb.Probability, 35.0/(b.Ambitious-b.Reachable)+1e-9)

		_, ok = Predict(int(b.Ambitious)+1, c)
		assert.False(t, ok, "rank past the ambitious boundary for cutoff %d", c)
	}
}

func TestPredict_WorkedExamples(t *testing.T) {
	tests := []struct {
		name string
		rank int
		tier PredictionTier
		want float64
	}{
		{"assured", 4700, TierAssured, 85 + 14*300.0/5000},
		{"just past assured", 4800, TierReachable, 40 + 45*700.0/750},
		{"reachable", 5400, TierReachable, 46},
		{"reachable boundary", 5500, TierReachable, 40},
		{"ambitious", 6000, TierAmbitious, 5 + 35*250.0/750},
		{"ambitious boundary", 6250, TierAmbitious, 5},
		{"top rank", 1, TierAssured, 85 + 14*4999.0/5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Predict(tt.rank, 5000)
			require.True(t, ok)
			assert.Equal(t, tt.tier, got.Tier)
			assert.InDelta(t, tt.want, got.Probability, 1e-9)
			assert.LessOrEqual(t, got.Probability, MaxProbability)
		})
	}
}

func TestPredict_Unusable(t *testing.T) {
	_, ok := Predict(6251, 5000)
	assert.False(t, ok)

	_, ok = Predict(100, 0)
	assert.False(t, ok)

	_, ok = Predict(100, -5)
	assert.False(t, ok)
}

func TestPredict_MonotonicInRank(t *testing.T) {
	prev := 100.0
	for r := 1; r <= 6250; r += 7 {
		p, ok := Predict(r, 5000)
		require.True(t, ok)
		assert.LessOrEqual(t, p.Probability, prev, "rank %d", r)
		prev = p.Probability
	}
}

func TestReverseRank_RoundTrip(t *testing.T) {
	for _, c := range []int{1000, 5000, 25000} {
		for p := 5; p <= 99; p++ {
			rank, err := ReverseRank(c, float64(p))
			require.NoError(t, err)
			require.GreaterOrEqual(t, rank, 1)

			got, ok := Predict(rank, c)
			require.True(t, ok, "cutoff %d p %d rank %d", c, p, rank)
			if rank > 1 {
				assert.GreaterOrEqual(t, got.Probability, float64(p)-1e-6, "cutoff %d p %d", c, p)
			}
			assert.InDelta(t, float64(p), got.Probability, 1.0, "cutoff %d p %d", c, p)
		}
	}
}

func TestReverseRank_KnownValues(t *testing.T) {
	rank, err := ReverseRank(5000, 40)
	require.NoError(t, err)
	assert.Equal(t, 5500, rank)

	rank, err = ReverseRank(5000, 5)
	require.NoError(t, err)
	assert.Equal(t, 6250, rank)

	rank, err = ReverseRank(5000, 85)
	require.NoError(t, err)
	assert.Equal(t, 4750, rank)

	rank, err = ReverseRank(5000, 99)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestReverseRank_InvalidInput(t *testing.T) {
	_, err := ReverseRank(5000, 4.9)
	assert.ErrorIs(t, err, apperrors.ErrInvalidProbability)

	_, err = ReverseRank(5000, 100)
	assert.ErrorIs(t, err, apperrors.ErrInvalidProbability)

	_, err = ReverseRank(0, 50)
	assert.ErrorIs(t, err, apperrors.ErrNoCutoff)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 46.0, Round2(46.0000001))
	assert.Equal(t, 85.56, Round2(85.556))
}
