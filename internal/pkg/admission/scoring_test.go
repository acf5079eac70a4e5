package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestQualityAndTierScores(t *testing.T) {
	assert.Equal(t, 4, QualityScore("Excellent"))
	assert.Equal(t, 3, QualityScore("Very Good"))
	assert.Equal(t, 2, QualityScore("Good"))
	assert.Equal(t, 1, QualityScore("Bad"))
	assert.Equal(t, 0, QualityScore(""))
	assert.Equal(t, 0, QualityScore("excellent"))

	assert.Equal(t, 1.0, TierScore("Tier 1"))
	assert.Equal(t, 0.7, TierScore("Tier 2"))
	assert.Equal(t, 0.4, TierScore("Tier 3"))
	assert.Equal(t, 0.1, TierScore("Tier X"))
}

func TestRecommendationScore(t *testing.T) {
	full := RecommendationScore(floatPtr(100), "Excellent", floatPtr(25), "Tier 1")
	assert.InDelta(t, 100.0, full, 1e-9)

	// package component saturates at 10 LPA
	assert.InDelta(t, full, RecommendationScore(floatPtr(100), "Excellent", floatPtr(10), "Tier 1"), 1e-9)

	s := RecommendationScore(floatPtr(50), "Good", floatPtr(5), "Tier 2")
	assert.InDelta(t, 20+15+10+7, s, 1e-9)

	s = RecommendationScore(nil, "", nil, "")
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestClassifyRecommendation(t *testing.T) {
	assert.Equal(t, RecommendationExplore, ClassifyRecommendation(nil))
	assert.Equal(t, RecommendationSafe, ClassifyRecommendation(floatPtr(85)))
	assert.Equal(t, RecommendationModerate, ClassifyRecommendation(floatPtr(84.99)))
	assert.Equal(t, RecommendationModerate, ClassifyRecommendation(floatPtr(40)))
	assert.Equal(t, RecommendationReach, ClassifyRecommendation(floatPtr(39.9)))
}

func TestSimilarity(t *testing.T) {
	score, ok := Similarity(10000, 10000, 6, 6)
	require.True(t, ok)
	assert.Equal(t, 100.0, score)

	score, ok = Similarity(10000, 11000, 5, 5.5)
	require.True(t, ok)
	assert.InDelta(t, 100-(0.1*50+0.1*50), score, 1e-9)

	_, ok = Similarity(10000, 11600, 5, 5)
	assert.False(t, ok, "cutoff too far")

	_, ok = Similarity(10000, 10000, 5, 6.5)
	assert.False(t, ok, "package too far")

	_, ok = Similarity(10000, 10000, 0, 5)
	assert.False(t, ok)
}
