package admission

import "math"

var qualityScores = map[string]int{
	"Excellent": 4,
	"Very Good": 3,
	"Good":      2,
	"Bad":       1,
}

// QualityScore maps a placement drive quality label to 0..4
func QualityScore(quality string) int {
	return qualityScores[quality]
}

// TierScore weights a college tier for recommendations
func TierScore(tier string) float64 {
	switch tier {
	case "Tier 1":
		return 1.0
	case "Tier 2":
		return 0.7
	case "Tier 3":
		return 0.4
	}
	return 0.1
}

// Recommendation score weights, summing to 100
const (
	weightProbability = 40.0
	weightQuality     = 30.0
	weightPackage     = 20.0
	weightTier        = 10.0

	// average package (LPA) at which the package component saturates
	packageSaturation = 10.0
)

// RecommendationScore combines probability, placement quality, average package and tier into 0..100
func RecommendationScore(probability *float64, quality string, avgPackage *float64, tier string) float64 {
	var score float64
	if probability != nil {
		score += *probability / 100 * weightProbability
	}
	score += float64(QualityScore(quality)) / 4 * weightQuality
	if avgPackage != nil && *avgPackage > 0 {
		score += math.Min(*avgPackage/packageSaturation, 1) * weightPackage
	}
	score += TierScore(tier) * weightTier
	return score
}

// RecommendationType labels a row by how safe the pick is
type RecommendationType string

const (
	RecommendationSafe     RecommendationType = "SAFE"
	RecommendationModerate RecommendationType = "MODERATE"
	RecommendationReach    RecommendationType = "REACH"
	RecommendationExplore  RecommendationType = "EXPLORE"
)

// ClassifyRecommendation labels a probability; nil means it could not be computed
func ClassifyRecommendation(probability *float64) RecommendationType {
	switch {
	case probability == nil:
		return RecommendationExplore
	case *probability >= AssuredFloor:
		return RecommendationSafe
	case *probability >= ReachableFloor:
		return RecommendationModerate
	}
	return RecommendationReach
}

// Similarity thresholds on relative differences
const (
	MaxCutoffDiff  = 0.15
	MaxPackageDiff = 0.20
)

// Similarity scores a candidate against a target by relative cutoff and package distance.
// ok is false when either difference exceeds its threshold or the target values are unusable.
func Similarity(targetCutoff, cutoff int, targetPackage, pkg float64) (float64, bool) {
	if targetCutoff <= 0 || targetPackage <= 0 {
		return 0, false
	}
	cutDiff := math.Abs(float64(cutoff-targetCutoff)) / float64(targetCutoff)
	pkgDiff := math.Abs(pkg-targetPackage) / targetPackage
	if cutDiff > MaxCutoffDiff || pkgDiff > MaxPackageDiff {
		return 0, false
	}
	return 100 - (cutDiff*50 + pkgDiff*50), true
}
