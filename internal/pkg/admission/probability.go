package admission

import (
	"fmt"
	"math"

	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
)

// Boundary factors relative to the cutoff
const (
	AssuredFactor   = 0.95
	ReachableFactor = 1.10
	AmbitiousFactor = 1.25
)

// Probability anchors of the piecewise-linear curve, in percent
const (
	AssuredFloor   = 85.0
	AssuredSpan    = 14.0
	MaxProbability = 99.0
	ReachableFloor = 40.0
	AmbitiousFloor = 5.0
)

// PredictionTier labels the segment of the curve a rank falls in
type PredictionTier string

const (
	TierAssured   PredictionTier = "Assured"
	TierReachable PredictionTier = "Reachable"
	TierAmbitious PredictionTier = "Ambitious"
)

// Bounds are the rank boundaries derived from one cutoff
type Bounds struct {
	Cutoff    float64
	Assured   float64
	Reachable float64
	Ambitious float64
}

// Boundaries computes the boundaries of a cutoff
func Boundaries(cutoff int) Bounds {
	c := float64(cutoff)
	return Bounds{
		Cutoff:    c,
		Assured:   c * AssuredFactor,
		Reachable: c * ReachableFactor,
		Ambitious: c * AmbitiousFactor,
	}
}

// Prediction is the admission estimate for one rank against one cutoff
type Prediction struct {
	Probability float64
	Tier        PredictionTier
}

// Predict computes the admission probability of rank against cutoff.
// ok is false when the cutoff is unusable or the rank is past the ambitious boundary.
func Predict(rank, cutoff int) (Prediction, bool) {
	if cutoff <= 0 || rank <= 0 {
		return Prediction{}, false
	}
	b := Boundaries(cutoff)
	r := float64(rank)

	switch {
	case r <= b.Assured:
		p := AssuredFloor + AssuredSpan*(b.Cutoff-r)/b.Cutoff
		return Prediction{Probability: math.Min(MaxProbability, p), Tier: TierAssured}, true
	case r <= b.Reachable:
		p := ReachableFloor + (AssuredFloor-ReachableFloor)*(b.Reachable-r)/(b.Reachable-b.Assured)
		return Prediction{Probability: p, Tier: TierReachable}, true
	case r <= b.Ambitious:
		p := AmbitiousFloor + (ReachableFloor-AmbitiousFloor)*(b.Ambitious-r)/(b.Ambitious-b.Reachable)
		return Prediction{Probability: p, Tier: TierAmbitious}, true
	}
	return Prediction{}, false
}

// ReverseRank returns the largest rank whose probability is at least desired.
// desired must lie in [5, 99]. Values between the reachable ceiling (85) and the
// lowest assured probability map onto the assured boundary.
func ReverseRank(cutoff int, desired float64) (int, error) {
	if cutoff <= 0 {
		return 0, apperrors.ErrNoCutoff
	}
	if math.IsNaN(desired) || desired < AmbitiousFloor || desired > MaxProbability {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidProbability,
			fmt.Sprintf("Desired probability must be between %.0f and %.0f", AmbitiousFloor, MaxProbability))
	}

	b := Boundaries(cutoff)
	assuredStart := AssuredFloor + AssuredSpan*(b.Cutoff-b.Assured)/b.Cutoff

	var r float64
	switch {
	case desired >= assuredStart:
		r = b.Cutoff - (desired-AssuredFloor)*b.Cutoff/AssuredSpan
	case desired >= AssuredFloor:
		r = b.Assured
	case desired >= ReachableFloor:
		r = b.Reachable - (desired-ReachableFloor)/(AssuredFloor-ReachableFloor)*(b.Reachable-b.Assured)
	default:
		r = b.Ambitious - (desired-AmbitiousFloor)/(ReachableFloor-AmbitiousFloor)*(b.Ambitious-b.Reachable)
	}

	// tiny epsilon keeps exact boundaries from flooring one rank too low
	rank := int(math.Floor(r + 1e-9))
	if rank < 1 {
		rank = 1
	}
	return rank, nil
}

// Round2 rounds a probability or score to two decimals
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
