package dto

// ReverseCalculatorRequest is the body of POST /api/reverse-calculator
type ReverseCalculatorRequest struct {
	Instcode           string   `json:"instcode" validate:"required" example:"JNTH"`
	Branch             string   `json:"branch" validate:"required" example:"CSE"`
	Category           string   `json:"category" validate:"required" example:"oc_boys"`
	DesiredProbability *float64 `json:"desiredProbability" validate:"required" example:"70"`
}

// ReverseCalculatorResult is the rank needed for a desired admission chance
type ReverseCalculatorResult struct {
	CollegeName  string  `json:"collegeName" example:"JNTU College of Engineering"`
	Branch       string  `json:"branch" example:"CSE"`
	Category     string  `json:"category" example:"oc_boys"`
	Cutoff       int     `json:"cutoff" example:"5000"`
	RequiredRank int     `json:"requiredRank" example:"5083"`
	Probability  float64 `json:"probability" example:"70"`
	// probability predicted at RequiredRank
	AchievedProbability float64 `json:"achievedProbability" example:"70.02"`
	Message             string  `json:"message" example:"You need rank 5083 or better for 70% admission chance"`
}

// BranchAvailability is one college offering a branch
type BranchAvailability struct {
	Instcode    string `json:"instcode" example:"JNTH"`
	CollegeName string `json:"collegeName" example:"JNTU College of Engineering"`
	District    string `json:"district" example:"HYD"`
	Region      string `json:"region" example:"OU"`
	Tier        string `json:"tier" example:"Tier 1"`
}

// CutoffDistribution lists every quota cutoff of one college branch
type CutoffDistribution struct {
	CollegeName      string          `json:"collegeName" example:"JNTU College of Engineering"`
	Branch           string          `json:"branch" example:"CSE"`
	CutoffByCategory map[string]*int `json:"cutoffByCategory"`
	MinCutoff        int             `json:"minCutoff" example:"1200"`
	MaxCutoff        int             `json:"maxCutoff" example:"25000"`
	AvgCutoff        int             `json:"avgCutoff" example:"8400"`
}

// SimilarCollege is a college branch close to a target in cutoff and package
type SimilarCollege struct {
	Instcode        string   `json:"instcode" example:"CBIT"`
	CollegeName     string   `json:"collegeName" example:"Chaitanya Bharathi Institute of Technology"`
	Branch          string   `json:"branch" example:"CSE"`
	Cutoff          int      `json:"cutoff" example:"5400"`
	AveragePackage  *float64 `json:"averagePackage" example:"9.1"`
	Tier            string   `json:"tier" example:"Tier 1"`
	SimilarityScore float64  `json:"similarityScore" example:"93.4"`
}
