package dto

// AnalyticsSummary aggregates the reference table
type AnalyticsSummary struct {
	TotalColleges      int                `json:"totalColleges" example:"180"`
	CollegesByRegion   map[string]int64   `json:"collegesByRegion"`
	CollegesByTier     map[string]int64   `json:"collegesByTier"`
	CollegesByBranch   map[string]int64   `json:"collegesByBranch"`
	AvgPackageOverall  float64            `json:"avgPackageOverall" example:"5.4"`
	AvgPackageByBranch map[string]float64 `json:"avgPackageByBranch"`
}

// BranchStats are package statistics for one branch
type BranchStats struct {
	Branch        string  `json:"branch" example:"CSE"`
	TotalColleges int     `json:"totalColleges" example:"150"`
	AvgPackage    float64 `json:"avgPackage" example:"6.1"`
	MaxPackage    float64 `json:"maxPackage" example:"18"`
	MinPackage    float64 `json:"minPackage" example:"2.5"`
}

// PlacementRanking is one row of the placement leaderboard
type PlacementRanking struct {
	CollegeName      string   `json:"collegeName" example:"JNTU College of Engineering"`
	Branch           string   `json:"branch" example:"CSE"`
	AveragePackage   *float64 `json:"averagePackage" example:"9.5"`
	HighestPackage   *float64 `json:"highestPackage" example:"40"`
	PlacementQuality string   `json:"placementQuality" example:"Excellent"`
	Tier             string   `json:"tier" example:"Tier 1"`
}
