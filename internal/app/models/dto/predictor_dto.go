package dto

import (
	"strings"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

// PredictRequest is the body of POST /api/predict-colleges
type PredictRequest struct {
	Rank                   *int    `json:"rank" example:"4800"`
	Branch                 CSVList `json:"branch" swaggertype:"string" example:"CSE,ECE"`
	Category               CSVList `json:"category" swaggertype:"string" example:"oc"`
	District               CSVList `json:"district" swaggertype:"string" example:"HYD"`
	Region                 CSVList `json:"region" swaggertype:"string" example:"OU"`
	Tier                   CSVList `json:"tier" swaggertype:"string" example:"Tier 1"`
	PlacementQualityFilter CSVList `json:"placementQualityFilter" swaggertype:"string" example:"Excellent,Very Good"`
	Gender                 string  `json:"gender" example:"boys"`
}

// CollegeResult is one (college, branch, quota) prediction row
type CollegeResult struct {
	Name                  string   `json:"name" example:"JNTU College of Engineering"`
	Region                string   `json:"region" example:"OU"`
	Place                 string   `json:"place" example:"Kukatpally"`
	Affl                  string   `json:"affl" example:"JNTUH"`
	Branch                string   `json:"branch" example:"CSE"`
	Cutoff                *int     `json:"cutoff" example:"5000"`
	Instcode              string   `json:"instcode" example:"JNTH"`
	Probability           *float64 `json:"probability" example:"85.56"`
	District              string   `json:"district" example:"HYD"`
	Tier                  string   `json:"tier" example:"Tier 1"`
	Category              string   `json:"category" example:"oc_boys"`
	HighestPackage        *float64 `json:"highestPackage" example:"40"`
	AveragePackage        *float64 `json:"averagePackage" example:"9.5"`
	PlacementDriveQuality string   `json:"placementDriveQuality" example:"Excellent"`
	PredictionTier        *string  `json:"predictionTier" example:"Assured"`
}

// CollegeData is the plain record view used by the all-records dump and name search
type CollegeData struct {
	Instcode              string   `json:"instcode" example:"JNTH"`
	Name                  string   `json:"name" example:"JNTU College of Engineering"`
	Place                 string   `json:"place" example:"Kukatpally"`
	District              string   `json:"district" example:"HYD"`
	Region                string   `json:"region" example:"OU"`
	Division              string   `json:"division" example:"COED"`
	Branch                string   `json:"branch" example:"CSE"`
	Tier                  string   `json:"tier" example:"Tier 1"`
	AveragePackage        *float64 `json:"averagePackage" example:"9.5"`
	HighestPackage        *float64 `json:"highestPackage" example:"40"`
	PlacementDriveQuality string   `json:"placementDriveQuality" example:"Excellent"`
}

// NewCollegeData maps a record to its plain view
func NewCollegeData(c *models.College) CollegeData {
	return CollegeData{
		Instcode:              c.Instcode,
		Name:                  c.Name,
		Place:                 c.Place,
		District:              c.District,
		Region:                c.Region,
		Division:              c.Division,
		Branch:                c.Branch,
		Tier:                  c.Tier,
		AveragePackage:        c.AveragePackage,
		HighestPackage:        c.HighestPackage,
		PlacementDriveQuality: c.PlacementDriveQuality,
	}
}

// RecommendationRequest is the body of POST /api/recommendations
type RecommendationRequest struct {
	Rank             *int     `json:"rank" example:"4800"`
	Category         string   `json:"category" example:"oc"`
	Gender           string   `json:"gender" example:"girls"`
	Branch           string   `json:"branch" example:"CSE"`
	PreferredRegions []string `json:"preferredRegions" example:"OU,AU"`
}

// Recommendation is a scored prediction row
type Recommendation struct {
	Instcode            string   `json:"instcode" example:"JNTH"`
	CollegeName         string   `json:"collegeName" example:"JNTU College of Engineering"`
	Branch              string   `json:"branch" example:"CSE"`
	Cutoff              *int     `json:"cutoff" example:"5000"`
	Probability         *float64 `json:"probability" example:"85.56"`
	AveragePackage      *float64 `json:"averagePackage" example:"9.5"`
	PlacementQuality    string   `json:"placementQuality" example:"Excellent"`
	Tier                string   `json:"tier" example:"Tier 1"`
	District            string   `json:"district" example:"HYD"`
	Region              string   `json:"region" example:"OU"`
	RecommendationScore float64  `json:"recommendationScore" example:"88.2"`
	RecommendationType  string   `json:"recommendationType" example:"SAFE"`
}

// HasCriteria reports whether the request carries a usable rank or any filter.
// A request without either asks for the plain record list.
func (r *PredictRequest) HasCriteria() bool {
	if r.Rank != nil && *r.Rank != 0 {
		return true
	}
	return len(r.Branch) > 0 || len(r.Category) > 0 || len(r.District) > 0 ||
		len(r.Region) > 0 || len(r.Tier) > 0 || len(r.PlacementQualityFilter) > 0 ||
		strings.TrimSpace(r.Gender) != ""
}
