// Package services holds the business logic of the predictor API.
//
// Services defined in this package:
//   - PredictorService: rank predictions, the plain record list and recommendations
//   - CalculatorService: the reverse rank calculator
//   - CollegeService: name search, branch lookups, cutoff distribution and similar colleges
//   - AnalyticsService: cached table aggregates and placement rankings
package services

import "github.com/yigit/eamcet-predictor/internal/app/repositories"

// Services holds all the service instances
type Services struct {
	Predictor  PredictorService
	Calculator CalculatorService
	College    CollegeService
	Analytics  AnalyticsService
}

// NewServices wires every service onto the repositories
func NewServices(repos *repositories.Repositories, analytics AnalyticsService, settings Settings) *Services {
	return &Services{
		Predictor:  NewPredictorService(repos.CollegeRepository, settings),
		Calculator: NewCalculatorService(repos.CollegeRepository),
		College:    NewCollegeService(repos.CollegeRepository, settings),
		Analytics:  analytics,
	}
}
