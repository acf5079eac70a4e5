package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/eamcet-predictor/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Predictor  *controllers.PredictorController
	Calculator *controllers.CalculatorController
	College    *controllers.CollegeController
	Analytics  *controllers.AnalyticsController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers) {
	// Liveness endpoints, HEAD included for uptime monitors
	router.GET("/", ctrl.Health.Root)
	router.HEAD("/", ctrl.Health.Root)
	router.GET("/ping", ctrl.Health.Ping)
	router.HEAD("/ping", ctrl.Health.Ping)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// --- Prediction routes ---
	api.POST("/predict-colleges", ctrl.Predictor.PredictColleges)
	api.POST("/recommendations", ctrl.Predictor.Recommend)
	api.POST("/reverse-calculator", ctrl.Calculator.ReverseCalculate)

	// --- Analytics routes ---
	analytics := api.Group("/analytics")
	{
		analytics.GET("/summary", ctrl.Analytics.GetSummary)
		analytics.GET("/branches", ctrl.Analytics.GetBranches)
		analytics.GET("/branch-stats/:branch", ctrl.Analytics.GetBranchStats)
	}
	api.GET("/rankings/by-placement", ctrl.Analytics.GetPlacementRankings)

	// --- College lookup routes ---
	api.GET("/search/by-name", ctrl.College.SearchByName)
	api.GET("/colleges/:instcode/branches", ctrl.College.GetBranches)
	api.GET("/branches/availability", ctrl.College.GetBranchAvailability)
	api.GET("/cutoff-distribution/:instcode/:branch", ctrl.College.GetCutoffDistribution)
	api.GET("/similar-colleges/:instcode/:branch", ctrl.College.GetSimilarColleges)
}
