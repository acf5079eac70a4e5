package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/middleware"
)

// PredictorController handles prediction and recommendation requests
type PredictorController struct {
	predictorService services.PredictorService
}

// NewPredictorController creates a new PredictorController
func NewPredictorController(predictorService services.PredictorService) *PredictorController {
	return &PredictorController{
		predictorService: predictorService,
	}
}

// PredictColleges predicts admission chances for a rank
// @Summary Predict colleges for a rank
// @Description Returns one row per (college, branch, quota) matching the filters. With a rank every row carries an admission probability and the list is ordered by it; without a rank the rows are ordered by cutoff. A request with neither a rank nor a filter returns the plain record list.
// @Tags predictor
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Rank and filters"
// @Success 200 {array} dto.CollegeResult "Prediction rows"
// @Failure 400 {object} dto.ErrorResponse "Invalid rank, category or gender"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /predict-colleges [post]
func (c *PredictorController) PredictColleges(ctx *gin.Context) {
	var req dto.PredictRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if !req.HasCriteria() {
		all, err := c.predictorService.AllColleges(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, all)
		return
	}

	results, err := c.predictorService.FindColleges(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// Recommend returns scored recommendations for a rank
// @Summary Get college recommendations
// @Description Scores each predicted row by admission probability, placement quality, average package and tier and returns the best ones.
// @Tags predictor
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Rank and preferences"
// @Success 200 {array} dto.Recommendation "Recommendations ordered by score"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recommendations [post]
func (c *PredictorController) Recommend(ctx *gin.Context) {
	var req dto.RecommendationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	recs, err := c.predictorService.Recommend(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recs)
}
