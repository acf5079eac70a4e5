package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/middleware"
)

// AnalyticsController handles aggregate statistics requests
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetSummary returns table-wide counts and package averages
// @Summary Get analytics summary
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsSummary "Summary"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/summary [get]
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	summary, err := c.analyticsService.Summary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetBranches lists every branch code
// @Summary Get all branches
// @Tags analytics
// @Produce json
// @Success 200 {array} string "Branch codes"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/branches [get]
func (c *AnalyticsController) GetBranches(ctx *gin.Context) {
	branches, err := c.analyticsService.Branches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, branches)
}

// GetBranchStats returns package statistics for one branch
// @Summary Get branch statistics
// @Tags analytics
// @Produce json
// @Param branch path string true "Branch code"
// @Success 200 {object} dto.BranchStats "Branch statistics"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/branch-stats/{branch} [get]
func (c *AnalyticsController) GetBranchStats(ctx *gin.Context) {
	stats, err := c.analyticsService.BranchStats(ctx, ctx.Param("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetPlacementRankings ranks colleges by placement quality and average package
// @Summary Get placement rankings
// @Tags analytics
// @Produce json
// @Param branch query string false "Branch code"
// @Param tier query string false "Tier, e.g. Tier 1"
// @Success 200 {array} dto.PlacementRanking "Rankings"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rankings/by-placement [get]
func (c *AnalyticsController) GetPlacementRankings(ctx *gin.Context) {
	rankings, err := c.analyticsService.PlacementRankings(ctx, ctx.Query("branch"), ctx.Query("tier"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rankings)
}
