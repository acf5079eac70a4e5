package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/middleware"
)

// CollegeController handles college lookup requests
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// SearchByName searches colleges by institution name
// @Summary Search colleges by name
// @Description Case-insensitive substring search on the institution name
// @Tags colleges
// @Produce json
// @Param query query string true "Part of the institution name"
// @Success 200 {array} dto.CollegeData "Matching records"
// @Failure 400 {object} dto.ErrorResponse "Empty query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search/by-name [get]
func (c *CollegeController) SearchByName(ctx *gin.Context) {
	colleges, err := c.collegeService.SearchByName(ctx, ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, colleges)
}

// GetBranches lists the branches offered by a college
// @Summary Get branches of a college
// @Tags colleges
// @Produce json
// @Param instcode path string true "Institution code"
// @Success 200 {array} string "Branch codes"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{instcode}/branches [get]
func (c *CollegeController) GetBranches(ctx *gin.Context) {
	branches, err := c.collegeService.BranchesForCollege(ctx, ctx.Param("instcode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, branches)
}

// GetBranchAvailability lists the colleges offering a branch
// @Summary Get branch availability
// @Tags colleges
// @Produce json
// @Param branch query string true "Branch code"
// @Success 200 {array} dto.BranchAvailability "Colleges offering the branch"
// @Failure 400 {object} dto.ErrorResponse "Missing branch"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/availability [get]
func (c *CollegeController) GetBranchAvailability(ctx *gin.Context) {
	rows, err := c.collegeService.BranchAvailability(ctx, ctx.Query("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetCutoffDistribution returns every quota cutoff of a college branch
// @Summary Get cutoff distribution
// @Tags colleges
// @Produce json
// @Param instcode path string true "Institution code"
// @Param branch path string true "Branch code"
// @Success 200 {object} dto.CutoffDistribution "Cutoffs by quota"
// @Failure 400 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cutoff-distribution/{instcode}/{branch} [get]
func (c *CollegeController) GetCutoffDistribution(ctx *gin.Context) {
	dist, err := c.collegeService.CutoffDistribution(ctx, ctx.Param("instcode"), ctx.Param("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dist)
}

// GetSimilarColleges finds colleges close to a target in cutoff and package
// @Summary Get similar colleges
// @Description Other colleges offering the same branch whose cutoff is within 15% and average package within 20% of the target
// @Tags colleges
// @Produce json
// @Param instcode path string true "Institution code"
// @Param branch path string true "Branch code"
// @Param category query string true "Quota, e.g. oc_boys"
// @Success 200 {array} dto.SimilarCollege "Similar colleges ordered by score"
// @Failure 400 {object} dto.ErrorResponse "College not found or no cutoff for the quota"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /similar-colleges/{instcode}/{branch} [get]
func (c *CollegeController) GetSimilarColleges(ctx *gin.Context) {
	similar, err := c.collegeService.SimilarColleges(ctx, ctx.Param("instcode"), ctx.Param("branch"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, similar)
}
