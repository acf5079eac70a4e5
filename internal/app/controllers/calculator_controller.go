package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/middleware"
)

// CalculatorController handles the reverse rank calculator
type CalculatorController struct {
	calculatorService services.CalculatorService
}

// NewCalculatorController creates a new CalculatorController
func NewCalculatorController(calculatorService services.CalculatorService) *CalculatorController {
	return &CalculatorController{
		calculatorService: calculatorService,
	}
}

// ReverseCalculate computes the rank needed for a desired admission probability
// @Summary Reverse rank calculator
// @Description Returns the largest rank that still reaches the desired probability (5 to 99) for one college, branch and quota.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.ReverseCalculatorRequest true "College, branch, quota and desired probability"
// @Success 200 {object} dto.ReverseCalculatorResult "Required rank"
// @Failure 400 {object} dto.ErrorResponse "College not found, no cutoff or probability out of range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reverse-calculator [post]
func (c *CalculatorController) ReverseCalculate(ctx *gin.Context) {
	var req dto.ReverseCalculatorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.calculatorService.ReverseCalculate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
