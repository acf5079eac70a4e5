package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/repositories"
	"github.com/yigit/eamcet-predictor/internal/pkg/admission"
	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
)

// CalculatorService defines the interface for the reverse rank calculator
type CalculatorService interface {
	ReverseCalculate(ctx context.Context, req *dto.ReverseCalculatorRequest) (*dto.ReverseCalculatorResult, error)
}

// calculatorServiceImpl implements CalculatorService
type calculatorServiceImpl struct {
	collegeRepo repositories.CollegeRepository
}

// NewCalculatorService creates a new CalculatorService
func NewCalculatorService(collegeRepo repositories.CollegeRepository) CalculatorService {
	return &calculatorServiceImpl{collegeRepo: collegeRepo}
}

// ReverseCalculate finds the worst rank that still reaches the desired probability for one quota
func (s *calculatorServiceImpl) ReverseCalculate(ctx context.Context, req *dto.ReverseCalculatorRequest) (*dto.ReverseCalculatorResult, error) {
	if req.DesiredProbability == nil {
		return nil, apperrors.NewValidationError("desiredProbability is required")
	}
	desired := *req.DesiredProbability

	college, err := findCollegeBranch(ctx, s.collegeRepo, req.Instcode, req.Branch)
	if err != nil {
		return nil, err
	}

	quota, ok := models.ParseQuota(req.Category)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrNoCutoff, "No cutoff data for this category")
	}
	cutoff, ok := college.Cutoff(quota)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrNoCutoff, "No cutoff data for this category")
	}

	rank, err := admission.ReverseRank(cutoff, desired)
	if err != nil {
		return nil, err
	}

	result := &dto.ReverseCalculatorResult{
		CollegeName:  college.Name,
		Branch:       college.Branch,
		Category:     quota.String(),
		Cutoff:       cutoff,
		RequiredRank: rank,
		Probability:  desired,
		Message: fmt.Sprintf("You need rank %d or better for %s%% admission chance",
			rank, strconv.FormatFloat(desired, 'f', -1, 64)),
	}
	if pred, ok := admission.Predict(rank, cutoff); ok {
		result.AchievedProbability = admission.Round2(pred.Probability)
	}

	logger.Debug().
		Str("instcode", college.Instcode).
		Str("branch", college.Branch).
		Str("quota", quota.String()).
		Int("required_rank", rank).
		Msg("Reverse calculated rank")

	return result, nil
}

// findCollegeBranch loads the single (instcode, branch) row or fails with a client error
func findCollegeBranch(ctx context.Context, repo repositories.CollegeRepository, instcode, branch string) (*models.College, error) {
	instcode = strings.TrimSpace(instcode)
	branch = strings.TrimSpace(branch)
	if instcode == "" || branch == "" {
		return nil, apperrors.NewBadRequestError("instcode and branch are required")
	}

	rows, err := repo.FindAll(ctx, repositories.CollegeFilter{
		Instcodes: []string{instcode},
		Branches:  []string{branch},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching college %s/%s: %w", instcode, branch, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "College not found")
	}
	return rows[0], nil
}
