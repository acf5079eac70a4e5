package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/repositories"
	"github.com/yigit/eamcet-predictor/internal/pkg/admission"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
	"github.com/yigit/eamcet-predictor/internal/pkg/metrics"
)

// PredictorService defines the interface for prediction operations
type PredictorService interface {
	FindColleges(ctx context.Context, req *dto.PredictRequest) ([]dto.CollegeResult, error)
	AllColleges(ctx context.Context) ([]dto.CollegeData, error)
	Recommend(ctx context.Context, req *dto.RecommendationRequest) ([]dto.Recommendation, error)
}

// predictorServiceImpl implements PredictorService
type predictorServiceImpl struct {
	collegeRepo repositories.CollegeRepository
	settings    Settings
}

// NewPredictorService creates a new PredictorService
func NewPredictorService(collegeRepo repositories.CollegeRepository, settings Settings) PredictorService {
	return &predictorServiceImpl{
		collegeRepo: collegeRepo,
		settings:    settings.withDefaults(),
	}
}

// FindColleges resolves the request filters, predicts every matching quota row and ranks them
func (s *predictorServiceImpl) FindColleges(ctx context.Context, req *dto.PredictRequest) ([]dto.CollegeResult, error) {
	crit, err := admission.Resolve(admission.Input{
		Rank:               req.Rank,
		Branches:           req.Branch,
		Category:           req.Category.String(),
		Gender:             req.Gender,
		Districts:          req.District,
		Regions:            req.Region,
		Tiers:              req.Tier,
		PlacementQualities: req.PlacementQualityFilter,
	})
	if err != nil {
		return nil, err
	}

	candidates, err := s.evaluate(ctx, crit, s.settings.MaxResults)
	if err != nil {
		return nil, err
	}

	results := make([]dto.CollegeResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, toCollegeResult(c))
	}

	metrics.RecordPrediction(crit.HasRank(), len(results))
	logger.Debug().
		Bool("rank_mode", crit.HasRank()).
		Int("quotas", len(crit.Quotas)).
		Int("results", len(results)).
		Msg("Predicted colleges")

	return results, nil
}

// evaluate fetches the structural candidates of the criteria and runs the engine over them
func (s *predictorServiceImpl) evaluate(ctx context.Context, crit *admission.Criteria, limit int) ([]admission.Candidate, error) {
	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{
		Branches:             crit.Branches,
		Districts:            crit.Districts,
		Regions:              crit.Regions,
		Tiers:                crit.Tiers,
		ExcludeWomenColleges: crit.ExcludeWomenColleges,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching candidate colleges: %w", err)
	}
	return admission.Evaluate(records, crit, limit), nil
}

// AllColleges returns every record in id order
func (s *predictorServiceImpl) AllColleges(ctx context.Context) ([]dto.CollegeData, error) {
	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{})
	if err != nil {
		return nil, fmt.Errorf("error fetching colleges: %w", err)
	}

	out := make([]dto.CollegeData, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.NewCollegeData(rec))
	}
	return out, nil
}

// Recommend runs a prediction for the request and re-ranks the rows by recommendation score
func (s *predictorServiceImpl) Recommend(ctx context.Context, req *dto.RecommendationRequest) ([]dto.Recommendation, error) {
	crit, err := admission.Resolve(admission.Input{
		Rank:     req.Rank,
		Branches: admission.ParseCSV(req.Branch),
		Category: req.Category,
		Gender:   req.Gender,
		Regions:  req.PreferredRegions,
	})
	if err != nil {
		return nil, err
	}

	candidates, err := s.evaluate(ctx, crit, s.settings.MaxResults)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		rec := c.College
		prob := roundedProbability(c)
		out = append(out, dto.Recommendation{
			Instcode:            rec.Instcode,
			CollegeName:         rec.Name,
			Branch:              rec.Branch,
			Cutoff:              c.Cutoff,
			Probability:         prob,
			AveragePackage:      rec.AveragePackage,
			PlacementQuality:    rec.PlacementDriveQuality,
			Tier:                rec.Tier,
			District:            rec.District,
			Region:              rec.Region,
			RecommendationScore: admission.Round2(admission.RecommendationScore(c.Probability(), rec.PlacementDriveQuality, rec.AveragePackage, rec.Tier)),
			RecommendationType:  string(admission.ClassifyRecommendation(c.Probability())),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationScore > out[j].RecommendationScore
	})
	out = truncate(out, s.settings.RecommendationLimit)

	logger.Debug().Int("results", len(out)).Msg("Built recommendations")
	return out, nil
}

func roundedProbability(c admission.Candidate) *float64 {
	p := c.Probability()
	if p == nil {
		return nil
	}
	v := admission.Round2(*p)
	return &v
}

func toCollegeResult(c admission.Candidate) dto.CollegeResult {
	rec := c.College
	res := dto.CollegeResult{
		Name:                  rec.Name,
		Region:                rec.Region,
		Place:                 rec.Place,
		Affl:                  rec.Affiliation,
		Branch:                rec.Branch,
		Cutoff:                c.Cutoff,
		Instcode:              rec.Instcode,
		Probability:           roundedProbability(c),
		District:              rec.District,
		Tier:                  rec.Tier,
		Category:              c.Quota.String(),
		HighestPackage:        rec.HighestPackage,
		AveragePackage:        rec.AveragePackage,
		PlacementDriveQuality: rec.PlacementDriveQuality,
	}
	if c.Prediction != nil {
		tier := string(c.Prediction.Tier)
		res.PredictionTier = &tier
	}
	return res
}
