package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/app/repositories"
	"github.com/yigit/eamcet-predictor/internal/pkg/admission"
	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
)

// CollegeService defines the interface for college lookup operations
type CollegeService interface {
	SearchByName(ctx context.Context, query string) ([]dto.CollegeData, error)
	BranchesForCollege(ctx context.Context, instcode string) ([]string, error)
	BranchAvailability(ctx context.Context, branch string) ([]dto.BranchAvailability, error)
	CutoffDistribution(ctx context.Context, instcode, branch string) (*dto.CutoffDistribution, error)
	SimilarColleges(ctx context.Context, instcode, branch, category string) ([]dto.SimilarCollege, error)
}

// collegeServiceImpl implements CollegeService
type collegeServiceImpl struct {
	collegeRepo repositories.CollegeRepository
	settings    Settings
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(collegeRepo repositories.CollegeRepository, settings Settings) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
		settings:    settings.withDefaults(),
	}
}

// SearchByName returns the records whose institution name contains query, ignoring case
func (s *collegeServiceImpl) SearchByName(ctx context.Context, query string) ([]dto.CollegeData, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewBadRequestError("Search query must not be empty")
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{NameContains: query})
	if err != nil {
		return nil, fmt.Errorf("error searching colleges: %w", err)
	}

	out := make([]dto.CollegeData, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.NewCollegeData(rec))
	}
	return out, nil
}

// BranchesForCollege lists the distinct branches offered by one institution
func (s *collegeServiceImpl) BranchesForCollege(ctx context.Context, instcode string) ([]string, error) {
	instcode = strings.TrimSpace(instcode)
	if instcode == "" {
		return nil, apperrors.NewBadRequestError("instcode is required")
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{Instcodes: []string{instcode}})
	if err != nil {
		return nil, fmt.Errorf("error fetching branches of %s: %w", instcode, err)
	}
	return distinctSorted(records, func(c *models.College) string { return c.Branch }), nil
}

// BranchAvailability lists one row per institution offering branch, ordered by instcode
func (s *collegeServiceImpl) BranchAvailability(ctx context.Context, branch string) ([]dto.BranchAvailability, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, apperrors.NewBadRequestError("branch is required")
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{Branches: []string{branch}})
	if err != nil {
		return nil, fmt.Errorf("error fetching availability of %s: %w", branch, err)
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]dto.BranchAvailability, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.Instcode]; dup {
			continue
		}
		seen[rec.Instcode] = struct{}{}
		out = append(out, dto.BranchAvailability{
			Instcode:    rec.Instcode,
			CollegeName: rec.Name,
			District:    rec.District,
			Region:      rec.Region,
			Tier:        rec.Tier,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Instcode < out[j].Instcode })
	return out, nil
}

// CutoffDistribution reports every quota cutoff of one college branch with summary statistics
func (s *collegeServiceImpl) CutoffDistribution(ctx context.Context, instcode, branch string) (*dto.CutoffDistribution, error) {
	college, err := findCollegeBranch(ctx, s.collegeRepo, instcode, branch)
	if err != nil {
		return nil, err
	}

	dist := &dto.CutoffDistribution{
		CollegeName:      college.Name,
		Branch:           college.Branch,
		CutoffByCategory: make(map[string]*int, models.NumCategories*models.NumGenders),
	}

	count, sum := 0, 0
	for _, q := range models.AllQuotas() {
		v, ok := college.Cutoff(q)
		if !ok {
			dist.CutoffByCategory[q.String()] = nil
			continue
		}
		cutoff := v
		dist.CutoffByCategory[q.String()] = &cutoff

		if count == 0 || v < dist.MinCutoff {
			dist.MinCutoff = v
		}
		if v > dist.MaxCutoff {
			dist.MaxCutoff = v
		}
		count++
		sum += v
	}
	if count > 0 {
		dist.AvgCutoff = sum / count
	}
	return dist, nil
}

// SimilarColleges finds other institutions offering the same branch with a close cutoff and package
func (s *collegeServiceImpl) SimilarColleges(ctx context.Context, instcode, branch, category string) ([]dto.SimilarCollege, error) {
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.NewBadRequestError("category is required")
	}
	quota, ok := models.ParseQuota(category)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCategory,
			fmt.Sprintf("Unknown category %q, expected a quota such as oc_boys", category))
	}

	target, err := findCollegeBranch(ctx, s.collegeRepo, instcode, branch)
	if err != nil {
		return nil, err
	}
	targetCutoff, ok := target.Cutoff(quota)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrNoCutoff, "No cutoff data for this category")
	}
	if target.AveragePackage == nil || *target.AveragePackage <= 0 {
		return []dto.SimilarCollege{}, nil
	}

	peers, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{Branches: []string{target.Branch}})
	if err != nil {
		return nil, fmt.Errorf("error fetching peers of %s/%s: %w", target.Instcode, target.Branch, err)
	}

	out := []dto.SimilarCollege{}
	for _, peer := range peers {
		if peer.Instcode == target.Instcode || peer.AveragePackage == nil {
			continue
		}
		cutoff, ok := peer.Cutoff(quota)
		if !ok {
			continue
		}
		score, ok := admission.Similarity(targetCutoff, cutoff, *target.AveragePackage, *peer.AveragePackage)
		if !ok {
			continue
		}
		out = append(out, dto.SimilarCollege{
			Instcode:        peer.Instcode,
			CollegeName:     peer.Name,
			Branch:          peer.Branch,
			Cutoff:          cutoff,
			AveragePackage:  peer.AveragePackage,
			Tier:            peer.Tier,
			SimilarityScore: admission.Round2(score),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SimilarityScore > out[j].SimilarityScore })
	return truncate(out, s.settings.SimilarLimit), nil
}

// distinctSorted collects the distinct non-empty values of a field
func distinctSorted(records []*models.College, field func(*models.College) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := []string{}
	for _, rec := range records {
		v := field(rec)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
