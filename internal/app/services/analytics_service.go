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
	"github.com/yigit/eamcet-predictor/internal/pkg/cache"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
)

// Cache keys of the analytics endpoints
const (
	cacheKeySummary  = "eamcet:analytics:summary"
	cacheKeyBranches = "eamcet:analytics:branches"
)

// AnalyticsService defines the interface for aggregate statistics
type AnalyticsService interface {
	Summary(ctx context.Context) (*dto.AnalyticsSummary, error)
	Branches(ctx context.Context) ([]string, error)
	BranchStats(ctx context.Context, branch string) (*dto.BranchStats, error)
	PlacementRankings(ctx context.Context, branch, tier string) ([]dto.PlacementRanking, error)
	// InvalidateCache drops the cached aggregates after a data load
	InvalidateCache(ctx context.Context) error
}

// analyticsServiceImpl implements AnalyticsService
type analyticsServiceImpl struct {
	collegeRepo repositories.CollegeRepository
	cache       cache.Cache
	settings    Settings
}

// NewAnalyticsService creates a new AnalyticsService. A nil cache disables caching.
func NewAnalyticsService(collegeRepo repositories.CollegeRepository, c cache.Cache, settings Settings) AnalyticsService {
	if c == nil {
		c = cache.NoopCache{}
	}
	return &analyticsServiceImpl{
		collegeRepo: collegeRepo,
		cache:       c,
		settings:    settings.withDefaults(),
	}
}

// Summary aggregates the whole table
func (s *analyticsServiceImpl) Summary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	var cached dto.AnalyticsSummary
	if cache.GetJSON(ctx, s.cache, cacheKeySummary, &cached) {
		return &cached, nil
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{})
	if err != nil {
		return nil, fmt.Errorf("error fetching colleges for summary: %w", err)
	}

	summary := buildSummary(records)
	cache.SetJSON(ctx, s.cache, cacheKeySummary, summary, s.settings.CacheTTL)
	return summary, nil
}

func buildSummary(records []*models.College) *dto.AnalyticsSummary {
	summary := &dto.AnalyticsSummary{
		CollegesByRegion:   map[string]int64{},
		CollegesByTier:     map[string]int64{},
		CollegesByBranch:   map[string]int64{},
		AvgPackageByBranch: map[string]float64{},
	}

	instcodes := make(map[string]struct{})
	var pkgSum float64
	var pkgCount int
	branchSum := map[string]float64{}
	branchCount := map[string]int{}

	for _, rec := range records {
		if rec.Instcode != "" {
			instcodes[rec.Instcode] = struct{}{}
		}
		if rec.Region != "" {
			summary.CollegesByRegion[rec.Region]++
		}
		if rec.Tier != "" {
			summary.CollegesByTier[rec.Tier]++
		}
		if rec.Branch != "" {
			summary.CollegesByBranch[rec.Branch]++
		}
		if rec.AveragePackage != nil {
			pkgSum += *rec.AveragePackage
			pkgCount++
			if rec.Branch != "" {
				branchSum[rec.Branch] += *rec.AveragePackage
				branchCount[rec.Branch]++
			}
		}
	}

	summary.TotalColleges = len(instcodes)
	if pkgCount > 0 {
		summary.AvgPackageOverall = admission.Round2(pkgSum / float64(pkgCount))
	}
	for branch, sum := range branchSum {
		summary.AvgPackageByBranch[branch] = admission.Round2(sum / float64(branchCount[branch]))
	}
	return summary
}

// Branches returns every distinct branch code
func (s *analyticsServiceImpl) Branches(ctx context.Context) ([]string, error) {
	var cached []string
	if cache.GetJSON(ctx, s.cache, cacheKeyBranches, &cached) {
		return cached, nil
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{})
	if err != nil {
		return nil, fmt.Errorf("error fetching branches: %w", err)
	}

	branches := distinctSorted(records, func(c *models.College) string { return c.Branch })
	cache.SetJSON(ctx, s.cache, cacheKeyBranches, branches, s.settings.CacheTTL)
	return branches, nil
}

// BranchStats summarizes the average packages of one branch
func (s *analyticsServiceImpl) BranchStats(ctx context.Context, branch string) (*dto.BranchStats, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, apperrors.NewBadRequestError("branch is required")
	}

	records, err := s.collegeRepo.FindAll(ctx, repositories.CollegeFilter{Branches: []string{branch}})
	if err != nil {
		return nil, fmt.Errorf("error fetching stats of %s: %w", branch, err)
	}

	stats := &dto.BranchStats{Branch: branch, TotalColleges: len(records)}
	var sum float64
	var n int
	for _, rec := range records {
		if rec.AveragePackage == nil {
			continue
		}
		v := *rec.AveragePackage
		if n == 0 || v < stats.MinPackage {
			stats.MinPackage = v
		}
		if n == 0 || v > stats.MaxPackage {
			stats.MaxPackage = v
		}
		sum += v
		n++
	}
	if n > 0 {
		stats.AvgPackage = admission.Round2(sum / float64(n))
	}
	return stats, nil
}

// PlacementRankings orders rows with a known package by placement quality, then average package
func (s *analyticsServiceImpl) PlacementRankings(ctx context.Context, branch, tier string) ([]dto.PlacementRanking, error) {
	filter := repositories.CollegeFilter{}
	if b := strings.TrimSpace(branch); b != "" {
		filter.Branches = []string{b}
	}
	if t := strings.TrimSpace(tier); t != "" {
		filter.Tiers = []string{t}
	}

	records, err := s.collegeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching placement rankings: %w", err)
	}

	ranked := make([]*models.College, 0, len(records))
	for _, rec := range records {
		if rec.AveragePackage != nil {
			ranked = append(ranked, rec)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		qi, qj := admission.QualityScore(ranked[i].PlacementDriveQuality), admission.QualityScore(ranked[j].PlacementDriveQuality)
		if qi != qj {
			return qi > qj
		}
		return *ranked[i].AveragePackage > *ranked[j].AveragePackage
	})
	ranked = truncate(ranked, s.settings.RankingLimit)

	out := make([]dto.PlacementRanking, 0, len(ranked))
	for _, rec := range ranked {
		out = append(out, dto.PlacementRanking{
			CollegeName:      rec.Name,
			Branch:           rec.Branch,
			AveragePackage:   rec.AveragePackage,
			HighestPackage:   rec.HighestPackage,
			PlacementQuality: rec.PlacementDriveQuality,
			Tier:             rec.Tier,
		})
	}
	return out, nil
}

// InvalidateCache drops the cached aggregates
func (s *analyticsServiceImpl) InvalidateCache(ctx context.Context) error {
	if err := s.cache.Del(ctx, cacheKeySummary, cacheKeyBranches); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate analytics cache")
		return err
	}
	return nil
}
