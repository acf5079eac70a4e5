package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
)

func TestFindColleges_RankMode(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{
		Rank:     intPtr(4800),
		Branch:   dto.CSVList{"CSE"},
		Category: dto.CSVList{"oc"},
		Gender:   "boys",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// 4800 against 20000 is deep in the assured band, 5400 just inside it, 5000 reachable
	assert.Equal(t, "ANUC", results[0].Instcode)
	assert.Equal(t, "CBIT", results[1].Instcode)
	assert.Equal(t, "JNTH", results[2].Instcode)

	require.NotNil(t, results[1].Probability)
	assert.InDelta(t, 86.56, *results[1].Probability, 0.01)
	require.NotNil(t, results[1].PredictionTier)
	assert.Equal(t, "Assured", *results[1].PredictionTier)

	require.NotNil(t, results[2].Probability)
	assert.InDelta(t, 82.0, *results[2].Probability, 0.01)
	assert.Equal(t, "Reachable", *results[2].PredictionTier)

	for _, r := range results {
		assert.Equal(t, "oc_boys", r.Category)
		assert.NotEqual(t, "GNIT", r.Instcode, "women's college must not be offered to boys")
	}
}

func TestFindColleges_NoRankMode(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{
		Branch: dto.CSVList{"CSE"},
	})
	require.NoError(t, err)
	require.Len(t, results, 5)

	cutoffs := make([]int, 0, len(results))
	for _, r := range results {
		assert.Nil(t, r.Probability)
		assert.Nil(t, r.PredictionTier)
		require.NotNil(t, r.Cutoff)
		cutoffs = append(cutoffs, *r.Cutoff)
	}
	assert.Equal(t, []int{5000, 5400, 6000, 9000, 20000}, cutoffs)
}

func TestFindColleges_GirlsSeeWomensColleges(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{
		Rank:     intPtr(8000),
		Branch:   dto.CSVList{"CSE"},
		Category: dto.CSVList{"oc"},
		Gender:   "female",
	})
	require.NoError(t, err)

	instcodes := []string{}
	for _, r := range results {
		instcodes = append(instcodes, r.Instcode)
		assert.Equal(t, "oc_girls", r.Category)
	}
	assert.Contains(t, instcodes, "GNIT")
}

func TestFindColleges_PlacementQualityFilter(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{
		Rank:                   intPtr(4800),
		PlacementQualityFilter: dto.CSVList{"Excellent"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "Excellent", r.PlacementDriveQuality)
	}
}

func TestFindColleges_AddingFiltersNeverAddsRows(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())
	ctx := context.Background()

	broad, err := svc.FindColleges(ctx, &dto.PredictRequest{Rank: intPtr(7000)})
	require.NoError(t, err)

	narrow, err := svc.FindColleges(ctx, &dto.PredictRequest{Rank: intPtr(7000), District: dto.CSVList{"HYD"}})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(narrow), len(broad))
	for _, r := range narrow {
		assert.Equal(t, "HYD", r.District)
	}
}

func TestFindColleges_MaxResults(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), Settings{MaxResults: 2})

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{Branch: dto.CSVList{"CSE", "ECE"}})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestFindColleges_InvalidInput(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *dto.PredictRequest
		wantErr error
	}{
		{name: "negative rank", req: &dto.PredictRequest{Rank: intPtr(-1)}, wantErr: apperrors.ErrInvalidRank},
		{name: "unknown gender", req: &dto.PredictRequest{Rank: intPtr(100), Gender: "other"}, wantErr: apperrors.ErrInvalidGender},
		{name: "unknown category", req: &dto.PredictRequest{Rank: intPtr(100), Category: dto.CSVList{"xyz"}}, wantErr: apperrors.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindColleges(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, apperrors.IsClientError(err))
		})
	}
}

func TestFindColleges_ZeroRankIsNoRankMode(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	results, err := svc.FindColleges(context.Background(), &dto.PredictRequest{Rank: intPtr(0), Branch: dto.CSVList{"ECE"}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Nil(t, results[0].Probability)
}

func TestAllColleges(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	all, err := svc.AllColleges(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "JNTH", all[0].Instcode)
	assert.Equal(t, "CSE", all[0].Branch)
	assert.Equal(t, "ECE", all[4].Branch)
}

func TestRecommend(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	recs, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		Rank:     intPtr(4800),
		Category: "oc",
		Gender:   "boys",
		Branch:   "CSE",
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// placement quality and package outweigh the higher probability of ANUC
	assert.Equal(t, "JNTH", recs[0].Instcode)
	assert.InDelta(t, 91.8, recs[0].RecommendationScore, 0.01)
	assert.Equal(t, "MODERATE", recs[0].RecommendationType)

	assert.Equal(t, "CBIT", recs[1].Instcode)
	assert.Equal(t, "SAFE", recs[1].RecommendationType)

	assert.Equal(t, "ANUC", recs[2].Instcode)
	assert.InDelta(t, 45.26, recs[2].RecommendationScore, 0.01)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].RecommendationScore, recs[i].RecommendationScore)
	}
}

func TestRecommend_PreferredRegions(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), Settings{RecommendationLimit: 1})

	recs, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		Rank:             intPtr(4800),
		PreferredRegions: []string{"AU"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "AU", recs[0].Region)
}

func TestRecommend_WithoutRankIsExplore(t *testing.T) {
	svc := NewPredictorService(newFixtureRepo(t), DefaultSettings())

	recs, err := svc.Recommend(context.Background(), &dto.RecommendationRequest{Branch: "ECE"})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Nil(t, r.Probability)
		assert.Equal(t, "EXPLORE", r.RecommendationType)
	}
}
