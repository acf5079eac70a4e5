package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

func intPtr(v int) *int { return &v }

func newCollege(id int64, name, branch, tier string, cutoffs map[string]int) *models.College {
	c := &models.College{
		ID:                    id,
		Instcode:              name[:3],
		Name:                  name,
		Branch:                branch,
		Tier:                  tier,
		District:              "HYD",
		Region:                "OU",
		PlacementDriveQuality: "Good",
	}
	for key, v := range cutoffs {
		q, ok := models.ParseQuota(key)
		if !ok {
			panic("bad quota " + key)
		}
		c.Cutoffs.Set(q, intPtr(v))
	}
	return c
}

func mustResolve(t *testing.T, in Input) *Criteria {
	t.Helper()
	crit, err := Resolve(in)
	require.NoError(t, err)
	return crit
}

func TestEvaluate_RankMode(t *testing.T) {
	records := []*models.College{
		newCollege(1, "AAA College", "CSE", "Tier 2", map[string]int{"oc_boys": 5000}),
		newCollege(2, "BBB College", "CSE", "Tier 1", map[string]int{"oc_boys": 5000}),
		newCollege(3, "CCC College", "CSE", "Tier 1", map[string]int{"oc_boys": 3000}),
		newCollege(4, "DDD College", "CSE", "Tier 1", map[string]int{"oc_boys": 20000}),
	}

	rank := 4800
	rows := Evaluate(records, mustResolve(t, Input{Rank: &rank, Category: "oc", Gender: "boys"}), 0)

	// CCC: 4800 > 1.25*3000 so it is excluded
	require.Len(t, rows, 3)
	assert.Equal(t, "DDD College", rows[0].College.Name)
	// equal probability, Tier 1 ahead of Tier 2
	assert.Equal(t, "BBB College", rows[1].College.Name)
	assert.Equal(t, "AAA College", rows[2].College.Name)
	assert.Equal(t, rows[1].Prediction.Probability, rows[2].Prediction.Probability)
	assert.Equal(t, TierAssured, rows[0].Prediction.Tier)
}

func TestEvaluate_SkipsMissingAndNonPositiveCutoffs(t *testing.T) {
	rec := newCollege(1, "AAA College", "CSE", "Tier 1", map[string]int{"oc_boys": 5000, "oc_girls": 0, "sc_boys": -3})
	rank := 100
	rows := Evaluate([]*models.College{rec}, mustResolve(t, Input{Rank: &rank}), 0)

	require.Len(t, rows, 1)
	assert.Equal(t, "oc_boys", rows[0].Quota.String())
	require.NotNil(t, rows[0].Cutoff)
	assert.Equal(t, 5000, *rows[0].Cutoff)
}

func TestEvaluate_NoRankMode(t *testing.T) {
	records := []*models.College{
		newCollege(1, "ZZZ College", "CSE", "Tier 1", map[string]int{"oc_boys": 900, "oc_girls": 1200}),
		newCollege(2, "MMM College", "ECE", "Tier 1", map[string]int{"oc_boys": 900}),
		newCollege(3, "AAA College", "CSE", "Tier 1", map[string]int{"oc_girls": 300}),
	}

	rows := Evaluate(records, mustResolve(t, Input{Category: "OC"}), 0)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.Nil(t, r.Prediction)
		assert.Nil(t, r.Probability())
	}
	assert.Equal(t, 300, *rows[0].Cutoff)
	// cutoff tie broken by institution name
	assert.Equal(t, "MMM College", rows[1].College.Name)
	assert.Equal(t, "ZZZ College", rows[2].College.Name)
	assert.Equal(t, 1200, *rows[3].Cutoff)
}

func TestEvaluate_FiltersAndCap(t *testing.T) {
	records := make([]*models.College, 0, 120)
	for i := 0; i < 120; i++ {
		branch := "CSE"
		if i%2 == 1 {
			branch = "ECE"
		}
		records = append(records, newCollege(int64(i+1), "Col lege", branch, "Tier 1", map[string]int{"oc_boys": 1000 + i}))
	}
	records[0].PlacementDriveQuality = "Excellent"
	records[0].Division = models.DivisionWomen

	rank := 500
	all := Evaluate(records, mustResolve(t, Input{Rank: &rank}), DefaultMaxResults)
	assert.Len(t, all, DefaultMaxResults)

	cse := Evaluate(records, mustResolve(t, Input{Rank: &rank, Branches: []string{"CSE"}}), DefaultMaxResults)
	assert.Len(t, cse, 60)
	assert.LessOrEqual(t, len(cse), len(all))

	boys := Evaluate(records, mustResolve(t, Input{Rank: &rank, Branches: []string{"CSE"}, Gender: "boys"}), DefaultMaxResults)
	assert.Len(t, boys, 59)

	excellent := Evaluate(records, mustResolve(t, Input{Rank: &rank, PlacementQualities: []string{"Excellent"}}), DefaultMaxResults)
	require.Len(t, excellent, 1)
	assert.Equal(t, int64(1), excellent[0].College.ID)
}

func TestEvaluate_MonotonicFiltering(t *testing.T) {
	records := []*models.College{
		newCollege(1, "AAA College", "CSE", "Tier 1", map[string]int{"oc_boys": 5000, "sc_girls": 9000}),
		newCollege(2, "BBB College", "ECE", "Tier 2", map[string]int{"oc_boys": 7000, "bca_boys": 8000}),
		newCollege(3, "CCC College", "CSE", "Tier 3", map[string]int{"oc_girls": 6000}),
	}
	rank := 5500

	steps := []Input{
		{Rank: &rank},
		{Rank: &rank, Branches: []string{"CSE"}},
		{Rank: &rank, Branches: []string{"CSE"}, Tiers: []string{"Tier 1"}},
		{Rank: &rank, Branches: []string{"CSE"}, Tiers: []string{"Tier 1"}, Gender: "boys"},
		{Rank: &rank, Branches: []string{"CSE"}, Tiers: []string{"Tier 1"}, Gender: "boys", Category: "oc"},
	}
	prev := -1
	for i, in := range steps {
		n := len(Evaluate(records, mustResolve(t, in), 0))
		if prev >= 0 {
			assert.LessOrEqual(t, n, prev, "step %d", i)
		}
		prev = n
	}
}

func TestSortByCutoff_NullsLast(t *testing.T) {
	rec := newCollege(1, "AAA College", "CSE", "Tier 1", nil)
	rows := []Candidate{
		{College: rec},
		{College: rec, Cutoff: intPtr(10)},
		{College: rec, Cutoff: intPtr(5)},
	}
	SortByCutoff(rows)
	assert.Equal(t, 5, *rows[0].Cutoff)
	assert.Equal(t, 10, *rows[1].Cutoff)
	assert.Nil(t, rows[2].Cutoff)
}
