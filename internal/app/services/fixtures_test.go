package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/app/repositories"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

type collegeSpec struct {
	id       int64
	instcode string
	name     string
	division string
	branch   string
	tier     string
	region   string
	district string
	avg      *float64
	quality  string
	cutoffs  map[string]int
}

func buildCollege(t *testing.T, s collegeSpec) *models.College {
	t.Helper()
	c := &models.College{
		ID:                    s.id,
		Instcode:              s.instcode,
		Name:                  s.name,
		Division:              s.division,
		Region:                s.region,
		District:              s.district,
		Place:                 s.district,
		Affiliation:           "JNTUH",
		Branch:                s.branch,
		Tier:                  s.tier,
		AveragePackage:        s.avg,
		PlacementDriveQuality: s.quality,
	}
	if s.avg != nil {
		c.HighestPackage = floatPtr(*s.avg * 4)
	}
	for key, v := range s.cutoffs {
		q, ok := models.ParseQuota(key)
		require.True(t, ok, "unknown quota %s", key)
		c.Cutoffs.Set(q, intPtr(v))
	}
	return c
}

// fixtureColleges is a small table covering both genders, a women's college,
// a row without a package and two branches of one institution
func fixtureColleges(t *testing.T) []*models.College {
	t.Helper()
	return []*models.College{
		buildCollege(t, collegeSpec{
			id: 1, instcode: "JNTH", name: "JNTU College of Engineering", branch: "CSE",
			tier: "Tier 1", region: "OU", district: "HYD", avg: floatPtr(9.5), quality: "Excellent",
			cutoffs: map[string]int{"oc_boys": 5000, "oc_girls": 6000},
		}),
		buildCollege(t, collegeSpec{
			id: 2, instcode: "CBIT", name: "Chaitanya Bharathi Institute of Technology", branch: "CSE",
			tier: "Tier 1", region: "OU", district: "RRD", avg: floatPtr(9.1), quality: "Very Good",
			cutoffs: map[string]int{"oc_boys": 5400},
		}),
		buildCollege(t, collegeSpec{
			id: 3, instcode: "GNIT", name: "G Narayanamma Institute of Technology for Women", division: models.DivisionWomen,
			branch: "CSE", tier: "Tier 2", region: "OU", district: "HYD", avg: floatPtr(5.0), quality: "Good",
			cutoffs: map[string]int{"oc_girls": 9000},
		}),
		buildCollege(t, collegeSpec{
			id: 4, instcode: "ANUC", name: "Andhra University College of Engineering", branch: "CSE",
			tier: "Tier 2", region: "AU", district: "VSP",
			cutoffs: map[string]int{"oc_boys": 20000},
		}),
		buildCollege(t, collegeSpec{
			id: 5, instcode: "JNTH", name: "JNTU College of Engineering", branch: "ECE",
			tier: "Tier 1", region: "OU", district: "HYD", avg: floatPtr(7.0), quality: "Very Good",
			cutoffs: map[string]int{"oc_boys": 12000, "oc_girls": 14000},
		}),
	}
}

func newFixtureRepo(t *testing.T) *repositories.MemoryCollegeRepository {
	t.Helper()
	return repositories.NewMemoryCollegeRepository(fixtureColleges(t)...)
}
