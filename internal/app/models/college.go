package models

// Women's colleges carry this division code
const DivisionWomen = "W"

// Tier sort ranks, unknown tiers sort after every known one
const (
	TierUnknownRank = 99
)

var tierRanks = map[string]int{
	"Tier 1": 1,
	"Tier 2": 2,
	"Tier 3": 3,
}

// TierRank returns the sort rank of a tier label
func TierRank(tier string) int {
	if r, ok := tierRanks[tier]; ok {
		return r
	}
	return TierUnknownRank
}

// CutoffTable holds the closing rank of every quota, nil when not offered
type CutoffTable [NumCategories][NumGenders]*int

// Get returns the cutoff for a quota; nil and non-positive values are not applicable
func (t *CutoffTable) Get(q Quota) (int, bool) {
	if q.Category < 0 || int(q.Category) >= NumCategories || q.Gender < 0 || int(q.Gender) >= NumGenders {
		return 0, false
	}
	v := t[q.Category][q.Gender]
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Set stores a cutoff for a quota
func (t *CutoffTable) Set(q Quota, v *int) {
	t[q.Category][q.Gender] = v
}

// Ptr returns the raw stored pointer for a quota
func (t *CutoffTable) Ptr(q Quota) **int {
	return &t[q.Category][q.Gender]
}

// College is one (institution, branch) row of the admission reference table
type College struct {
	ID                    int64       `json:"id" db:"id"`
	Instcode              string      `json:"instcode" db:"instcode"`
	Name                  string      `json:"institution_name" db:"institution_name"`
	Division              string      `json:"division" db:"division"`
	Region                string      `json:"region" db:"region"`
	District              string      `json:"district" db:"district"`
	Place                 string      `json:"place" db:"place"`
	Affiliation           string      `json:"affl" db:"affl"`
	Branch                string      `json:"branch_code" db:"branch_code"`
	Tier                  string      `json:"tier" db:"tier"`
	HighestPackage        *float64    `json:"highest_package,omitempty" db:"highest_package"`
	AveragePackage        *float64    `json:"average_package,omitempty" db:"average_package"`
	PlacementDriveQuality string      `json:"placement_drive_quality" db:"placement_drive_quality"`
	Cutoffs               CutoffTable `json:"-"`
}

// IsWomenCollege reports whether the row belongs to a women's college
func (c *College) IsWomenCollege() bool {
	return c.Division == DivisionWomen
}

// Cutoff returns the cutoff of the row for a quota
func (c *College) Cutoff(q Quota) (int, bool) {
	return c.Cutoffs.Get(q)
}
