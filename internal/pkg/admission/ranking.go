package admission

import (
	"sort"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

// DefaultMaxResults caps a prediction result list
const DefaultMaxResults = 95

// Candidate is one (record, quota) result row
type Candidate struct {
	College *models.College
	Quota   models.Quota
	Cutoff  *int
	// nil in no-rank mode
	Prediction *Prediction
}

// Probability returns the predicted probability or nil
func (c Candidate) Probability() *float64 {
	if c.Prediction == nil {
		return nil
	}
	p := c.Prediction.Probability
	return &p
}

// Matches applies the structural filters of the criteria to a record
func (c *Criteria) Matches(rec *models.College) bool {
	if c.ExcludeWomenColleges && rec.IsWomenCollege() {
		return false
	}
	return contains(c.Branches, rec.Branch) &&
		contains(c.Districts, rec.District) &&
		contains(c.Regions, rec.Region) &&
		contains(c.Tiers, rec.Tier)
}

func (c *Criteria) acceptsQuality(quality string) bool {
	return contains(c.PlacementQualities, quality)
}

// contains treats an empty set as no constraint
func contains(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Evaluate expands records into result rows for the criteria, sorts them and keeps at most limit rows.
// limit <= 0 disables truncation.
func Evaluate(records []*models.College, crit *Criteria, limit int) []Candidate {
	out := make([]Candidate, 0, len(records))
	for _, rec := range records {
		if rec == nil || !crit.Matches(rec) || !crit.acceptsQuality(rec.PlacementDriveQuality) {
			continue
		}
		for _, q := range crit.Quotas {
			cutoff, ok := rec.Cutoff(q)
			if !ok {
				continue
			}
			cand := Candidate{College: rec, Quota: q, Cutoff: &cutoff}
			if crit.HasRank() {
				pred, ok := Predict(*crit.Rank, cutoff)
				if !ok {
					continue
				}
				cand.Prediction = &pred
			}
			out = append(out, cand)
		}
	}

	if crit.HasRank() {
		SortByProbability(out)
	} else {
		SortByCutoff(out)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortByProbability orders by probability desc, tier asc, cutoff asc (nulls last)
func SortByProbability(rows []Candidate) {
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := probabilityOf(rows[i]), probabilityOf(rows[j])
		if pi != pj {
			return pi > pj
		}
		ti, tj := models.TierRank(rows[i].College.Tier), models.TierRank(rows[j].College.Tier)
		if ti != tj {
			return ti < tj
		}
		return cutoffLess(rows[i].Cutoff, rows[j].Cutoff)
	})
}

// SortByCutoff orders by cutoff asc (nulls last), then institution name
func SortByCutoff(rows []Candidate) {
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := rows[i].Cutoff, rows[j].Cutoff
		if !cutoffEqual(ci, cj) {
			return cutoffLess(ci, cj)
		}
		return rows[i].College.Name < rows[j].College.Name
	})
}

func probabilityOf(c Candidate) float64 {
	if c.Prediction == nil {
		return -1
	}
	return c.Prediction.Probability
}

func cutoffLess(a, b *int) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return *a < *b
}

func cutoffEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
