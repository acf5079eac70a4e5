package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

// MemoryCollegeRepository keeps the table in process
type MemoryCollegeRepository struct {
	mu   sync.RWMutex
	rows map[int64]*models.College
}

// NewMemoryCollegeRepository creates an empty repository, optionally preloaded
func NewMemoryCollegeRepository(colleges ...*models.College) *MemoryCollegeRepository {
	r := &MemoryCollegeRepository{rows: make(map[int64]*models.College, len(colleges))}
	for _, c := range colleges {
		r.rows[c.ID] = cloneCollege(c)
	}
	return r
}

func cloneCollege(c *models.College) *models.College {
	cp := *c
	return &cp
}

func inSet(set []string, v string) bool {
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

func (f CollegeFilter) matches(c *models.College) bool {
	if f.ExcludeWomenColleges && c.Division == models.DivisionWomen {
		return false
	}
	if name := strings.TrimSpace(f.NameContains); name != "" &&
		!strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
		return false
	}
	return inSet(f.Instcodes, c.Instcode) &&
		inSet(f.Branches, c.Branch) &&
		inSet(f.Districts, c.District) &&
		inSet(f.Regions, c.Region) &&
		inSet(f.Tiers, c.Tier)
}

// FindAll returns copies of the matching rows ordered by id
func (r *MemoryCollegeRepository) FindAll(_ context.Context, filter CollegeFilter) ([]*models.College, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.College{}
	for _, c := range r.rows {
		if filter.matches(c) {
			out = append(out, cloneCollege(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveAll upserts rows by id
func (r *MemoryCollegeRepository) SaveAll(_ context.Context, colleges []*models.College) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range colleges {
		r.rows[c.ID] = cloneCollege(c)
	}
	return len(colleges), nil
}

// Count returns the number of rows
func (r *MemoryCollegeRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}
