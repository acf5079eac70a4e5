package repositories

import (
	"context"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

// CollegeFilter restricts a college fetch. Empty slices impose no constraint;
// non-empty slices match exactly (case-sensitive).
type CollegeFilter struct {
	Instcodes            []string
	Branches             []string
	Districts            []string
	Regions              []string
	Tiers                []string
	ExcludeWomenColleges bool
	// case-insensitive substring of the institution name
	NameContains string
}

// CollegeRepository is the read side of the colleges table
type CollegeRepository interface {
	// FindAll returns the matching rows ordered by id
	FindAll(ctx context.Context, filter CollegeFilter) ([]*models.College, error)
}

// CollegeWriter loads reference data
type CollegeWriter interface {
	// SaveAll upserts rows by id and returns the number written
	SaveAll(ctx context.Context, colleges []*models.College) (int, error)
	Count(ctx context.Context) (int, error)
}

// CollegeStore is a repository that can be both read and loaded
type CollegeStore interface {
	CollegeRepository
	CollegeWriter
}

const collegesTable = "colleges"

// text columns are selected through COALESCE so NULLs scan into plain strings
var collegeTextColumns = []string{
	"instcode", "institution_name", "division", "region", "district",
	"place", "affl", "branch_code", "tier",
}

func cutoffColumns() []string {
	quotas := models.AllQuotas()
	out := make([]string, len(quotas))
	for i, q := range quotas {
		out[i] = q.String()
	}
	return out
}

// collegeColumns is the column order used by both selects and inserts
func collegeColumns() []string {
	cols := []string{"id"}
	cols = append(cols, collegeTextColumns...)
	cols = append(cols, "highest_package", "average_package", "placement_drive_quality")
	return append(cols, cutoffColumns()...)
}

func selectColumns() []string {
	cols := []string{"id"}
	for _, c := range collegeTextColumns {
		cols = append(cols, "COALESCE("+c+", '') AS "+c)
	}
	cols = append(cols, "highest_package", "average_package", "COALESCE(placement_drive_quality, '') AS placement_drive_quality")
	return append(cols, cutoffColumns()...)
}

// scanDest returns scan targets in collegeColumns order
func scanDest(c *models.College) []any {
	dest := []any{
		&c.ID, &c.Instcode, &c.Name, &c.Division, &c.Region, &c.District,
		&c.Place, &c.Affiliation, &c.Branch, &c.Tier,
		&c.HighestPackage, &c.AveragePackage, &c.PlacementDriveQuality,
	}
	for _, q := range models.AllQuotas() {
		dest = append(dest, c.Cutoffs.Ptr(q))
	}
	return dest
}

// insertValues returns column values in collegeColumns order
func insertValues(c *models.College) []any {
	values := []any{
		c.ID, c.Instcode, c.Name, c.Division, c.Region, c.District,
		c.Place, c.Affiliation, c.Branch, c.Tier,
		nullFloat(c.HighestPackage), nullFloat(c.AveragePackage), c.PlacementDriveQuality,
	}
	for _, q := range models.AllQuotas() {
		values = append(values, nullInt(*c.Cutoffs.Ptr(q)))
	}
	return values
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
