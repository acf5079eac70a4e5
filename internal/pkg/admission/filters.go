// Package admission holds the EAMCET prediction engine: filter resolution,
// the rank-vs-cutoff probability curve, its inverse and the scoring rules
// used by recommendations and similarity. Everything here is pure; callers
// fetch the candidate rows and hand them in.
package admission

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/pkg/apperrors"
)

// Input is the raw filter set of a prediction request
type Input struct {
	Rank               *int
	Branches           []string
	Category           string
	Gender             string
	Districts          []string
	Regions            []string
	Tiers              []string
	PlacementQualities []string
}

// Criteria is the resolved filter set
type Criteria struct {
	Rank                 *int
	Branches             []string
	Districts            []string
	Regions              []string
	Tiers                []string
	PlacementQualities   []string
	Quotas               []models.Quota
	ExcludeWomenColleges bool
}

// HasRank reports whether the criteria run in rank (probability) mode
func (c *Criteria) HasRank() bool {
	return c.Rank != nil
}

// ParseCSV splits a comma-separated value, trims tokens, drops empty ones and dedupes.
// The result is sorted so equal inputs produce equal filters.
func ParseCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return NormalizeList(strings.Split(s, ","))
}

// NormalizeList trims, drops empty values, dedupes and sorts
func NormalizeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// ParseGender maps a gender value to a cutoff column. The second result is false when no gender was given.
func ParseGender(s string) (models.Gender, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, false, nil
	case "boys", "male":
		return models.GenderBoys, true, nil
	case "girls", "female":
		return models.GenderGirls, true, nil
	}
	return 0, false, apperrors.NewCustomError(apperrors.ErrInvalidGender,
		fmt.Sprintf("Unknown gender %q, expected boys, girls, male or female", s))
}

var categoryAliases = map[string]string{
	"bc_a":   "bca",
	"bc_b":   "bcb",
	"bc_c":   "bcc",
	"bc_d":   "bcd",
	"bc_e":   "bce",
	"ews":    "oc_ews",
	"ocews":  "oc_ews",
	"oc_ews": "oc_ews",
}

// ParseCategories parses one category, or a comma-separated list of them.
// Identifiers are case-insensitive and accept the dashed forms (BC-A, OC-EWS).
func ParseCategories(s string) ([]models.Category, error) {
	tokens := ParseCSV(s)
	if len(tokens) == 0 {
		return nil, nil
	}

	seen := make(map[models.Category]struct{}, len(tokens))
	out := make([]models.Category, 0, len(tokens))
	for _, tok := range tokens {
		key := strings.ToLower(tok)
		key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
		if alias, ok := categoryAliases[key]; ok {
			key = alias
		}
		cat, ok := models.ParseCategory(key)
		if !ok {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCategory,
				fmt.Sprintf("Unknown category %q", tok))
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// ResolveQuotas builds the effective category x gender set:
// both given -> one quota per category, category only -> both genders,
// gender only -> every category with that gender, neither -> all 18.
func ResolveQuotas(categories []models.Category, gender models.Gender, hasGender bool) []models.Quota {
	if len(categories) == 0 {
		categories = models.AllCategories()
	}
	genders := models.AllGenders()
	if hasGender {
		genders = []models.Gender{gender}
	}

	out := make([]models.Quota, 0, len(categories)*len(genders))
	for _, c := range categories {
		for _, g := range genders {
			out = append(out, models.Quota{Category: c, Gender: g})
		}
	}
	return out
}

// Resolve validates the raw input and turns it into criteria
func Resolve(in Input) (*Criteria, error) {
	if in.Rank != nil && *in.Rank < 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRank, "Rank must be a positive number")
	}

	categories, err := ParseCategories(in.Category)
	if err != nil {
		return nil, err
	}
	gender, hasGender, err := ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}

	crit := &Criteria{
		Branches:           NormalizeList(in.Branches),
		Districts:          NormalizeList(in.Districts),
		Regions:            NormalizeList(in.Regions),
		Tiers:              NormalizeList(in.Tiers),
		PlacementQualities: NormalizeList(in.PlacementQualities),
		Quotas:             ResolveQuotas(categories, gender, hasGender),
		// seats for boys are never offered by women's colleges
		ExcludeWomenColleges: hasGender && gender == models.GenderBoys,
	}
	if in.Rank != nil && *in.Rank > 0 {
		r := *in.Rank
		crit.Rank = &r
	}
	return crit, nil
}

// HasFilters reports whether any filter besides the rank was supplied
func (in Input) HasFilters() bool {
	return len(NormalizeList(in.Branches)) > 0 ||
		len(NormalizeList(in.Districts)) > 0 ||
		len(NormalizeList(in.Regions)) > 0 ||
		len(NormalizeList(in.Tiers)) > 0 ||
		len(NormalizeList(in.PlacementQualities)) > 0 ||
		strings.TrimSpace(in.Category) != "" ||
		strings.TrimSpace(in.Gender) != ""
}
