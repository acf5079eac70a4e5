package models

import "strings"

// Category is a reservation quota group
type Category int

const (
	CategoryOC Category = iota
	CategorySC
	CategoryST
	CategoryBCA
	CategoryBCB
	CategoryBCC
	CategoryBCD
	CategoryBCE
	CategoryOCEWS
)

// NumCategories is the number of known categories
const NumCategories = 9

var categoryKeys = [NumCategories]string{"oc", "sc", "st", "bca", "bcb", "bcc", "bcd", "bce", "oc_ews"}

// String returns the column prefix of the category (e.g. "oc_ews")
func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return ""
	}
	return categoryKeys[c]
}

// AllCategories returns the categories in canonical order
func AllCategories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory matches a category identifier case-insensitively
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, key := range categoryKeys {
		if key == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Gender is the seat gender column of a cutoff
type Gender int

const (
	GenderBoys Gender = iota
	GenderGirls
)

// NumGenders is the number of gender columns per category
const NumGenders = 2

// String returns the column suffix of the gender
func (g Gender) String() string {
	switch g {
	case GenderBoys:
		return "boys"
	case GenderGirls:
		return "girls"
	}
	return ""
}

// AllGenders returns boys then girls
func AllGenders() []Gender {
	return []Gender{GenderBoys, GenderGirls}
}

// Quota is a category x gender combination, one cutoff column per quota
type Quota struct {
	Category Category
	Gender   Gender
}

// String returns the column name of the quota (e.g. "oc_boys")
func (q Quota) String() string {
	return q.Category.String() + "_" + q.Gender.String()
}

// AllQuotas returns the 18 quotas in canonical order: category order, boys before girls
func AllQuotas() []Quota {
	out := make([]Quota, 0, NumCategories*NumGenders)
	for _, c := range AllCategories() {
		for _, g := range AllGenders() {
			out = append(out, Quota{Category: c, Gender: g})
		}
	}
	return out
}

// ParseQuota does an exact case-insensitive match against the 18 quota identifiers
func ParseQuota(s string) (Quota, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, q := range AllQuotas() {
		if q.String() == s {
			return q, true
		}
	}
	return Quota{}, false
}
