// Package importer reads the admission reference table from data files.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/eamcet-predictor/internal/app/models"
)

// ErrUnsupportedFormat is returned for file extensions other than .xlsx and .json
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// Result is the outcome of reading one data file
type Result struct {
	Colleges []*models.College
	// rows without an id, instcode or branch
	Skipped int
}

// Header aliases found in published cutoff sheets
var headerAliases = map[string]string{
	"sno":              "id",
	"s_no":             "id",
	"dist":             "district",
	"name":             "institution_name",
	"inst_name":        "institution_name",
	"branch":           "branch_code",
	"affiliation":      "affl",
	"placement":        "placement_drive_quality",
	"placement_rating": "placement_drive_quality",
}

// normalizeHeader lowercases a header cell and maps it to a column name
func normalizeHeader(h string) string {
	key := strings.ToLower(strings.TrimSpace(h))
	key = strings.NewReplacer(" ", "_", "-", "_", ".", "").Replace(key)
	if alias, ok := headerAliases[key]; ok {
		return alias
	}
	return key
}

// Load reads a data file, dispatching on its extension
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f)
	case ".json":
		return ReadJSON(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// ReadXLSX reads the first sheet of a workbook. The first row is the header.
func ReadXLSX(r io.Reader) (*Result, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Result{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = normalizeHeader(h)
	}

	res := &Result{Colleges: make([]*models.College, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) && col != "" {
				fields[col] = row[i]
			}
		}
		res.add(fields)
	}
	return res, nil
}

// ReadJSON reads a JSON array of flat records keyed by column name
func ReadJSON(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading json data: %w", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(data), &records); err != nil {
		return nil, fmt.Errorf("error decoding json data: %w", err)
	}

	res := &Result{Colleges: make([]*models.College, 0, len(records))}
	for _, rec := range records {
		fields := make(map[string]string, len(rec))
		for k, v := range rec {
			fields[normalizeHeader(k)] = stringify(v)
		}
		res.add(fields)
	}
	return res, nil
}

func (res *Result) add(fields map[string]string) {
	c, ok := FromFields(fields)
	if !ok {
		res.Skipped++
		return
	}
	res.Colleges = append(res.Colleges, c)
}

// FromFields builds a record from column name -> cell text.
// ok is false when the id, instcode or branch is missing.
func FromFields(fields map[string]string) (*models.College, bool) {
	get := func(k string) string { return strings.TrimSpace(fields[k]) }

	id, ok := parseInt(get("id"))
	if !ok {
		return nil, false
	}
	c := &models.College{
		ID:                    int64(id),
		Instcode:              get("instcode"),
		Name:                  get("institution_name"),
		Division:              get("division"),
		Region:                get("region"),
		District:              get("district"),
		Place:                 get("place"),
		Affiliation:           get("affl"),
		Branch:                get("branch_code"),
		Tier:                  get("tier"),
		HighestPackage:        parseFloat(get("highest_package")),
		AveragePackage:        parseFloat(get("average_package")),
		PlacementDriveQuality: get("placement_drive_quality"),
	}
	if c.Instcode == "" || c.Branch == "" {
		return nil, false
	}

	for _, q := range models.AllQuotas() {
		if v, ok := parseInt(get(q.String())); ok && v > 0 {
			c.Cutoffs.Set(q, &v)
		}
	}
	return c, true
}

// parseInt accepts "5000" and spreadsheet floats like "5000.0"; NA and blanks are not numbers
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return fmt.Sprint(v)
}
