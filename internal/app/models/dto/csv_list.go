package dto

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// CSVList is a multi-value filter that arrives either as a comma-separated
// string ("CSE, ECE") or as a JSON array of strings
type CSVList []string

// UnmarshalJSON accepts a string, an array of strings or null
func (l *CSVList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = splitCSV(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("expected an array of strings: %w", err)
		}
		var out []string
		for _, item := range items {
			out = append(out, splitCSV(item)...)
		}
		*l = out
		return nil
	}
	return fmt.Errorf("expected a string or an array of strings")
}

// String joins the list back into its comma-separated form
func (l CSVList) String() string {
	return strings.Join(l, ",")
}

func splitCSV(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
