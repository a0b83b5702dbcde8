package catalog

import (
	"sort"
	"strings"

	"github.com/jooyongc/goldensnow360-dubai/models"
)

// Query holds the three filter inputs. Empty fields match everything.
type Query struct {
	Text         string `json:"keyword"`
	Area         string `json:"area"`
	PropertyType string `json:"type"`
}

func (q Query) IsEmpty() bool {
	return q.Text == "" && q.Area == "" && q.PropertyType == ""
}

// Match reports whether p passes every non-empty constraint of q. Text is a
// case-insensitive substring match over title, location and description;
// area and type are compared exactly as stored.
func (q Query) Match(p models.Property) bool {
	if q.Area != "" && p.Area != q.Area {
		return false
	}
	if q.PropertyType != "" && p.PropertyType != q.PropertyType {
		return false
	}
	if q.Text == "" {
		return true
	}
	needle := strings.ToLower(q.Text)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Location), needle) ||
		strings.Contains(strings.ToLower(p.DescriptionText()), needle)
}

// Filter returns the records matching q in input order, in a freshly
// allocated slice.
func Filter(records []models.Property, q Query) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, p := range records {
		if q.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Facets are the selectable values of the area and type controls.
type Facets struct {
	Areas []string `json:"areas"`
	Types []string `json:"types"`
}

// FacetsOf collects sorted distinct areas and types. Pass the full snapshot,
// not a filtered view, so the controls keep every option while narrowing.
func FacetsOf(records []models.Property) Facets {
	return Facets{
		Areas: distinct(records, func(p models.Property) string { return p.Area }),
		Types: distinct(records, func(p models.Property) string { return p.PropertyType }),
	}
}

func distinct(records []models.Property, field func(models.Property) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, p := range records {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Featured returns the featured records in input order, at most limit of
// them when limit is positive.
func Featured(records []models.Property, limit int) []models.Property {
	out := make([]models.Property, 0)
	for _, p := range records {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
