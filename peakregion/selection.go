package peakregion

import (
	"github.com/antzucaro/matchr"
)

// Selection tracks which analytes are selected for export.  Labels keep the
// order in which they were first added.
type Selection struct {
	labels   []string
	selected map[string]bool
}

// NewSelection returns a Selection over labels with every label selected.
// Duplicate labels are added once.
func NewSelection(labels ...string) *Selection {
	s := &Selection{selected: make(map[string]bool, len(labels))}
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add adds label, selected, if it is not already known.
func (s *Selection) Add(label string) {
	if _, ok := s.selected[label]; ok {
		return
	}
	s.labels = append(s.labels, label)
	s.selected[label] = true
}

// Select marks label as selected.  It returns false, and does nothing, if
// label is unknown.
func (s *Selection) Select(label string) bool {
	if _, ok := s.selected[label]; !ok {
		return false
	}
	s.selected[label] = true
	return true
}

// Deselect marks label as not selected.  It returns false if label is
// unknown.
func (s *Selection) Deselect(label string) bool {
	if _, ok := s.selected[label]; !ok {
		return false
	}
	s.selected[label] = false
	return true
}

// SelectAll selects every known label.
func (s *Selection) SelectAll() {
	for l := range s.selected {
		s.selected[l] = true
	}
}

// DeselectAll deselects every known label.
func (s *Selection) DeselectAll() {
	for l := range s.selected {
		s.selected[l] = false
	}
}

// IsSelected reports whether label is known and selected.
func (s *Selection) IsSelected(label string) bool {
	return s.selected[label]
}

// Labels returns all known labels.
func (s *Selection) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Selected returns the selected labels.
func (s *Selection) Selected() []string {
	var out []string
	for _, l := range s.labels {
		if s.selected[l] {
			out = append(out, l)
		}
	}
	return out
}

// Filter returns the regions whose label is selected, in their original
// order.
func (s *Selection) Filter(regions []Region) []Region {
	var out []Region
	for _, r := range regions {
		if s.selected[r.Label] {
			out = append(out, r)
		}
	}
	return out
}

// Closest returns the known label with the smallest Levenshtein distance to
// label, and that distance.  It returns ("", -1) if no labels are known.
// Ties go to the label added first.
func (s *Selection) Closest(label string) (string, int) {
	best, bestDist := "", -1
	for _, l := range s.labels {
		if d := matchr.Levenshtein(label, l); bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best, bestDist
}
