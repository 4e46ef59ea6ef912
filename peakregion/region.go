package peakregion

import (
	"github.com/grailbio/chromrange/interval"
)

// Region is a peak region on one chromatogram.
type Region struct {
	Chrom string
	interval.ColoredRange
}

// Claim records the parts of a Region's window that the region got to keep
// after earlier regions on the same chromatogram took theirs.
type Claim struct {
	Region
	// Pieces are disjoint and increasing.  Empty if the window was fully
	// consumed.
	Pieces []interval.Range
}

// ClaimRegions resolves conflicting peak regions.  Regions are processed in
// order, so earlier regions win: each region keeps the parts of its window
// not already claimed on its chromatogram, and those parts become claimed in
// turn.  Regions on different chromatograms never conflict.
func ClaimRegions(regions []Region) []Claim {
	claimed := make(map[string]*interval.Set)
	claims := make([]Claim, len(regions))
	for i, r := range regions {
		set := claimed[r.Chrom]
		if set == nil {
			set = interval.NewSet()
			claimed[r.Chrom] = set
		}
		pieces := set.Difference(r.Range)
		for _, p := range pieces {
			set.Add(p)
		}
		claims[i] = Claim{Region: r, Pieces: pieces}
	}
	return claims
}

// Conflict is a pair of indices of overlapping regions on the same
// chromatogram, with I < J.
type Conflict struct {
	I, J int
}

// FindConflicts returns every pair of regions on the same chromatogram whose
// window interiors intersect, including identical windows and windows with
// equal starts.
func FindConflicts(regions []Region) []Conflict {
	byChrom := make(map[string][]int)
	for i, r := range regions {
		byChrom[r.Chrom] = append(byChrom[r.Chrom], i)
	}
	var conflicts []Conflict
	for i, r := range regions {
		for _, j := range byChrom[r.Chrom] {
			if j > i && r.Intersects(regions[j].Range) {
				conflicts = append(conflicts, Conflict{I: i, J: j})
			}
		}
	}
	return conflicts
}

// ClipToWindow drops the regions that do not reach into window and clips the
// rest to it.  A degenerate window [v, v] keeps, unclipped, the regions that
// have v strictly inside.
func ClipToWindow(regions []Region, window interval.Range) []Region {
	var out []Region
	for _, r := range regions {
		if window.Len() == 0 {
			if r.InsideRange(window.Start) {
				out = append(out, r)
			}
			continue
		}
		if !r.Intersects(window) {
			continue
		}
		if r.Start < window.Start {
			r.Start = window.Start
		}
		if r.Stop > window.Stop {
			r.Stop = window.Stop
		}
		out = append(out, r)
	}
	return out
}
