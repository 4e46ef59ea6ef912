package interval

// Set is a caller-owned union of disjoint ranges, e.g. the peak regions found
// so far for one chromatogram.  Ranges whose interiors intersect are merged
// on insertion; ranges that only touch stay separate.
//
// A Set caches search state for Contains, so it is not safe for concurrent
// use, even by readers.  Use Clone to give each goroutine its own copy.
type Set struct {
	// endpoints is the sorted [start0, stop0, start1, stop1, ...] sequence.
	endpoints []float64
	// lastIdx is SearchEndpoints(endpoints, lastValue), cached to accelerate
	// sequential queries.
	lastIdx   EndpointIndex
	lastValue float64
	// isSequential is true if all queries since the last mutation have been
	// in order of nondecreasing value.
	isSequential bool
}

// NewSet returns a Set containing the union of ranges.
func NewSet(ranges ...Range) *Set {
	s := &Set{}
	for _, r := range ranges {
		s.Add(r)
	}
	return s
}

func (s *Set) resetSearch() {
	s.lastIdx = 0
	s.isSequential = false
}

// Add inserts r, merging it with every stored range whose interior
// intersects it.  Empty ranges (Stop <= Start) are ignored.
func (s *Set) Add(r Range) {
	if !(r.Start < r.Stop) {
		return
	}
	s.resetSearch()
	merged := r
	inserted := false
	out := make([]float64, 0, len(s.endpoints)+2)
	for i := 0; i < len(s.endpoints); i += 2 {
		cur := Range{Start: s.endpoints[i], Stop: s.endpoints[i+1]}
		if !inserted && cur.Intersects(merged) {
			merged.Combine(cur)
			continue
		}
		if !inserted && merged.Stop <= cur.Start {
			out = append(out, merged.Start, merged.Stop)
			inserted = true
		}
		out = append(out, cur.Start, cur.Stop)
	}
	if !inserted {
		out = append(out, merged.Start, merged.Stop)
	}
	s.endpoints = out
}

// Subtract replaces every stored range with Reduce(range, reducer).  An
// inverted reducer (Start > Stop, or a NaN endpoint) is ignored.
func (s *Set) Subtract(reducer Range) {
	if !(reducer.Start <= reducer.Stop) {
		return
	}
	s.resetSearch()
	out := make([]float64, 0, len(s.endpoints)+2)
	for i := 0; i < len(s.endpoints); i += 2 {
		cur := Range{Start: s.endpoints[i], Stop: s.endpoints[i+1]}
		for _, piece := range Reduce(cur, reducer) {
			out = append(out, piece.Start, piece.Stop)
		}
	}
	s.endpoints = out
}

// Difference returns the parts of r not covered by the stored ranges, in
// increasing order.  Unlike Subtract, which goes through Reduce, a stored
// range sharing its start with r is treated like any other intersection, so
// touching stored ranges cover r without gaps.
func (s *Set) Difference(r Range) []Range {
	if !(r.Start < r.Stop) {
		if s.Contains(r.Start) {
			return nil
		}
		return []Range{r}
	}
	var pieces []Range
	cur := r.Start
	for i := int(SearchEndpoints(s.endpoints, r.Start).Begin()); i < len(s.endpoints); i += 2 {
		start, stop := s.endpoints[i], s.endpoints[i+1]
		if stop <= cur {
			continue
		}
		if start >= r.Stop {
			break
		}
		if start > cur {
			pieces = append(pieces, Range{Start: cur, Stop: start})
		}
		cur = stop
		if cur >= r.Stop {
			return pieces
		}
	}
	return append(pieces, Range{Start: cur, Stop: r.Stop})
}

// Contains returns true iff v is strictly inside a stored range.
func (s *Set) Contains(v float64) bool {
	if len(s.endpoints) == 0 {
		return false
	}
	if s.isSequential && v >= s.lastValue {
		s.lastIdx = ExpsearchEndpoints(s.endpoints, v, s.lastIdx)
	} else {
		s.lastIdx = SearchEndpoints(s.endpoints, v)
		s.isSequential = true
	}
	s.lastValue = v
	return s.lastIdx.Inside(s.endpoints, v)
}

// Intersects returns true iff the interior of r shares a point with a stored
// range.  For an empty r this is Contains(r.Start).
func (s *Set) Intersects(r Range) bool {
	if !(r.Start < r.Stop) {
		return s.Contains(r.Start)
	}
	// First endpoint strictly greater than r.Start.
	idx := SearchEndpoints(s.endpoints, r.Start)
	for !idx.Finished(s.endpoints) && s.endpoints[idx] == r.Start {
		idx++
	}
	if idx.Finished(s.endpoints) {
		return false
	}
	if idx&1 == 1 {
		// r.Start is in [start, stop) of the range ending at endpoints[idx].
		return true
	}
	return s.endpoints[idx] < r.Stop
}

// Ranges returns the stored ranges in increasing order.
func (s *Set) Ranges() []Range {
	ranges := make([]Range, 0, len(s.endpoints)/2)
	for i := 0; i < len(s.endpoints); i += 2 {
		ranges = append(ranges, Range{Start: s.endpoints[i], Stop: s.endpoints[i+1]})
	}
	return ranges
}

// Len returns the number of stored ranges.
func (s *Set) Len() int {
	return len(s.endpoints) / 2
}

// Clone returns a new Set with the same ranges and its own search state.
func (s *Set) Clone() *Set {
	return &Set{endpoints: append([]float64(nil), s.endpoints...)}
}
