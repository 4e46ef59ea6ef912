package interval

import (
	"sort"
)

// This file includes support functions for representing a set of disjoint
// ranges as a sorted []float64 of endpoints.
//
// For example, given the ranges
//   [5, 15]
//   [7, 17]
//   [20, 25]
// the union would be
//   [5, 17] U [20, 25]
// so the sorted sequence of endpoints would be
//   {5, 17, 20, 25}.
//
// Ranges that only touch are kept apart, so an endpoint may be repeated:
// [0, 10] and [10, 20] are stored as {0, 10, 10, 20}.  The sequence is still
// nondecreasing, and a value v is strictly inside a stored range iff the
// index of the first endpoint >= v is odd and that endpoint is not v itself.

// SearchEndpoints returns the index of the first element of a that is >= x,
// or len(a) if there is none.  It is exactly sort.SearchFloat64s.
func SearchEndpoints(a []float64, x float64) EndpointIndex {
	return EndpointIndex(sort.SearchFloat64s(a, x))
}

// ExpsearchEndpoints performs "exponential search"
// (https://en.wikipedia.org/wiki/Exponential_search ), checking a[idx], then
// a[idx + 1], then a[idx + 3], then a[idx + 7], etc., and finishing with
// binary search once it's either found an element >= x or has hit the end of
// the slice.  idx must not be past the true answer.  It's usually a better
// choice than SearchEndpoints when queries arrive in increasing order.
func ExpsearchEndpoints(a []float64, x float64, idx EndpointIndex) EndpointIndex {
	nextIncr := EndpointIndex(1)
	startIdx := idx
	endIdx := EndpointIndex(len(a))
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		midIdx := EndpointIndex((uint(startIdx) + uint(endIdx)) >> 1)
		if a[midIdx] >= x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// EndpointIndex is the result of SearchEndpoints(endpoints, v).
type EndpointIndex uint32

// Inside returns whether v, the value ei was computed for, is strictly inside
// a stored range.
func (ei EndpointIndex) Inside(endpoints []float64, v float64) bool {
	return ei&1 != 0 && endpoints[ei] != v
}

// Finished returns whether we're past all the ranges.
func (ei EndpointIndex) Finished(endpoints []float64) bool {
	return ei >= EndpointIndex(len(endpoints))
}

// Begin returns:
// - the index for the beginning of the current range, if we're inside one
// - otherwise, the index for the beginning of the next range
func (ei EndpointIndex) Begin() EndpointIndex {
	return ei & (^EndpointIndex(1))
}
