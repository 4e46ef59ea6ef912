package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Range is a closed numeric interval [Start, Stop].  Callers are expected to
// keep Start <= Stop; use New when the endpoints come from untrusted input.
type Range struct {
	Start float64
	Stop  float64
}

// New returns the range [start, stop].  It fails with an errors.Invalid error
// if start > stop or either endpoint is NaN.
func New(start, stop float64) (Range, error) {
	if math.IsNaN(start) || math.IsNaN(stop) {
		return Range{}, errors.E(errors.Invalid, fmt.Sprintf("interval.New: NaN endpoint in [%v, %v]", start, stop))
	}
	if start > stop {
		return Range{}, errors.E(errors.Invalid, fmt.Sprintf("interval.New: inverted range [%v, %v]", start, stop))
	}
	return Range{Start: start, Stop: stop}, nil
}

// Len returns Stop - Start.
func (r Range) Len() float64 {
	return r.Stop - r.Start
}

// InsideRange returns true iff Start < v < Stop.  Both endpoints are
// excluded; peak boundaries elsewhere rely on this.
func (r Range) InsideRange(v float64) bool {
	return r.Start < v && v < r.Stop
}

// Overlap returns true iff one range starts strictly inside the other.  The
// test is symmetric.  Ranges that only touch at an endpoint, and ranges that
// share the same start, do not overlap.
func (r Range) Overlap(o Range) bool {
	return (r.Start < o.Start && r.Stop > o.Start) ||
		(o.Start < r.Start && o.Stop > r.Start)
}

// Intersects returns true iff the open interiors of r and o share a point.
// Unlike Overlap it also holds for ranges with the same start.
func (r Range) Intersects(o Range) bool {
	return r.Start < o.Stop && o.Start < r.Stop
}

// Combine widens r in place so that it also spans o.  It does not check
// whether the two ranges overlap.
func (r *Range) Combine(o Range) {
	if o.Start < r.Start {
		r.Start = o.Start
	}
	if o.Stop > r.Stop {
		r.Stop = o.Stop
	}
}

// Merged is the non-mutating form of Combine.
func (r Range) Merged(o Range) Range {
	r.Combine(o)
	return r
}

// String formats r as "[start, stop]".
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Start, r.Stop)
}

// Reduce returns the parts of target not covered by reducer.
//
// If reducer strictly contains target, the result is empty.  If the two do
// not overlap (see Range.Overlap), the result is just target.  Otherwise the
// result holds the leading remainder [target.Start, reducer.Start] when
// target starts first, followed by the trailing remainder [reducer.Stop,
// target.Stop] when target ends last.
func Reduce(target, reducer Range) []Range {
	if reducer.Start < target.Start && target.Stop < reducer.Stop {
		return nil
	}
	if !target.Overlap(reducer) {
		return []Range{target}
	}
	var pieces []Range
	if target.Start < reducer.Start {
		pieces = append(pieces, Range{Start: target.Start, Stop: reducer.Start})
	}
	if target.Stop > reducer.Stop {
		pieces = append(pieces, Range{Start: reducer.Stop, Stop: target.Stop})
	}
	return pieces
}

// separatorIndex returns the index of the first '-' in s that is not an
// exponent sign, or -1.
func separatorIndex(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '-' && s[i-1] != 'e' && s[i-1] != 'E' {
			return i
		}
	}
	return -1
}

// ParseRangeString parses a window string of one of the forms
//   [start]-[stop]
//   [value]
// The second form yields the degenerate range [value, value].  Negative
// coordinates are not accepted, since '-' is the separator; a '-' right after
// 'e' or 'E' belongs to an exponent, so "1e-3-5" is [0.001, 5].
func ParseRangeString(s string) (result Range, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		err = errors.E(errors.Invalid, "interval.ParseRangeString: empty range string")
		return
	}
	if s[0] == '-' {
		err = errors.E(errors.Invalid, "interval.ParseRangeString: missing start in", s)
		return
	}
	dashPos := separatorIndex(s)
	if dashPos == -1 {
		var v float64
		if v, err = strconv.ParseFloat(s, 64); err != nil {
			err = errors.E(errors.Invalid, err, "interval.ParseRangeString:", s)
			return
		}
		return New(v, v)
	}
	var start, stop float64
	if start, err = strconv.ParseFloat(strings.TrimSpace(s[:dashPos]), 64); err != nil {
		err = errors.E(errors.Invalid, err, "interval.ParseRangeString:", s)
		return
	}
	if stop, err = strconv.ParseFloat(strings.TrimSpace(s[dashPos+1:]), 64); err != nil {
		err = errors.E(errors.Invalid, err, "interval.ParseRangeString:", s)
		return
	}
	return New(start, stop)
}
