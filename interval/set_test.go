package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	tests := []struct {
		in   []Range
		want []Range
	}{
		{[]Range{{0, 10}, {5, 15}, {20, 30}}, []Range{{0, 15}, {20, 30}}},
		{[]Range{{20, 30}, {0, 10}}, []Range{{0, 10}, {20, 30}}},
		// Touching ranges stay apart.
		{[]Range{{0, 10}, {10, 20}}, []Range{{0, 10}, {10, 20}}},
		// A wide range swallows several stored ones.
		{[]Range{{0, 1}, {2, 3}, {4, 5}, {10, 11}, {0.5, 4.5}}, []Range{{0, 5}, {10, 11}}},
		// Same start merges.
		{[]Range{{0, 5}, {0, 10}}, []Range{{0, 10}}},
		// Empty ranges are dropped.
		{[]Range{{3, 3}, {5, 4}}, []Range{}},
	}
	for _, tt := range tests {
		s := NewSet(tt.in...)
		assert.Equal(t, tt.want, s.Ranges(), "%v", tt.in)
		expect.EQ(t, s.Len(), len(tt.want))
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet(Range{0, 10}, Range{5, 15}, Range{20, 30}, Range{30, 40})
	tests := []struct {
		v    float64
		want bool
	}{
		{-1, false},
		{0, false},
		{0.5, true},
		{14.9, true},
		{15, false},
		{17, false},
		{20, false},
		{25, true},
		{30, false},
		{35, true},
		{40, false},
		{50, false},
	}
	// Sequential queries take the galloping path.
	for _, tt := range tests {
		expect.EQ(t, s.Contains(tt.v), tt.want, "Contains(%v)", tt.v)
	}
	// Reverse order forces fresh binary searches.
	for i := len(tests) - 1; i >= 0; i-- {
		expect.EQ(t, s.Contains(tests[i].v), tests[i].want, "Contains(%v)", tests[i].v)
	}
	expect.False(t, NewSet().Contains(1))
}

func TestSetIntersects(t *testing.T) {
	s := NewSet(Range{0, 10}, Range{10, 20}, Range{30, 40})
	tests := []struct {
		r    Range
		want bool
	}{
		{Range{-5, 0}, false},
		{Range{-5, 1}, true},
		{Range{10, 11}, true},
		{Range{20, 30}, false},
		{Range{25, 31}, true},
		{Range{40, 50}, false},
		{Range{5, 5}, true},
		{Range{10, 10}, false},
	}
	for _, tt := range tests {
		expect.EQ(t, s.Intersects(tt.r), tt.want, "Intersects(%v)", tt.r)
	}
}

func TestSetSubtract(t *testing.T) {
	s := NewSet(Range{0, 100}, Range{200, 210})
	s.Subtract(Range{20, 30})
	assert.Equal(t, []Range{{0, 20}, {30, 100}, {200, 210}}, s.Ranges())
	s.Subtract(Range{150, 250})
	assert.Equal(t, []Range{{0, 20}, {30, 100}}, s.Ranges())
	expect.False(t, s.Contains(25))
	expect.True(t, s.Contains(50))

	// Inverted reducers are ignored and leave the endpoints sorted.
	s.Subtract(Range{8, 2})
	assert.Equal(t, []Range{{0, 20}, {30, 100}}, s.Ranges())
	expect.True(t, s.Contains(5))
	expect.False(t, s.Contains(25))

	c := s.Clone()
	c.Subtract(Range{-1, 101})
	expect.EQ(t, c.Len(), 0)
	expect.EQ(t, s.Len(), 2)
}

func TestSetDifference(t *testing.T) {
	s := NewSet(Range{10, 20}, Range{20, 30}, Range{40, 50})
	tests := []struct {
		r    Range
		want []Range
	}{
		{Range{0, 5}, []Range{{0, 5}}},
		{Range{0, 100}, []Range{{0, 10}, {30, 40}, {50, 100}}},
		{Range{10, 35}, []Range{{30, 35}}},
		{Range{12, 28}, nil},
		{Range{20, 40}, []Range{{30, 40}}},
		{Range{55, 60}, []Range{{55, 60}}},
		{Range{15, 15}, nil},
		{Range{35, 35}, []Range{{35, 35}}},
	}
	for _, tt := range tests {
		got := s.Difference(tt.r)
		if len(tt.want) == 0 {
			assert.Empty(t, got, "Difference(%v)", tt.r)
			continue
		}
		assert.Equal(t, tt.want, got, "Difference(%v)", tt.r)
	}
	// Compare with Subtract on a range that doesn't share endpoints.
	c := NewSet(Range{0, 100})
	c.Subtract(Range{10, 30})
	c.Subtract(Range{40, 50})
	assert.Equal(t, s.Difference(Range{0, 100}), c.Ranges())
}

func TestExpsearchEndpoints(t *testing.T) {
	endpoints := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for start := 0; start < len(endpoints); start++ {
		for x := float64(start) + 0.5; x <= 11; x += 0.5 {
			expect.EQ(t, ExpsearchEndpoints(endpoints, x, EndpointIndex(start)), SearchEndpoints(endpoints, x), "x=%v start=%d", x, start)
		}
	}
}
