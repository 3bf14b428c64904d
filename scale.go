package studychart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is one coordinate system of a chart. The primary and the secondary
// scale of a Sheet share the X interval but have independent Y intervals,
// so geometry computed against the secondary scale does not distort the
// primary one.
type Scale struct {
	X, Y Interval
}

// newScale returns the scale covering the buckets first to last and the
// values from 0 to max stretched by stretch.
func newScale(first, last, max, stretch float64) Scale {
	return Scale{
		X: Interval{first - 0.5, last + 0.5},
		Y: Interval{0, max * stretch},
	}
}

// Map maps the data coordinate (x,y) into the rectangle spanned by px and py.
// A degenerate X or Y interval maps to NaN.
func (s Scale) Map(px, py Interval, x, y float64) (float64, float64) {
	return Linear(s.X, px, x), Linear(s.Y, py, y)
}

func (s Scale) String() string {
	return fmt.Sprintf("X=[%g:%g] Y=[%g:%g]", s.X.Min, s.X.Max, s.Y.Min, s.Y.Max)
}

// Linear maps x from the interval from linearly onto the interval to.
func Linear(from, to Interval, x float64) float64 {
	if from.Degenerate() {
		return math.NaN()
	}
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// yet determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, NaN edges being equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Degenerate reports whether i is unset or has zero length.
func (i Interval) Degenerate() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max) || i.Min == i.Max
}
