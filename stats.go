package studychart

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSeries is returned for a series which lacks the
	// categories or metadata entries required by the chart kind.
	ErrMalformedSeries = errors.New("studychart: malformed series")

	// ErrInconsistentSeriesLength is returned if the sequences of a
	// series differ in length.
	ErrInconsistentSeriesLength = errors.New("studychart: inconsistent series length")
)

// Series is a time bucketed data set. Series[0] holds the non-decreasing X
// coordinates of the buckets, every further element the values of one
// category. The card types series is the exception: its Series[0] holds
// the pie values.
type Series [][]float64

// Categories is the number of value sequences in s.
func (s Series) Categories() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Range returns the interval spanned by the values of all categories of s.
// The interval is unset if s has no values.
func (s Series) Range() Interval {
	r := unsetInterval()
	for i := 1; i < len(s); i++ {
		r.Update(s[i]...)
	}
	return r
}

// Validate checks that all sequences of s have the same length and that
// the X coordinates do not decrease.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no sequences", ErrMalformedSeries)
	}
	for i := 1; i < len(s[0]); i++ {
		if s[0][i] < s[0][i-1] {
			return fmt.Errorf("%w: X value %d (%g) is below its predecessor %g",
				ErrMalformedSeries, i, s[0][i], s[0][i-1])
		}
	}
	n := len(s[0])
	for i, seq := range s[1:] {
		if len(seq) != n {
			return fmt.Errorf("%w: sequence %d has %d values, want %d",
				ErrInconsistentSeriesLength, i+1, len(seq), n)
		}
	}
	return nil
}

// Metadata describes how a series is to be presented. It is produced by
// the statistics source together with the series.
type Metadata struct {
	// Backwards is set if the X domain runs from the past (negative)
	// to today (0) instead of from today into the future.
	Backwards bool

	// ValueLabels and Colors name and color category i+1 of the series.
	ValueLabels []Key
	Colors      []Key

	// AxisTitles holds the titles of the X, the left Y and the right
	// Y axis. If DynamicAxisTitle is set the X title is an index into
	// the DueXAxisTitle string array instead of a key.
	AxisTitles       [3]Key
	DynamicAxisTitle bool

	// MaxCards is the upper end of the primary (left) Y axis.
	MaxCards int

	// FirstElement and LastElement are the first and last bucket.
	FirstElement, LastElement float64

	// ColoredCumulative selects per category colors and names for the
	// cumulative lines instead of a single neutral line color.
	ColoredCumulative bool

	// SecondaryMax is the upper end of the secondary (right) Y axis.
	SecondaryMax float64
}

// Stats is the complete answer of a statistics source for one chart.
type Stats struct {
	Series     Series
	Cumulative Series // nil if the chart has no cumulative overlay
	Meta       Metadata
}

// checkKeys verifies that meta labels and colors n categories.
func (m Metadata) checkKeys(n int) error {
	if len(m.ValueLabels) < n || len(m.Colors) < n {
		return fmt.Errorf("%w: %d categories but %d labels and %d colors",
			ErrMalformedSeries, n, len(m.ValueLabels), len(m.Colors))
	}
	return nil
}
