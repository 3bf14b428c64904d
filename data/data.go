// Package data provides statistics sources for study charts: fixtures
// loaded from JSON and synthetic sample data.
package data

import (
	"errors"
	"math"

	"github.com/vdobler/studychart"
)

// ErrNoStats is returned by a source without statistics for the requested
// kind and period.
var ErrNoStats = errors.New("data: no statistics")

// Cumulate returns the running totals of the categories of s. The X
// coordinates are shared with s.
func Cumulate(s studychart.Series) studychart.Series {
	if len(s) == 0 {
		return nil
	}
	c := make(studychart.Series, len(s))
	c[0] = s[0]
	for i := 1; i < len(s); i++ {
		c[i] = make([]float64, len(s[i]))
		sum := 0.0
		for j, v := range s[i] {
			sum += v
			c[i][j] = sum
		}
	}
	return c
}

// Percentages scales every category of s so that its last value is 100.
// Categories ending in 0 are left unchanged.
func Percentages(s studychart.Series) studychart.Series {
	if len(s) == 0 {
		return nil
	}
	p := make(studychart.Series, len(s))
	p[0] = s[0]
	for i := 1; i < len(s); i++ {
		p[i] = append([]float64(nil), s[i]...)
		if n := len(p[i]); n > 0 && p[i][n-1] != 0 {
			total := p[i][n-1]
			for j := range p[i] {
				p[i][j] *= 100 / total
			}
		}
	}
	return p
}

// Max returns the largest value of the categories of s, 0 for no values.
func Max(s studychart.Series) float64 {
	r := s.Range()
	if !(r.Max > 0) {
		return 0
	}
	return r.Max
}

// MaxStacked returns the largest sum over the categories of s at one bucket.
// All sequences of s must have the same length.
func MaxStacked(s studychart.Series) float64 {
	if len(s) == 0 {
		return 0
	}
	max := 0.0
	for j := range s[0] {
		sum := 0.0
		for i := 1; i < len(s); i++ {
			sum += s[i][j]
		}
		max = math.Max(max, sum)
	}
	return max
}
