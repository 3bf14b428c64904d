package studychart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

const (
	// TickDistance is the reference density of ticks and grid lines:
	// one per TickDistance pixels.
	TickDistance = 150

	// MinSpacing is returned by SelectSpacing for an empty value range or
	// a pixel budget too small for a single tick.
	MinSpacing = 1.0

	// maxTicks bounds the number of ticks a SpacedTicks generates.
	maxTicks = 10000
)

// SelectSpacing returns a tick spacing for the value range [start, end]
// drawn on pixelBudget pixels with roughly one tick per pixelsPerTick pixels.
//
// The spacing is seeded with the power of ten closest below the range per
// tick and then halved or doubled until the number of ticks n satisfies
// limit/2 < n < 2*limit where limit = pixelBudget/pixelsPerTick.
func SelectSpacing(pixelBudget, pixelsPerTick int, start, end float64) float64 {
	if pixelsPerTick <= 0 {
		return MinSpacing
	}
	delta := end - start
	limit := float64(pixelBudget / pixelsPerTick)
	if limit <= 0 || !(delta > 0) || math.IsInf(delta, 0) {
		return MinSpacing
	}

	// Log10 of an exact power of ten may come out just below the integer.
	exp := math.Floor(math.Log10(delta/limit) + 1e-12)
	spacing := math.Pow(10, exp)
	if spacing == 0 || math.IsInf(spacing, 0) {
		return MinSpacing
	}
	for 2*delta/spacing <= limit {
		spacing /= 2
	}
	for (delta/spacing)/2 >= limit {
		spacing *= 2
	}
	return spacing
}

// ----------------------------------------------------------------------------
// SpacedTicks

// SpacedTicks is a plot.Ticker producing major ticks every Major units
// starting at Origin and unlabeled minor ticks every Minor units.
type SpacedTicks struct {
	Origin  float64
	Major   float64
	Minor   float64
	Integer bool // Label major ticks as integers.
}

var _ plot.Ticker = SpacedTicks{}

// Ticks implements plot.Ticker.
func (t SpacedTicks) Ticks(min, max float64) []plot.Tick {
	if !(t.Major > 0) || !(max >= min) {
		return nil
	}
	var ticks []plot.Tick
	for _, v := range steps(t.Origin, t.Major, min, max) {
		ticks = append(ticks, plot.Tick{Value: v, Label: t.label(v)})
	}
	if t.Minor > 0 {
		for _, v := range steps(t.Origin, t.Minor, min, max) {
			if onGrid(v-t.Origin, t.Major) {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

func (t SpacedTicks) label(v float64) string {
	if t.Integer {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// steps returns origin + k*step for all integers k with the value in [min, max],
// at most maxTicks of them. Values too large to be told apart at this step
// are returned once.
func steps(origin, step, min, max float64) []float64 {
	k0 := math.Ceil((min - origin) / step)
	k1 := math.Floor((max - origin) / step)
	if math.IsNaN(k0) || math.IsNaN(k1) || math.IsInf(k0, 0) || math.IsInf(k1, 0) || k1 < k0 {
		return nil
	}
	n := maxTicks
	if d := k1 - k0 + 1; d < maxTicks {
		n = int(d)
	}
	vs := make([]float64, 0, n)
	for j := 0; j < n; j++ {
		v := origin + (k0+float64(j))*step
		if len(vs) > 0 && v == vs[len(vs)-1] {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// onGrid reports whether x is (numerically) a multiple of step.
func onGrid(x, step float64) bool {
	r := math.Abs(math.Remainder(x, step))
	return r < 1e-9*step
}

// ----------------------------------------------------------------------------
// Explicit ticks

type explicit struct {
	positions []float64
	labels    Key
}

// Answer buttons are grouped as learning (3 buttons), young (4) and
// mature (4); the gaps at 4, 5 and 10 separate the groups.
var explicitTicks = map[Kind]explicit{
	AnswerButtons:   {[]float64{1, 2, 3, 6, 7, 8, 9, 11, 12, 13, 14}, StatsEasesTicks},
	HourlyBreakdown: {[]float64{0, 6, 12, 18, 23}, StatsDayTimeStrings},
	WeeklyBreakdown: {[]float64{0, 1, 2, 3, 4, 5, 6}, StatsWeekDays},
}

// ExplicitTicks returns the fixed X tick positions of kind k and the key
// of the string array labeling them. The bool is false for kinds whose X
// ticks are computed.
func ExplicitTicks(k Kind) ([]float64, Key, bool) {
	e, ok := explicitTicks[k]
	if !ok {
		return nil, NoKey, false
	}
	return append([]float64(nil), e.positions...), e.labels, true
}

// LabeledTicks pairs positions with labels into a plot.ConstantTicks.
// Positions without a label get an empty label, i.e. become minor ticks.
func LabeledTicks(positions []float64, labels []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(positions))
	for i, p := range positions {
		ticks[i].Value = p
		if i < len(labels) {
			ticks[i].Label = labels[i]
		}
	}
	return ticks
}
