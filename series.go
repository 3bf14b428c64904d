package studychart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// pieCategories is the number of categories of the card types chart.
const pieCategories = 4

// xys pairs the X coordinates xs with the values ys.
func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}

// BuildBars returns one Bars per category of series. The breakdown kinds
// drop their last category, draw wider bars and plot category 2 (the
// success rate) as thin bars against the secondary axis.
func BuildBars(kind Kind, series Series, meta Metadata, style Style) ([]*Bars, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	n := len(series)
	if kind.isBreakdown() && n > 1 {
		// The breakdown aggregation produces a trailing unused category.
		n--
	}
	if err := meta.checkKeys(n - 1); err != nil {
		return nil, err
	}

	bars := make([]*Bars, 0, n-1)
	for i := 1; i < n; i++ {
		b := &Bars{
			XY:        xys(series[0], series[i]),
			Thickness: style.Bar.Thickness,
			On:        Primary,
			Fill:      meta.Colors[i-1],
			Name:      meta.ValueLabels[i-1],
		}
		if kind.isBreakdown() {
			b.Thickness = style.Bar.Breakdown
			if i == 2 {
				b.On = Secondary
				b.Thickness = style.Bar.Rate
			}
		}
		bars = append(bars, b)
	}
	return bars, nil
}

// BuildCumulative returns one Line per category of the cumulative series.
// A nil series yields no lines.
//
// With colored cumulatives every line takes the color and name of its
// category. Otherwise all lines use the neutral color and only the
// intervals chart names its line.
func BuildCumulative(kind Kind, cumulative Series, meta Metadata, style Style) ([]*Line, error) {
	if cumulative == nil {
		return nil, nil
	}
	if err := cumulative.Validate(); err != nil {
		return nil, err
	}
	n := cumulative.Categories()
	if meta.ColoredCumulative {
		if err := meta.checkKeys(n); err != nil {
			return nil, err
		}
	}

	lines := make([]*Line, 0, n)
	for i := 1; i <= n; i++ {
		l := &Line{
			XY:     xys(cumulative[0], cumulative[i]),
			Color:  NoKey,
			Name:   NoKey,
			Width:  style.Cumulative.Width,
			Shadow: style.Cumulative.Shadow,
		}
		switch {
		case meta.ColoredCumulative:
			l.Color = meta.Colors[i-1]
			l.Name = meta.ValueLabels[i-1]
		case kind == Intervals:
			l.Name = StatsCumulativePercentage
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// BuildPie returns the card types pie and the legend entries of categories
// 1 to 3. The pie itself is captioned with category 0. Counts are truncated.
func BuildPie(series Series, meta Metadata) (*Pie, []*Legend, error) {
	if len(series) == 0 || len(series[0]) < pieCategories {
		return nil, nil, fmt.Errorf("%w: pie needs %d values", ErrMalformedSeries, pieCategories)
	}
	if err := meta.checkKeys(pieCategories); err != nil {
		return nil, nil, err
	}

	values := series[0][:pieCategories]
	pie := &Pie{
		Values: append([]float64(nil), values...),
		Colors: append([]Key(nil), meta.Colors[:pieCategories]...),
		Name:   meta.ValueLabels[0],
		Count:  int(values[0]),
	}
	legend := make([]*Legend, 0, pieCategories-1)
	for i := 1; i < pieCategories; i++ {
		legend = append(legend, &Legend{
			Color: meta.Colors[i],
			Name:  meta.ValueLabels[i],
			Count: int(values[i]),
		})
	}
	return pie, legend, nil
}
