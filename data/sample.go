package data

import (
	"fmt"
	"math"

	sc "github.com/vdobler/studychart"
)

// Sample is a Source synthesizing plausible statistics for every chart
// kind. The data is deterministic: equal Seeds yield equal statistics.
type Sample struct {
	Seed int
}

var _ sc.Source = Sample{}

// buckets returns the number of day buckets shown for period p.
func buckets(p sc.Period) int {
	switch p {
	case sc.Month:
		return 31
	case sc.Year:
		return 52
	default:
		return 104
	}
}

// wave returns a positive, smooth pseudo random value for bucket i of
// category c.
func (s Sample) wave(c, i int, amp float64) float64 {
	phase := float64(s.Seed*7 + c*3)
	v := amp * (1 + 0.5*math.Sin(float64(i)/3+phase) + 0.25*math.Cos(float64(i)/7+phase))
	return math.Round(math.Max(v, 0))
}

func (s Sample) categories(xs []float64, amps ...float64) sc.Series {
	series := sc.Series{xs}
	for c, amp := range amps {
		ys := make([]float64, len(xs))
		for i := range ys {
			ys[i] = s.wave(c, i, amp)
		}
		series = append(series, ys)
	}
	return series
}

func span(from, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(from + i)
	}
	return xs
}

// Stats implements studychart.Source.
func (s Sample) Stats(kind sc.Kind, period sc.Period) (*sc.Stats, error) {
	n := buckets(period)
	st := &sc.Stats{}
	m := &st.Meta

	switch kind {
	case sc.Forecast:
		st.Series = s.categories(span(0, n), 20, 35)
		cum := Cumulate(st.Series)
		st.Cumulative = sc.Series{cum[0], sumCategories(cum)}
		m.ValueLabels = []sc.Key{sc.LabelYoung, sc.LabelMature}
		m.Colors = []sc.Key{sc.ColorYoung, sc.ColorMature}
		m.AxisTitles = [3]sc.Key{0, sc.AxisCards, sc.StatsCumulativeCards}
		m.DynamicAxisTitle = true
		m.MaxCards = int(MaxStacked(st.Series))
		m.FirstElement, m.LastElement = 0, float64(n-1)
		m.SecondaryMax = Max(st.Cumulative)

	case sc.ReviewCount, sc.ReviewTime:
		amp := 1.0
		title := sc.AxisReviews
		cumTitle := sc.StatsCumulative
		if kind == sc.ReviewTime {
			amp, title, cumTitle = 0.3, sc.AxisMinutes, sc.StatsCumulativeTime
		}
		st.Series = s.categories(span(-(n-1), n), 8*amp, 15*amp, 40*amp, 4*amp, amp)
		st.Cumulative = Cumulate(st.Series)
		m.Backwards = true
		m.ValueLabels = []sc.Key{sc.LabelLearn, sc.LabelYoung, sc.LabelMature, sc.LabelRelearn, sc.LabelCram}
		m.Colors = []sc.Key{sc.ColorLearn, sc.ColorYoung, sc.ColorMature, sc.ColorRelearn, sc.ColorCram}
		m.AxisTitles = [3]sc.Key{sc.AxisDays, title, cumTitle}
		m.MaxCards = int(MaxStacked(st.Series))
		m.FirstElement, m.LastElement = float64(-(n - 1)), 0
		m.ColoredCumulative = true
		m.SecondaryMax = Max(st.Cumulative)

	case sc.Intervals:
		st.Series = s.categories(span(0, n), 30)
		st.Cumulative = Percentages(Cumulate(st.Series))
		m.ValueLabels = []sc.Key{sc.AxisCards}
		m.Colors = []sc.Key{sc.ColorMature}
		m.AxisTitles = [3]sc.Key{sc.AxisDays, sc.AxisCards, sc.AxisPercentage}
		m.MaxCards = int(Max(st.Series))
		m.FirstElement, m.LastElement = 0, float64(n-1)
		m.SecondaryMax = 100

	case sc.HourlyBreakdown, sc.WeeklyBreakdown:
		xTitle := sc.AxisHours
		n = 24
		if kind == sc.WeeklyBreakdown {
			n, xTitle = 7, sc.AxisDays
		}
		st.Series = s.categories(span(0, n), 120, 40, 0)
		for i, v := range st.Series[2] {
			st.Series[2][i] = math.Min(100, 50+v)
		}
		m.ValueLabels = []sc.Key{sc.LabelReviews, sc.LabelCorrect, sc.LabelTotal}
		m.Colors = []sc.Key{sc.ColorHour, sc.ColorRate, sc.ColorHour}
		m.AxisTitles = [3]sc.Key{xTitle, sc.AxisReviews, sc.AxisPercentage}
		m.MaxCards = int(Max(st.Series[:2]))
		m.FirstElement, m.LastElement = 0, float64(n-1)
		m.SecondaryMax = 100

	case sc.AnswerButtons:
		xs, _, _ := sc.ExplicitTicks(sc.AnswerButtons)
		st.Series = s.categories(xs, 10, 60, 90)
		for i, x := range xs {
			// Each group only has counts at its own buttons.
			if x > 4 {
				st.Series[1][i] = 0
			}
			if x < 5 || x > 10 {
				st.Series[2][i] = 0
			}
			if x < 10 {
				st.Series[3][i] = 0
			}
		}
		m.ValueLabels = []sc.Key{sc.LabelLearn, sc.LabelYoung, sc.LabelMature}
		m.Colors = []sc.Key{sc.ColorLearn, sc.ColorYoung, sc.ColorMature}
		m.AxisTitles = [3]sc.Key{sc.AxisAnswerButtons, sc.AxisReviews, sc.AxisPercentage}
		m.MaxCards = int(Max(st.Series))
		m.FirstElement, m.LastElement = 0, 15
		m.SecondaryMax = 100

	case sc.CardTypes:
		st.Series = sc.Series{{
			s.wave(0, 0, 400),
			s.wave(1, 0, 900),
			s.wave(2, 0, 2500),
			s.wave(3, 0, 50),
		}}
		m.ValueLabels = []sc.Key{sc.LabelNew, sc.LabelYoung, sc.LabelMature, sc.LabelSuspended}
		m.Colors = []sc.Key{sc.ColorNew, sc.ColorYoung, sc.ColorMature, sc.ColorSuspended}

	default:
		return nil, fmt.Errorf("%w for %s", ErrNoStats, kind)
	}
	return st, nil
}

// sumCategories returns the sum of all categories of s per bucket.
func sumCategories(s sc.Series) []float64 {
	sum := make([]float64, len(s[0]))
	for _, ys := range s[1:] {
		for i, y := range ys {
			sum[i] += y
		}
	}
	return sum
}
