package studychart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlanXAxis(t *testing.T) {
	sty := DefaultStyle(16)
	table := DefaultTable()

	m := Metadata{
		AxisTitles:   [3]Key{AxisDays, AxisReviews, StatsCumulative},
		FirstElement: -29,
		LastElement:  1,
	}
	a := PlanXAxis(ReviewCount, m, 800, sty)
	if a.Side != Bottom || a.On != Primary || !a.Integer {
		t.Errorf("axis %+v", a)
	}
	if a.Spacing != 4 || a.Minor != 2 {
		t.Errorf("spacing %g/%g, want 4/2", a.Spacing, a.Minor)
	}
	if got := a.Title.Resolve(table); got != "Days" {
		t.Errorf("title %q", got)
	}

	m.DynamicAxisTitle = true
	m.AxisTitles[0] = 1
	a = PlanXAxis(Forecast, m, 800, sty)
	if got := a.Title.Resolve(table); got != "Weeks" {
		t.Errorf("dynamic title %q, want Weeks", got)
	}
	m.AxisTitles[0] = 7
	a = PlanXAxis(Forecast, m, 800, sty)
	if got := a.Title.Resolve(table); got != "" {
		t.Errorf("out of range dynamic title %q", got)
	}
}

func TestPlanXAxisExplicit(t *testing.T) {
	sty := DefaultStyle(16)
	table := DefaultTable()
	m := Metadata{AxisTitles: [3]Key{AxisDays}, LastElement: 6}

	a := PlanXAxis(WeeklyBreakdown, m, 700, sty)
	ticks := a.Ticker(table).Ticks(-0.5, 6.5)
	var labels []string
	for _, tick := range ticks {
		labels = append(labels, tick.Label)
	}
	want := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanYAxis(t *testing.T) {
	sty := DefaultStyle(16)

	left := PlanYAxis(400, Interval{0, 10.5}, AxisReviews, Left, sty)
	if left.On != Primary || left.Spacing != 4 || left.Title.Key != AxisReviews {
		t.Errorf("left axis %+v", left)
	}
	right := PlanYAxis(400, Interval{0, 18.9}, StatsCumulative, Right, sty)
	if right.On != Secondary || right.Spacing != 8 {
		t.Errorf("right axis %+v", right)
	}
	flat := PlanYAxis(400, Interval{0, 0}, AxisReviews, Left, sty)
	if flat.Spacing != MinSpacing {
		t.Errorf("empty range spacing %g", flat.Spacing)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Y axis at the bottom did not panic")
		}
	}()
	PlanYAxis(400, Interval{0, 1}, AxisReviews, Bottom, sty)
}

func TestPlanGrid(t *testing.T) {
	sty := DefaultStyle(16)
	if g := PlanGrid(Forecast, sty); g.Vertical != nil || g.PixelSpacing != TickDistance {
		t.Errorf("forecast grid %+v", g)
	}
	g := PlanGrid(HourlyBreakdown, sty)
	if diff := cmp.Diff([]float64{0, 6, 12, 18, 23}, g.Vertical); diff != "" {
		t.Errorf("hourly grid mismatch (-want +got):\n%s", diff)
	}
}
