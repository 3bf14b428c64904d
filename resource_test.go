package studychart

import (
	"image/color"
	"testing"
)

func TestTitleResolve(t *testing.T) {
	table := DefaultTable()
	for i, tc := range []struct {
		title Title
		want  string
	}{
		{Title{Key: AxisCards}, "Cards"},
		{Title{Key: DueXAxisTitle, Array: true, Index: 2}, "Months"},
		{Title{Key: DueXAxisTitle, Array: true, Index: 3}, ""},
		{Title{Key: DueXAxisTitle, Array: true, Index: -1}, ""},
		{Title{Key: StatsWeekDays, Array: true}, "Sun"},
		{Title{Key: 999}, "Key(999)"},
	} {
		if got := tc.title.Resolve(table); got != tc.want {
			t.Errorf("%d: %+v resolved to %q, want %q", i, tc.title, got, tc.want)
		}
	}
}

func TestTableColor(t *testing.T) {
	table := DefaultTable()
	for k := ColorNew; k <= ColorRate; k++ {
		if _, ok := table.Colors[k]; !ok {
			t.Errorf("no default color for key %d", k)
		}
	}
	if c := table.Color(NoKey); c != color.Black {
		t.Errorf("unknown key colored %v", c)
	}
}

func TestDefaultStyle(t *testing.T) {
	for _, tc := range []struct {
		base  float64
		font  float64
		frame int
	}{
		{16, 12, 48},
		{12, 9, 36},
		{13, 9.75, 39},
	} {
		s := DefaultStyle(tc.base)
		if got := s.FontSize(); got != tc.font {
			t.Errorf("base %g: font size %g, want %g", tc.base, got, tc.font)
		}
		if got := s.FrameThickness(); got != tc.frame {
			t.Errorf("base %g: frame %d, want %d", tc.base, got, tc.frame)
		}
	}
}
