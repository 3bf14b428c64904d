package studychart_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	sc "github.com/vdobler/studychart"
	"github.com/vdobler/studychart/data"
)

func reviewStats() *sc.Stats {
	return &sc.Stats{
		Series:     sc.Series{{0, 1, 2}, {5, 10, 3}},
		Cumulative: sc.Series{{0, 1, 2}, {5, 15, 18}},
		Meta: sc.Metadata{
			Backwards:         true,
			ValueLabels:       []sc.Key{sc.LabelYoung},
			Colors:            []sc.Key{sc.ColorYoung},
			AxisTitles:        [3]sc.Key{sc.AxisDays, sc.AxisReviews, sc.StatsCumulative},
			MaxCards:          10,
			FirstElement:      0,
			LastElement:       2,
			ColoredCumulative: true,
			SecondaryMax:      18,
		},
	}
}

func TestComposeEmptyCanvas(t *testing.T) {
	c := sc.NewComposer(16)
	for _, wh := range [][2]int{{0, 400}, {800, -1}, {0, 0}} {
		s, err := c.Compose(sc.ReviewCount, reviewStats(), wh[0], wh[1])
		if s != nil || err != nil {
			t.Errorf("%dx%d: got %v, %v, want nil, nil", wh[0], wh[1], s, err)
		}
	}
}

func TestComposeReviewCount(t *testing.T) {
	c := sc.NewComposer(16)
	s, err := c.Compose(sc.ReviewCount, reviewStats(), 800, 400)
	if err != nil {
		t.Fatal(err)
	}

	var kinds []string
	for _, d := range s.Drawables {
		name := fmt.Sprintf("%T", d)
		if a, ok := d.(*sc.Axis); ok {
			name += "/" + a.Side.String()
		}
		kinds = append(kinds, name)
	}
	want := []string{
		"*studychart.Bars",
		"*studychart.Line",
		"*studychart.Axis/bottom",
		"*studychart.Axis/left",
		"*studychart.Axis/right",
		"*studychart.Grid",
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("drawables mismatch (-want +got):\n%s", diff)
	}

	// Interval.Equal is exact, so compare the edges as plain floats.
	edges := func(s sc.Scale) []float64 {
		return []float64{s.X.Min, s.X.Max, s.Y.Min, s.Y.Max}
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff([]float64{-0.5, 2.5, 0, 10.5}, edges(s.Primary), approx); diff != "" {
		t.Errorf("primary scale mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-0.5, 2.5, 0, 18.9}, edges(s.Secondary), approx); diff != "" {
		t.Errorf("secondary scale mismatch (-want +got):\n%s", diff)
	}

	if s.FrameThickness != 48 || s.FontSize != 12 {
		t.Errorf("frame %d, font size %g", s.FrameThickness, s.FontSize)
	}

	line := s.Drawables[1].(*sc.Line)
	if line.Color != sc.ColorYoung || line.Name != sc.LabelYoung {
		t.Errorf("cumulative line color %d name %d", line.Color, line.Name)
	}
	left := s.Drawables[3].(*sc.Axis)
	right := s.Drawables[4].(*sc.Axis)
	if left.Spacing != 4 || right.Spacing != 8 {
		t.Errorf("Y spacings %g and %g, want 4 and 8", left.Spacing, right.Spacing)
	}
}

func TestComposeCardTypes(t *testing.T) {
	st := &sc.Stats{
		Series: sc.Series{{40, 30, 20, 10}},
		Meta: sc.Metadata{
			ValueLabels: []sc.Key{sc.LabelNew, sc.LabelYoung, sc.LabelMature, sc.LabelSuspended},
			Colors:      []sc.Key{sc.ColorNew, sc.ColorYoung, sc.ColorMature, sc.ColorSuspended},
		},
	}
	s, err := sc.NewComposer(16).Compose(sc.CardTypes, st, 400, 400)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Pie() || len(s.Drawables) != 4 {
		t.Fatalf("pie %t with %d drawables", s.Pie(), len(s.Drawables))
	}
	table := sc.DefaultTable()
	var captions []string
	captions = append(captions, s.Drawables[0].(*sc.Pie).Text(table))
	for _, d := range s.Drawables[1:] {
		captions = append(captions, d.(*sc.Legend).Text(table))
	}
	want := []string{"New: 40", "Young: 30", "Mature: 20", "Suspended: 10"}
	if diff := cmp.Diff(want, captions); diff != "" {
		t.Errorf("captions mismatch (-want +got):\n%s", diff)
	}

	st.Series = sc.Series{{40, 30, 20}}
	if _, err := sc.NewComposer(16).Compose(sc.CardTypes, st, 400, 400); !errors.Is(err, sc.ErrMalformedSeries) {
		t.Errorf("three values: error %v", err)
	}
}

func TestComposeErrors(t *testing.T) {
	c := sc.NewComposer(16)
	if _, err := c.Compose(sc.Forecast, nil, 800, 400); !errors.Is(err, sc.ErrMalformedSeries) {
		t.Errorf("nil stats: error %v", err)
	}

	st := reviewStats()
	st.Cumulative = sc.Series{{0, 1, 2}, {5, 15}}
	if _, err := c.Compose(sc.ReviewCount, st, 800, 400); !errors.Is(err, sc.ErrInconsistentSeriesLength) {
		t.Errorf("ragged cumulative: error %v", err)
	}
}

func TestComposeLogs(t *testing.T) {
	var buf bytes.Buffer
	c := sc.NewComposer(16)
	c.Log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := c.Compose(sc.ReviewCount, reviewStats(), 800, 400); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"kind=review-count", "msg=compose", "msg=ticks", "left=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log lacks %q:\n%s", want, out)
		}
	}
}

func TestComposeAll(t *testing.T) {
	c := sc.NewComposer(16)
	sheets, err := c.ComposeAll(context.Background(), data.Sample{Seed: 3}, sc.Year, 800, 400)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range sc.Kinds() {
		s, ok := sheets[k]
		if !ok {
			t.Errorf("no sheet for %s", k)
			continue
		}
		if s.Kind != k {
			t.Errorf("sheet for %s has kind %s", k, s.Kind)
		}
	}

	sheets, err = c.ComposeAll(context.Background(), data.Sample{}, sc.Month, 0, 400)
	if err != nil || len(sheets) != 0 {
		t.Errorf("empty canvas: %d sheets, error %v", len(sheets), err)
	}
}

type failing struct {
	sc.Source
	kind sc.Kind
}

var errBroken = errors.New("broken collection")

func (f failing) Stats(kind sc.Kind, period sc.Period) (*sc.Stats, error) {
	if kind == f.kind {
		return nil, errBroken
	}
	return f.Source.Stats(kind, period)
}

func TestComposeAllError(t *testing.T) {
	src := failing{Source: data.Sample{}, kind: sc.Intervals}
	_, err := sc.NewComposer(16).ComposeAll(context.Background(), src, sc.Month, 800, 400)
	if !errors.Is(err, errBroken) {
		t.Errorf("error %v, want %v", err, errBroken)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sc.NewComposer(16).ComposeAll(ctx, data.Sample{}, sc.Month, 800, 400); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context: error %v", err)
	}
}
