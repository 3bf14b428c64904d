package studychart

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// A Source supplies the aggregated statistics of one chart kind. Sources
// must support concurrent calls.
type Source interface {
	Stats(kind Kind, period Period) (*Stats, error)
}

// Composer lays out charts. A Composer holds no per-chart state and may be
// used by several goroutines.
type Composer struct {
	Style Style
	Log   *slog.Logger // nil discards
}

// NewComposer returns a Composer using DefaultStyle(baseTextSize).
func NewComposer(baseTextSize float64) *Composer {
	return &Composer{Style: DefaultStyle(baseTextSize)}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Composer) log() *slog.Logger {
	if c.Log == nil {
		return discard
	}
	return c.Log
}

// Compose lays out the chart of the given kind on a canvas of width x height
// pixels.
//
// Compose returns a nil Sheet and a nil error if the canvas has not been
// measured yet (width or height <= 0); the caller should retry once it is.
// Cartesian charts list their drawables as bars, cumulative lines, X axis,
// left Y axis, right Y axis and grid. Card type charts consist of the pie
// followed by its legend.
func (c *Composer) Compose(kind Kind, stats *Stats, width, height int) (*Sheet, error) {
	log := c.log().With("kind", kind)
	log.Debug("compose", "width", width, "height", height)
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	if stats == nil {
		return nil, fmt.Errorf("%w: no statistics for %s", ErrMalformedSeries, kind)
	}

	sty := c.Style
	meta := stats.Meta
	sheet := &Sheet{
		Kind:           kind,
		Primary:        newScale(meta.FirstElement, meta.LastElement, float64(meta.MaxCards), sty.Stretch),
		FrameThickness: sty.FrameThickness(),
		FontSize:       sty.FontSize(),
	}

	if kind == CardTypes {
		pie, legend, err := BuildPie(stats.Series, meta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		sheet.add(pie)
		for _, l := range legend {
			sheet.add(l)
		}
		return sheet, nil
	}

	sheet.Secondary = newScale(meta.FirstElement, meta.LastElement, meta.SecondaryMax, sty.Stretch)

	bars, err := BuildBars(kind, stats.Series, meta, sty)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	lines, err := BuildCumulative(kind, stats.Cumulative, meta, sty)
	if err != nil {
		return nil, fmt.Errorf("%s cumulative: %w", kind, err)
	}
	for _, b := range bars {
		sheet.add(b)
	}
	for _, l := range lines {
		sheet.add(l)
	}

	x := PlanXAxis(kind, meta, width, sty)
	left := PlanYAxis(height, sheet.Primary.Y, meta.AxisTitles[1], Left, sty)
	right := PlanYAxis(height, sheet.Secondary.Y, meta.AxisTitles[2], Right, sty)
	sheet.add(x, left, right, PlanGrid(kind, sty))

	log.Debug("ticks", "x", x.Spacing, "left", left.Spacing, "right", right.Spacing)
	return sheet, nil
}

// ComposeAll fetches the statistics of every chart kind from src and lays
// them out concurrently. The first error cancels the remaining work.
// Kinds without a sheet (unmeasured canvas) are absent from the result.
func (c *Composer) ComposeAll(ctx context.Context, src Source, period Period, width, height int) (map[Kind]*Sheet, error) {
	kinds := Kinds()
	sheets := make([]*Sheet, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := src.Stats(kind, period)
			if err != nil {
				return fmt.Errorf("stats %s/%s: %w", kind, period, err)
			}
			sheets[i], err = c.Compose(kind, stats, width, height)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make(map[Kind]*Sheet, len(kinds))
	for i, s := range sheets {
		if s != nil {
			all[kinds[i]] = s
		}
	}
	return all, nil
}
