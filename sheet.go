package studychart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Target selects one of the two coordinate systems of a Sheet.
type Target int

const (
	Primary Target = iota
	Secondary
)

func (t Target) String() string {
	switch t {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// Side is the frame edge an axis is pinned to.
type Side int

const (
	Bottom Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// A Drawable describes one element of a chart. Drawables carry data
// coordinates and resource keys only; a renderer turns them into pixels.
type Drawable interface {
	// Coordinates reports the coordinate system the drawable is laid
	// out in.
	Coordinates() Target
}

// ----------------------------------------------------------------------------
// Sheet

// Sheet is a fully laid out chart: the ordered drawables together with the
// two coordinate systems they refer to.
type Sheet struct {
	Kind Kind

	// Primary is the coordinate system of the main data and the left
	// axis, Secondary the one of the right axis. Both share the X
	// interval. Secondary is unset for pie charts.
	Primary, Secondary Scale

	// FrameThickness is the number of pixels reserved around the plot
	// area for axis labels and titles.
	FrameThickness int
	FontSize       float64

	Drawables []Drawable
}

// Pie reports whether s is a pie chart.
func (s *Sheet) Pie() bool { return s.Kind == CardTypes }

// Scale returns the coordinate system t.
func (s *Sheet) Scale(t Target) Scale {
	if t == Secondary {
		return s.Secondary
	}
	return s.Primary
}

func (s *Sheet) add(ds ...Drawable) {
	s.Drawables = append(s.Drawables, ds...)
}

// ----------------------------------------------------------------------------
// Bars

// Bars draws one bar per X value standing on y=0.
type Bars struct {
	XY        plotter.XYs
	Thickness float64 // Bar width in units of buckets.
	On        Target
	Fill      Key
	Name      Key
}

func (b *Bars) Coordinates() Target { return b.On }

// ----------------------------------------------------------------------------
// Line

// Line connects its points in order. Cumulative lines are always laid out
// in the secondary coordinate system.
type Line struct {
	XY     plotter.XYs
	Color  Key // NoKey selects the neutral line color.
	Name   Key // NoKey for an unnamed line.
	Width  float64
	Shadow Shadow
}

// Shadow is a blurred, offset copy of a line drawn beneath it.
type Shadow struct {
	Blur, DX, DY float64
	Color        color.Color
}

func (l *Line) Coordinates() Target { return Secondary }

// ----------------------------------------------------------------------------
// Axis

// Axis describes an X or Y axis pinned to one edge of the frame.
type Axis struct {
	Side Side
	On   Target

	// Major ticks are placed every Spacing units starting at Origin,
	// minor ticks every Minor units.
	Origin, Spacing, Minor float64

	// Explicit replaces the computed ticks. Its labels are the elements
	// of the string array Labels.
	Explicit []float64
	Labels   Key

	Title   Title
	Integer bool // Numeric labels are integers.
}

func (a *Axis) Coordinates() Target { return a.On }

// Ticker returns the plot.Ticker generating the ticks of a. Explicit tick
// labels are looked up in r.
func (a *Axis) Ticker(r Resolver) plot.Ticker {
	if a.Explicit != nil {
		var labels []string
		if r != nil && a.Labels != NoKey {
			labels = r.Strings(a.Labels)
		}
		return LabeledTicks(a.Explicit, labels)
	}
	return SpacedTicks{
		Origin:  a.Origin,
		Major:   a.Spacing,
		Minor:   a.Minor,
		Integer: a.Integer,
	}
}

// ----------------------------------------------------------------------------
// Grid

// Grid draws horizontal and vertical lines every PixelSpacing pixels.
// If Vertical is non-nil the vertical lines are placed at these X values
// instead.
type Grid struct {
	PixelSpacing int
	Vertical     []float64
	Color        color.NRGBA
}

func (g *Grid) Coordinates() Target { return Primary }

// ----------------------------------------------------------------------------
// Pie and Legend

// Pie is a pie chart over Values. The pie is named after its first
// category.
type Pie struct {
	Values []float64
	Colors []Key
	Name   Key
	Count  int
}

func (p *Pie) Coordinates() Target { return Primary }

// Text returns the caption of p, e.g. "New: 40".
func (p *Pie) Text(r Resolver) string { return caption(r, p.Name, p.Count) }

// Legend is a colored legend entry naming a category with its count.
type Legend struct {
	Color Key
	Name  Key
	Count int
}

func (l *Legend) Coordinates() Target { return Primary }

// Text returns the caption of l, e.g. "Young: 20".
func (l *Legend) Text(r Resolver) string { return caption(r, l.Name, l.Count) }

func caption(r Resolver, name Key, count int) string {
	return fmt.Sprintf("%s: %d", r.String(name), count)
}
