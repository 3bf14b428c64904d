// Package render paints laid out study charts onto gonum/plot canvases.
//
// One canvas unit is one pixel of the chart: the frame thickness, tick
// distance and grid spacing of a studychart.Sheet are used as canvas
// lengths directly. PNG uses a 72 dpi image so that this holds for the
// produced image too.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/studychart"
)

// ErrNoSheet is returned when asked to draw a nil sheet, i.e. the result
// of composing on an unmeasured canvas.
var ErrNoSheet = errors.New("render: no sheet")

// PNG draws s on a width x height pixel image and writes it to w as PNG.
func PNG(w io.Writer, s *studychart.Sheet, r studychart.Resolver, sty studychart.Style, width, height int) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(72),
	)
	if err := Draw(draw.New(img), s, r, sty); err != nil {
		return err
	}
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// Draw paints s onto c resolving labels and colors with r.
func Draw(c draw.Canvas, s *studychart.Sheet, r studychart.Resolver, sty studychart.Style) error {
	if s == nil {
		return ErrNoSheet
	}
	if sty.Background != nil {
		c.SetColor(sty.Background)
		c.Fill(c.Rectangle.Path())
	}

	p := newPanel(c, s)
	if s.Pie() {
		return p.drawPie(r, sty)
	}

	for _, d := range s.Drawables {
		switch d := d.(type) {
		case *studychart.Bars:
			p.drawBars(d, r)
		case *studychart.Line:
			p.drawLine(d, r, sty)
		case *studychart.Axis:
			p.drawAxis(d, r, sty)
		case *studychart.Grid:
			p.drawGrid(d)
		default:
			return fmt.Errorf("render: cannot draw %T in a %s chart", d, s.Kind)
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Panel

// panel is the plot area of a sheet: the canvas minus the frame.
type panel struct {
	outer  draw.Canvas
	canvas draw.Canvas
	sheet  *studychart.Sheet
}

func newPanel(c draw.Canvas, s *studychart.Sheet) panel {
	frame := vg.Length(s.FrameThickness)
	inner := c
	inner.Min.X += frame
	inner.Min.Y += frame
	inner.Max.X -= frame
	inner.Max.Y -= frame
	if inner.Max.X < inner.Min.X {
		inner.Min.X, inner.Max.X = c.Center().X, c.Center().X
	}
	if inner.Max.Y < inner.Min.Y {
		inner.Min.Y, inner.Max.Y = c.Center().Y, c.Center().Y
	}
	return panel{outer: c, canvas: inner, sheet: s}
}

// mapXY maps the data coordinate (x,y) of coordinate system t to a canvas
// point. The bool is false if the point does not map to a finite location.
func (p panel) mapXY(t studychart.Target, x, y float64) (vg.Point, bool) {
	cx := studychart.Interval{Min: float64(p.canvas.Min.X), Max: float64(p.canvas.Max.X)}
	cy := studychart.Interval{Min: float64(p.canvas.Min.Y), Max: float64(p.canvas.Max.Y)}
	u, v := p.sheet.Scale(t).Map(cx, cy, x, y)
	if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
		return vg.Point{}, false
	}
	return vg.Point{X: vg.Length(u), Y: vg.Length(v)}, true
}

// ----------------------------------------------------------------------------
// Bars and lines

func (p panel) drawBars(b *studychart.Bars, r studychart.Resolver) {
	half := b.Thickness / 2
	p.canvas.SetColor(r.Color(b.Fill))
	for _, pt := range b.XY {
		lo, ok0 := p.mapXY(b.On, pt.X-half, 0)
		hi, ok1 := p.mapXY(b.On, pt.X+half, pt.Y)
		if !ok0 || !ok1 {
			continue
		}
		rect := clipRect(vg.Rectangle{Min: lo, Max: hi}, p.canvas)
		if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
			continue
		}
		p.canvas.Fill(rect.Path())
	}
}

func (p panel) drawLine(l *studychart.Line, r studychart.Resolver, sty studychart.Style) {
	pts := make([]vg.Point, 0, len(l.XY))
	for _, xy := range l.XY {
		if pt, ok := p.mapXY(l.Coordinates(), xy.X, xy.Y); ok {
			pts = append(pts, pt)
		}
	}
	if len(pts) < 2 {
		return
	}

	col := sty.Cumulative.Neutral
	if l.Color != studychart.NoKey {
		col = r.Color(l.Color)
	}

	if sh := l.Shadow; sh.Color != nil {
		shadow := make([]vg.Point, len(pts))
		off := vg.Point{X: vg.Length(sh.DX), Y: -vg.Length(sh.DY)}
		for i, pt := range pts {
			shadow[i] = pt.Add(off)
		}
		ls := draw.LineStyle{
			Color: fade(sh.Color, 0.3),
			Width: vg.Length(l.Width + sh.Blur),
		}
		p.canvas.StrokeLines(ls, p.canvas.ClipLinesXY(shadow)...)
	}

	ls := draw.LineStyle{Color: col, Width: vg.Length(l.Width)}
	p.canvas.StrokeLines(ls, p.canvas.ClipLinesXY(pts)...)
}

// fade scales the opacity of c by f.
func fade(c color.Color, f float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * f))
	return n
}

// ----------------------------------------------------------------------------
// Helpers

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	rect.Min.X = max(rect.Min.X, limit.Min.X)
	rect.Min.Y = max(rect.Min.Y, limit.Min.Y)
	rect.Max.X = min(rect.Max.X, limit.Max.X)
	rect.Max.Y = min(rect.Max.Y, limit.Max.Y)
	return rect
}
