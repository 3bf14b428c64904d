package render

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/studychart"
)

// drawAxis draws the line, ticks, tick labels and title of a on the frame
// edge it is pinned to.
func (p panel) drawAxis(a *studychart.Axis, r studychart.Resolver, sty studychart.Style) {
	sc := p.sheet.Scale(a.On)
	length := sty.TickLength
	title := a.Title.Resolve(r)
	c := p.canvas

	switch a.Side {
	case studychart.Bottom:
		y0 := c.Min.Y
		c.StrokeLine2(sty.AxisLine, c.Min.X, y0, c.Max.X, y0)
		for _, tick := range a.Ticker(r).Ticks(sc.X.Min, sc.X.Max) {
			pt, ok := p.mapXY(a.On, tick.Value, sc.Y.Min)
			if !ok {
				continue
			}
			l := length
			if tick.IsMinor() {
				l /= 2
			}
			c.StrokeLine2(sty.AxisLine, pt.X, y0, pt.X, y0-l)
			if tick.IsMinor() {
				continue
			}
			c.FillText(sty.TickLabel, vg.Point{X: pt.X, Y: y0 - length}, tick.Label)
		}
		if title != "" {
			p.outer.FillText(sty.Title, vg.Point{X: c.Center().X, Y: p.outer.Min.Y}, title)
		}

	case studychart.Left, studychart.Right:
		x0, dir := c.Min.X, vg.Length(-1)
		align := draw.XRight
		rot := math.Pi / 2
		titleX := p.outer.Min.X
		titleAlign := draw.YTop
		if a.Side == studychart.Right {
			x0, dir = c.Max.X, 1
			align = draw.XLeft
			rot = -math.Pi / 2
			titleX = p.outer.Max.X
		}
		c.StrokeLine2(sty.AxisLine, x0, c.Min.Y, x0, c.Max.Y)
		label := sty.TickLabel
		label.XAlign, label.YAlign = align, draw.YCenter
		for _, tick := range a.Ticker(r).Ticks(sc.Y.Min, sc.Y.Max) {
			pt, ok := p.mapXY(a.On, sc.X.Min, tick.Value)
			if !ok {
				continue
			}
			l := length
			if tick.IsMinor() {
				l /= 2
			}
			c.StrokeLine2(sty.AxisLine, x0, pt.Y, x0+dir*l, pt.Y)
			if tick.IsMinor() {
				continue
			}
			c.FillText(label, vg.Point{X: x0 + dir*length, Y: pt.Y}, tick.Label)
		}
		if title != "" {
			ts := sty.Title
			ts.Rotation = rot
			ts.XAlign, ts.YAlign = draw.XCenter, titleAlign
			p.outer.FillText(ts, vg.Point{X: titleX, Y: c.Center().Y}, title)
		}

	default:
		panic("render: unknown axis side")
	}
}

// drawGrid draws horizontal grid lines every g.PixelSpacing pixels from the
// bottom of the plot area and vertical ones either at the explicit X
// positions or every g.PixelSpacing pixels from the left.
func (p panel) drawGrid(g *studychart.Grid) {
	c := p.canvas
	ls := draw.LineStyle{Color: g.Color, Width: vg.Length(1)}
	step := vg.Length(g.PixelSpacing)
	if step <= 0 {
		return
	}

	for y := c.Min.Y; y <= c.Max.Y; y += step {
		c.StrokeLine2(ls, c.Min.X, y, c.Max.X, y)
	}

	if g.Vertical == nil {
		for x := c.Min.X; x <= c.Max.X; x += step {
			c.StrokeLine2(ls, x, c.Min.Y, x, c.Max.Y)
		}
		return
	}
	for _, v := range g.Vertical {
		pt, ok := p.mapXY(g.Coordinates(), v, 0)
		if !ok || !c.ContainsX(pt.X) {
			continue
		}
		c.StrokeLine2(ls, pt.X, c.Min.Y, pt.X, c.Max.Y)
	}
}
