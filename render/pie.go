package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/vdobler/studychart"
)

// drawPie draws the pie of a card types sheet, its caption above and the
// legend entries below it.
func (p panel) drawPie(r studychart.Resolver, sty studychart.Style) error {
	var legend []*studychart.Legend
	var pie *studychart.Pie
	for _, d := range p.sheet.Drawables {
		switch d := d.(type) {
		case *studychart.Pie:
			pie = d
		case *studychart.Legend:
			legend = append(legend, d)
		default:
			return fmt.Errorf("render: cannot draw %T in a pie chart", d)
		}
	}
	if pie == nil {
		return fmt.Errorf("render: pie chart without pie")
	}

	c := p.canvas
	lineHeight := vg.Length(p.sheet.FontSize * 1.5)
	legendHeight := lineHeight * vg.Length(len(legend))
	center := c.Center()
	center.Y += legendHeight / 2
	radius := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y-legendHeight) / 2
	if radius <= 0 {
		return nil
	}

	total := 0.0
	for _, v := range pie.Values {
		total += v
	}
	if total > 0 {
		start := math.Pi / 2
		for i, v := range pie.Values {
			sweep := -2 * math.Pi * v / total
			var path vg.Path
			path.Move(center)
			path.Line(vg.Point{
				X: center.X + radius*vg.Length(math.Cos(start)),
				Y: center.Y + radius*vg.Length(math.Sin(start)),
			})
			path.Arc(center, radius, start, sweep)
			path.Close()
			if i < len(pie.Colors) {
				c.SetColor(r.Color(pie.Colors[i]))
			}
			c.Fill(path)
			start += sweep
		}
	}

	p.outer.FillText(sty.Title, vg.Point{X: center.X, Y: center.Y + radius}, pie.Text(r))

	box := vg.Length(p.sheet.FontSize)
	y := center.Y - radius - lineHeight
	for _, l := range legend {
		x := center.X - radius
		sq := vg.Rectangle{
			Min: vg.Point{X: x, Y: y - box/2},
			Max: vg.Point{X: x + box, Y: y + box/2},
		}
		c.SetColor(r.Color(l.Color))
		c.Fill(sq.Path())
		p.outer.FillText(sty.Legend, vg.Point{X: x + 1.5*box, Y: y}, l.Text(r))
		y -= lineHeight
	}
	return nil
}
