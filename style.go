package studychart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a chart is laid out and drawn.
type Style struct {
	// BaseTextSize is the standard text size of the host in pixels.
	// Chart text is drawn at BaseTextSize*TextScale.
	BaseTextSize float64
	TextScale    float64

	// FrameFactor is the frame thickness in units of the chart font size.
	FrameFactor float64

	// Stretch expands the Y ranges to leave room above the highest value.
	Stretch float64

	// TickDistance is the desired number of pixels between ticks.
	TickDistance int

	Bar struct {
		Thickness float64 // all kinds but the breakdowns
		Breakdown float64 // hourly and weekly breakdown counts
		Rate      float64 // breakdown success rate, secondary axis
	}

	Cumulative struct {
		Width   float64
		Neutral color.Color
		Shadow  Shadow
	}

	Grid color.NRGBA

	Background color.Color
	Title      draw.TextStyle
	TickLabel  draw.TextStyle
	Legend     draw.TextStyle
	AxisLine   draw.LineStyle
	TickLength vg.Length
}

// FontSize is the size of chart text in pixels.
func (s Style) FontSize() float64 {
	return s.BaseTextSize * s.TextScale
}

// FrameThickness is the number of pixels reserved for axis labels.
func (s Style) FrameThickness() int {
	return int(math.Round(s.FontSize() * s.FrameFactor))
}

// DefaultStyle returns the standard chart style for a host whose standard
// text size is baseTextSize pixels.
func DefaultStyle(baseTextSize float64) Style {
	s := Style{
		BaseTextSize: baseTextSize,
		TextScale:    0.75,
		FrameFactor:  4,
		Stretch:      1.05,
		TickDistance: TickDistance,
	}

	s.Bar.Thickness = 0.6
	s.Bar.Breakdown = 0.8
	s.Bar.Rate = 0.2

	s.Cumulative.Width = 3
	s.Cumulative.Neutral = color.Black
	s.Cumulative.Shadow = Shadow{Blur: 5, DX: 2, DY: 2, Color: color.Black}

	// Light gray, slightly transparent.
	s.Grid = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 222}

	size := vg.Length(s.FontSize())
	sans := font.Font{Typeface: "Liberation", Variant: "Sans"}

	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = font.From(sans, size)
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YBottom
	s.Title.Handler = plot.DefaultTextHandler

	s.TickLabel = s.Title
	s.TickLabel.YAlign = draw.YTop

	s.Legend = s.Title
	s.Legend.XAlign = draw.XLeft
	s.Legend.YAlign = draw.YCenter

	s.AxisLine.Color = color.Black
	s.AxisLine.Width = vg.Length(1)
	s.TickLength = vg.Length(math.Round(s.FontSize() / 2))

	return s
}
