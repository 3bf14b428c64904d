package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vdobler/studychart"
)

// describe prints one line per drawable of s in drawing order.
func describe(w io.Writer, s *studychart.Sheet, r studychart.Resolver) error {
	fmt.Fprintf(w, "%s  frame=%d  font=%.1f\n", s.Kind, s.FrameThickness, s.FontSize)
	fmt.Fprintf(w, "primary   %s\nsecondary %s\n", s.Primary, s.Secondary)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, d := range s.Drawables {
		switch d := d.(type) {
		case *studychart.Bars:
			fmt.Fprintf(tw, "%d\tbars\t%s\t%q\tn=%d thickness=%.2f\n",
				i, d.On, r.String(d.Name), len(d.XY), d.Thickness)
		case *studychart.Line:
			name := ""
			if d.Name != studychart.NoKey {
				name = r.String(d.Name)
			}
			fmt.Fprintf(tw, "%d\tline\t%s\t%q\tn=%d width=%.1f\n",
				i, d.Coordinates(), name, len(d.XY), d.Width)
		case *studychart.Axis:
			fmt.Fprintf(tw, "%d\taxis\t%s\t%q\tside=%s spacing=%g\n",
				i, d.On, d.Title.Resolve(r), d.Side, d.Spacing)
		case *studychart.Grid:
			fmt.Fprintf(tw, "%d\tgrid\t%s\t\tpixels=%d\n",
				i, d.Coordinates(), d.PixelSpacing)
		case *studychart.Pie:
			fmt.Fprintf(tw, "%d\tpie\t\t%q\tvalues=%v\n", i, d.Text(r), d.Values)
		case *studychart.Legend:
			fmt.Fprintf(tw, "%d\tlegend\t\t%q\t\n", i, d.Text(r))
		default:
			fmt.Fprintf(tw, "%d\t%T\t\t\t\n", i, d)
		}
	}
	return tw.Flush()
}
