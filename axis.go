package studychart

// PlanXAxis lays out the X axis of a chart widthPx pixels wide.
//
// The tick spacing is selected for the bucket range of meta. The answer
// buttons and breakdown charts use fixed, labeled tick positions instead.
func PlanXAxis(kind Kind, meta Metadata, widthPx int, style Style) *Axis {
	spacing := SelectSpacing(widthPx, style.TickDistance, meta.FirstElement, meta.LastElement)
	a := &Axis{
		Side:    Bottom,
		On:      Primary,
		Spacing: spacing,
		Minor:   spacing / 2,
		Labels:  NoKey,
		Title:   Title{Key: meta.AxisTitles[0]},
		Integer: true,
	}
	if meta.DynamicAxisTitle {
		a.Title = Title{Key: DueXAxisTitle, Array: true, Index: int(meta.AxisTitles[0])}
	}
	if pos, labels, ok := ExplicitTicks(kind); ok {
		a.Explicit, a.Labels = pos, labels
	}
	return a
}

// PlanYAxis lays out a Y axis of a chart heightPx pixels high covering r.
// The left axis refers to the primary coordinate system, the right one to
// the secondary.
func PlanYAxis(heightPx int, r Interval, title Key, side Side, style Style) *Axis {
	on := Primary
	switch side {
	case Left:
	case Right:
		on = Secondary
	default:
		panic("studychart: Y axis must be on the left or right")
	}
	spacing := SelectSpacing(heightPx, style.TickDistance, r.Min, r.Max)
	return &Axis{
		Side:    side,
		On:      on,
		Spacing: spacing,
		Minor:   spacing / 2,
		Labels:  NoKey,
		Title:   Title{Key: title},
		Integer: true,
	}
}

// PlanGrid lays out the grid. Kinds with explicit X ticks pin the vertical
// grid lines to the tick positions.
func PlanGrid(kind Kind, style Style) *Grid {
	g := &Grid{
		PixelSpacing: style.TickDistance,
		Color:        style.Grid,
	}
	if pos, _, ok := ExplicitTicks(kind); ok {
		g.Vertical = pos
	}
	return g
}
