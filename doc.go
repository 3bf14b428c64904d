// Package studychart lays out the charts of spaced repetition study
// statistics.
//
// Given a time bucketed series (counts per day, hour, weekday or interval)
// and a chart Kind, a Composer produces a Sheet: an ordered list of
// drawable descriptors (bars, cumulative lines, axes, grid or a pie with
// its legend) together with the value ranges they refer to. Painting the
// Sheet is left to a renderer, see package render.
//
// Coordinate systems
//
// Cartesian charts have two coordinate systems sharing the X interval: the
// primary one for the main data and the left axis and the secondary one for
// the right axis. The secondary system carries cumulative lines and, for
// the hourly and weekly breakdown, the success rate bars. Its Y interval
// is independent so both magnitudes use the full chart height.
//
// Ticks
//
// Tick spacing is chosen by SelectSpacing so that there is about one tick
// per TickDistance pixels, using the spacings 10^k * 2^j. The answer
// buttons and breakdown charts use fixed, labeled tick positions instead.
//
// Resources
//
// Labels, titles and colors are referenced by Key. A Resolver, e.g. the
// Table returned by DefaultTable, turns keys into text and colors.
package studychart
