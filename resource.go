package studychart

import (
	"fmt"
	"image/color"
)

// Key identifies a localized string, string array or color. Drawables carry
// keys only; turning them into text and colors is left to a Resolver.
type Key int

// NoKey marks an absent key, e.g. an unnamed line.
const NoKey Key = -1

// Keys of strings.
const (
	StatsCumulative Key = iota + 1
	StatsCumulativePercentage
	StatsCumulativeCards
	StatsCumulativeTime

	AxisDays
	AxisHours
	AxisAnswerButtons
	AxisReviews
	AxisMinutes
	AxisCards
	AxisPercentage

	LabelNew
	LabelLearn
	LabelRelearn
	LabelYoung
	LabelMature
	LabelCram
	LabelSuspended
	LabelReviews
	LabelCorrect
	LabelTotal
)

// Keys of string arrays.
const (
	DueXAxisTitle Key = iota + 100
	StatsEasesTicks
	StatsDayTimeStrings
	StatsWeekDays
)

// Keys of colors.
const (
	ColorNew Key = iota + 200
	ColorLearn
	ColorRelearn
	ColorYoung
	ColorMature
	ColorCram
	ColorSuspended
	ColorHour
	ColorRate
)

// A Resolver maps keys to localized text and colors.
type Resolver interface {
	String(k Key) string
	Strings(k Key) []string
	Color(k Key) color.Color
}

// Title refers to an axis title. If Array is set, the title is element
// Index of the string array Key, otherwise it is the string Key.
type Title struct {
	Key   Key
	Array bool
	Index int
}

// Resolve returns the text of t.
func (t Title) Resolve(r Resolver) string {
	if !t.Array {
		return r.String(t.Key)
	}
	variants := r.Strings(t.Key)
	if t.Index < 0 || t.Index >= len(variants) {
		return ""
	}
	return variants[t.Index]
}

// ----------------------------------------------------------------------------
// Table

// Table is a Resolver backed by maps.
type Table struct {
	Text   map[Key]string
	Arrays map[Key][]string
	Colors map[Key]color.Color
}

var _ Resolver = Table{}

// String returns the string for k or a placeholder naming k.
func (t Table) String(k Key) string {
	if s, ok := t.Text[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Strings returns the string array for k, nil if unknown.
func (t Table) Strings(k Key) []string {
	return t.Arrays[k]
}

// Color returns the color for k. Unknown keys are black.
func (t Table) Color(k Key) color.Color {
	if c, ok := t.Colors[k]; ok {
		return c
	}
	return color.Black
}

// DefaultTable returns the English strings and the default chart colors.
func DefaultTable() Table {
	return Table{
		Text: map[Key]string{
			StatsCumulative:           "Cumulative",
			StatsCumulativePercentage: "Cumulative percentage",
			StatsCumulativeCards:      "Cumulative cards",
			StatsCumulativeTime:       "Cumulative time",

			AxisDays:          "Days",
			AxisHours:         "Hours",
			AxisAnswerButtons: "Answer buttons",
			AxisReviews:       "Reviews",
			AxisMinutes:       "Minutes",
			AxisCards:         "Cards",
			AxisPercentage:    "Percentage",

			LabelNew:       "New",
			LabelLearn:     "Learn",
			LabelRelearn:   "Relearn",
			LabelYoung:     "Young",
			LabelMature:    "Mature",
			LabelCram:      "Cram",
			LabelSuspended: "Suspended",
			LabelReviews:   "Reviews",
			LabelCorrect:   "% Correct",
			LabelTotal:     "Total",
		},
		Arrays: map[Key][]string{
			DueXAxisTitle:       {"Days", "Weeks", "Months"},
			StatsEasesTicks:     {"1", "2", "3", "1", "2", "3", "4", "1", "2", "3", "4"},
			StatsDayTimeStrings: {"0:00", "6:00", "12:00", "18:00", "23:00"},
			StatsWeekDays:       {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		},
		Colors: map[Key]color.Color{
			ColorNew:       color.NRGBA{0x00, 0x00, 0xff, 0xff},
			ColorLearn:     color.NRGBA{0xc3, 0x5c, 0x17, 0xff},
			ColorRelearn:   color.NRGBA{0xc3, 0x5c, 0x17, 0xff},
			ColorYoung:     color.NRGBA{0x7c, 0xed, 0x52, 0xff},
			ColorMature:    color.NRGBA{0x07, 0x9c, 0x00, 0xff},
			ColorCram:      color.NRGBA{0xff, 0xa0, 0x7a, 0xff},
			ColorSuspended: color.NRGBA{0xf0, 0xf0, 0x00, 0xff},
			ColorHour:      color.NRGBA{0x33, 0x33, 0xbb, 0xff},
			ColorRate:      color.NRGBA{0xff, 0x66, 0x00, 0xff},
		},
	}
}
