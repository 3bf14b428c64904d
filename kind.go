package studychart

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when parsing an unknown chart kind.
	ErrUnknownKind = errors.New("studychart: unknown chart kind")

	// ErrUnknownPeriod is returned when parsing an unknown period.
	ErrUnknownPeriod = errors.New("studychart: unknown period")
)

// ----------------------------------------------------------------------------
// Kind

// Kind selects one of the fixed study statistics charts. The kind
// determines the upstream aggregation, the bar layout, the use of the
// secondary axis, explicit X ticks and whether a pie chart is produced.
type Kind int

const (
	Forecast Kind = iota
	ReviewCount
	ReviewTime
	Intervals
	HourlyBreakdown
	WeeklyBreakdown
	AnswerButtons
	CardTypes
	numKinds
)

var kindNames = [numKinds]string{
	"forecast",
	"review-count",
	"review-time",
	"intervals",
	"hourly-breakdown",
	"weekly-breakdown",
	"answer-buttons",
	"card-types",
}

// String returns the kebab-case name of k.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds returns all chart kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// isBreakdown reports whether k is one of the per-hour or per-weekday
// charts which plot the success rate on the secondary axis.
func (k Kind) isBreakdown() bool {
	return k == HourlyBreakdown || k == WeeklyBreakdown
}

// ----------------------------------------------------------------------------
// Period

// Period is the time span the statistics are aggregated over. It is only
// passed through to the statistics source.
type Period int

const (
	Month Period = iota
	Year
	AllTime
)

var periodNames = []string{"month", "year", "all-time"}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod is the inverse of Period.String.
func ParsePeriod(s string) (Period, error) {
	for p, name := range periodNames {
		if name == s {
			return Period(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}
