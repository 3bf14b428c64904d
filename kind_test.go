package studychart

import (
	"errors"
	"testing"
)

func TestKindRoundTrip(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 8 {
		t.Fatalf("got %d kinds, want 8", len(kinds))
	}
	for _, k := range kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", k, err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %d, want %d", k, got, k)
		}
	}

	if _, err := ParseKind("histogram"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(histogram) error = %v, want ErrUnknownKind", err)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", s)
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	for _, p := range []Period{Month, Year, AllTime} {
		got, err := ParsePeriod(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %d, %v, want %d", p, got, err, p)
		}
	}
	if _, err := ParsePeriod("week"); !errors.Is(err, ErrUnknownPeriod) {
		t.Errorf("ParsePeriod(week) error = %v, want ErrUnknownPeriod", err)
	}
}

func TestBreakdownKinds(t *testing.T) {
	for _, k := range Kinds() {
		want := k == HourlyBreakdown || k == WeeklyBreakdown
		if got := k.isBreakdown(); got != want {
			t.Errorf("%s.isBreakdown() = %t, want %t", k, got, want)
		}
	}
}
