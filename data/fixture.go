package data

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/vdobler/studychart"
)

// Fixture is a Source serving statistics recorded in JSON. The JSON
// document maps "kind/period" (e.g. "review-count/month") to a record.
type Fixture struct {
	mu    sync.RWMutex
	stats map[string]*studychart.Stats
}

var _ studychart.Source = (*Fixture)(nil)

// record is the JSON representation of studychart.Stats.
type record struct {
	Series     studychart.Series `json:"series"`
	Cumulative studychart.Series `json:"cumulative,omitempty"`
	Meta       struct {
		Backwards         bool    `json:"backwards,omitempty"`
		ValueLabels       []int   `json:"valueLabels"`
		Colors            []int   `json:"colors"`
		AxisTitles        [3]int  `json:"axisTitles"`
		DynamicAxisTitle  bool    `json:"dynamicAxisTitle,omitempty"`
		MaxCards          int     `json:"maxCards"`
		FirstElement      float64 `json:"firstElement"`
		LastElement       float64 `json:"lastElement"`
		ColoredCumulative bool    `json:"coloredCumulative,omitempty"`
		SecondaryMax      float64 `json:"secondaryMax"`
	} `json:"meta"`
}

func fixtureKey(kind studychart.Kind, period studychart.Period) string {
	return kind.String() + "/" + period.String()
}

// NewFixture returns an empty Fixture.
func NewFixture() *Fixture {
	return &Fixture{stats: make(map[string]*studychart.Stats)}
}

// ReadFixture reads a Fixture from the JSON file at path.
func ReadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFixture(f)
}

// LoadFixture decodes a Fixture from r.
func LoadFixture(r io.Reader) (*Fixture, error) {
	var recs map[string]record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("data: decoding fixture: %w", err)
	}
	fx := NewFixture()
	for key, rec := range recs {
		kind, period, ok := strings.Cut(key, "/")
		if !ok {
			return nil, fmt.Errorf("data: fixture key %q is not kind/period", key)
		}
		k, err := studychart.ParseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("data: fixture key %q: %w", key, err)
		}
		p, err := studychart.ParsePeriod(period)
		if err != nil {
			return nil, fmt.Errorf("data: fixture key %q: %w", key, err)
		}
		fx.Put(k, p, rec.stats())
	}
	return fx, nil
}

// Put records stats for kind and period.
func (fx *Fixture) Put(kind studychart.Kind, period studychart.Period, stats *studychart.Stats) {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	fx.stats[fixtureKey(kind, period)] = stats
}

// Stats implements studychart.Source.
func (fx *Fixture) Stats(kind studychart.Kind, period studychart.Period) (*studychart.Stats, error) {
	fx.mu.RLock()
	defer fx.mu.RUnlock()
	s, ok := fx.stats[fixtureKey(kind, period)]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoStats, fixtureKey(kind, period))
	}
	return s, nil
}

// WriteTo encodes fx as indented JSON.
func (fx *Fixture) WriteTo(w io.Writer) (int64, error) {
	fx.mu.RLock()
	recs := make(map[string]record, len(fx.stats))
	for key, s := range fx.stats {
		recs[key] = toRecord(s)
	}
	fx.mu.RUnlock()

	buf, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(buf, '\n'))
	return int64(n), err
}

func (rec record) stats() *studychart.Stats {
	m := rec.Meta
	s := &studychart.Stats{
		Series:     rec.Series,
		Cumulative: rec.Cumulative,
		Meta: studychart.Metadata{
			Backwards:         m.Backwards,
			ValueLabels:       keys(m.ValueLabels),
			Colors:            keys(m.Colors),
			DynamicAxisTitle:  m.DynamicAxisTitle,
			MaxCards:          m.MaxCards,
			FirstElement:      m.FirstElement,
			LastElement:       m.LastElement,
			ColoredCumulative: m.ColoredCumulative,
			SecondaryMax:      m.SecondaryMax,
		},
	}
	for i, t := range m.AxisTitles {
		s.Meta.AxisTitles[i] = studychart.Key(t)
	}
	return s
}

func toRecord(s *studychart.Stats) record {
	var rec record
	rec.Series, rec.Cumulative = s.Series, s.Cumulative
	m := s.Meta
	rec.Meta.Backwards = m.Backwards
	rec.Meta.ValueLabels = ints(m.ValueLabels)
	rec.Meta.Colors = ints(m.Colors)
	for i, t := range m.AxisTitles {
		rec.Meta.AxisTitles[i] = int(t)
	}
	rec.Meta.DynamicAxisTitle = m.DynamicAxisTitle
	rec.Meta.MaxCards = m.MaxCards
	rec.Meta.FirstElement, rec.Meta.LastElement = m.FirstElement, m.LastElement
	rec.Meta.ColoredCumulative = m.ColoredCumulative
	rec.Meta.SecondaryMax = m.SecondaryMax
	return rec
}

func keys(is []int) []studychart.Key {
	ks := make([]studychart.Key, len(is))
	for i, v := range is {
		ks[i] = studychart.Key(v)
	}
	return ks
}

func ints(ks []studychart.Key) []int {
	is := make([]int, len(ks))
	for i, k := range ks {
		is[i] = int(k)
	}
	return is
}
