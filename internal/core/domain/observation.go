package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodLayout is the year/month pattern used by the date column headers (e.g. "2024/03").
const PeriodLayout = "2006/1"

// PeriodDisplayLayout renders a period date the way the source headers write it.
const PeriodDisplayLayout = "2006/01"

// Observation is one (series, month) value after the wide table has been reshaped.
// Period keeps the original header text ("2024/03"); PeriodDate is the first day
// of that month in UTC.
type Observation struct {
	TableID    string          `json:"tableID,omitempty"`
	Currency   string          `json:"currency"`
	Measure    string          `json:"measure"`
	Unit       string          `json:"unit,omitempty"`
	Transform  string          `json:"transform,omitempty"`
	Period     string          `json:"period"`
	PeriodDate time.Time       `json:"periodDate"`
	Rate       decimal.Decimal `json:"rate"`
}

// ParsePeriod parses a date column header under PeriodLayout.
func ParsePeriod(period string) (time.Time, error) {
	return time.Parse(PeriodLayout, period)
}

// Selection describes which observations a viewer asked for.
type Selection struct {
	Currency string
	// Measures restricts the measurement basis. Empty means no measure filter.
	Measures []string
	// From and To are optional inclusive month bounds.
	From *time.Time
	To   *time.Time
}

// HasMeasure reports whether the measure passes the selection's measure filter.
func (s Selection) HasMeasure(measure string) bool {
	if len(s.Measures) == 0 {
		return true
	}
	for _, m := range s.Measures {
		if m == measure {
			return true
		}
	}
	return false
}

// InRange reports whether the month lies within the optional From/To bounds.
func (s Selection) InRange(periodDate time.Time) bool {
	if s.From != nil && periodDate.Before(*s.From) {
		return false
	}
	if s.To != nil && periodDate.After(*s.To) {
		return false
	}
	return true
}

// SelectionOptions lists what a viewer can choose from.
type SelectionOptions struct {
	Currencies      []string `json:"currencies"`
	DefaultCurrency string   `json:"defaultCurrency"`
	Measures        []string `json:"measures"`
}

// SelectionResult is a resolved selection and the observations it matched.
type SelectionResult struct {
	Selection    Selection
	Observations []Observation
}

// Empty reports whether the selection matched nothing.
func (r *SelectionResult) Empty() bool {
	return r == nil || len(r.Observations) == 0
}

// SortedByPeriodDesc returns a copy of observations ordered by period descending.
// Observations sharing a period keep their relative order.
func SortedByPeriodDesc(observations []Observation) []Observation {
	out := make([]Observation, len(observations))
	copy(out, observations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PeriodDate.After(out[j].PeriodDate)
	})
	return out
}
