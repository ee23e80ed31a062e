package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IdentifierColumns maps each identifier role to the header names that may carry it.
// The first candidate present in the table wins.
type IdentifierColumns map[domain.IdentifierRole][]string

// DefaultIdentifierColumns matches the headers of the statistics export.
var DefaultIdentifierColumns = IdentifierColumns{
	domain.RoleTableID:   {"통계표"},
	domain.RoleCurrency:  {"계정항목"},
	domain.RoleMeasure:   {"측정항목"},
	domain.RoleUnit:      {"단위"},
	domain.RoleTransform: {"변환"},
}

// columnLayout is the result of classifying a table's headers.
type columnLayout struct {
	roles map[domain.IdentifierRole]int
	dates []int
}

// classify splits columns into identifier columns and date columns.
// Any column claimed by an identifier role is never a date column.
func (ids IdentifierColumns) classify(columns []string) columnLayout {
	layout := columnLayout{roles: make(map[domain.IdentifierRole]int)}
	claimed := make(map[int]bool)

	for _, role := range domain.IdentifierRoles {
		for _, candidate := range ids[role] {
			idx := indexOf(columns, candidate)
			if idx < 0 || claimed[idx] {
				continue
			}
			layout.roles[role] = idx
			claimed[idx] = true
			break
		}
	}

	for j := range columns {
		if !claimed[j] {
			layout.dates = append(layout.dates, j)
		}
	}
	return layout
}

func (l columnLayout) value(raw *domain.RawTable, row int, role domain.IdentifierRole) string {
	j, ok := l.roles[role]
	if !ok {
		return ""
	}
	return raw.Cell(row, j)
}

func indexOf(columns []string, name string) int {
	for j, c := range columns {
		if c == name {
			return j
		}
	}
	return -1
}

// parseRate strips thousands separators and parses the cell as a decimal.
// Blank and non-numeric cells report false.
func parseRate(cell string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Reshape melts the wide table into one observation per (series, month).
//
// Cells whose rate is blank or not numeric are dropped, as are date columns whose
// header does not parse as year/month. The result is ordered by period ascending;
// observations of the same month keep the order of the source rows.
func Reshape(raw *domain.RawTable, ids IdentifierColumns) ([]domain.Observation, domain.ReshapeStats, error) {
	var stats domain.ReshapeStats
	if raw == nil || len(raw.Columns) == 0 {
		return nil, stats, fmt.Errorf("%w: table has no columns", apperrors.ErrMalformedTable)
	}

	layout := ids.classify(raw.Columns)
	if _, ok := layout.roles[domain.RoleCurrency]; !ok {
		return nil, stats, fmt.Errorf("%w: no currency column among %v", apperrors.ErrMalformedTable, ids[domain.RoleCurrency])
	}

	stats.Series = raw.NumRows()
	stats.DateColumns = len(layout.dates)

	observations := make([]domain.Observation, 0, len(layout.dates)*raw.NumRows())
	for _, j := range layout.dates {
		period := raw.Columns[j]
		periodDate, periodErr := domain.ParsePeriod(period)

		for i := range raw.Rows {
			stats.Cells++
			rate, ok := parseRate(raw.Cell(i, j))
			if !ok {
				stats.DroppedRate++
				continue
			}
			if periodErr != nil {
				stats.DroppedPeriod++
				continue
			}
			observations = append(observations, domain.Observation{
				TableID:    layout.value(raw, i, domain.RoleTableID),
				Currency:   layout.value(raw, i, domain.RoleCurrency),
				Measure:    layout.value(raw, i, domain.RoleMeasure),
				Unit:       layout.value(raw, i, domain.RoleUnit),
				Transform:  layout.value(raw, i, domain.RoleTransform),
				Period:     period,
				PeriodDate: periodDate,
				Rate:       rate,
			})
		}
	}

	sort.SliceStable(observations, func(a, b int) bool {
		return observations[a].PeriodDate.Before(observations[b].PeriodDate)
	})
	stats.Observations = len(observations)

	return observations, stats, nil
}
