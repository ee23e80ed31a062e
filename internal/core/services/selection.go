package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
)

// DefaultCurrencyMarker picks the US dollar series when no currency is chosen.
const DefaultCurrencyMarker = "미국달러"

// Currencies returns the distinct non-empty currencies in order of first appearance.
func Currencies(observations []domain.Observation) []string {
	return distinct(observations, func(o domain.Observation) string { return o.Currency })
}

// Measures returns the distinct non-empty measures in order of first appearance.
func Measures(observations []domain.Observation) []string {
	return distinct(observations, func(o domain.Observation) string { return o.Measure })
}

func distinct(observations []domain.Observation, key func(domain.Observation) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, o := range observations {
		v := key(o)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// DefaultCurrency returns the first currency containing marker, falling back to the
// first currency, or "" when there are none.
func DefaultCurrency(currencies []string, marker string) string {
	if marker != "" {
		for _, c := range currencies {
			if strings.Contains(c, marker) {
				return c
			}
		}
	}
	if len(currencies) > 0 {
		return currencies[0]
	}
	return ""
}

// FilterObservations keeps the observations of sel.Currency whose measure and month
// pass the selection. Input order is preserved, so ascending input stays ascending.
func FilterObservations(observations []domain.Observation, sel domain.Selection) []domain.Observation {
	filtered := make([]domain.Observation, 0)
	for _, o := range observations {
		if o.Currency != sel.Currency {
			continue
		}
		if !sel.HasMeasure(o.Measure) {
			continue
		}
		if !sel.InRange(o.PeriodDate) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// Summarize computes the most recent, minimum and maximum rate.
// "Most recent" is the last element; observations must already be in ascending order.
func Summarize(observations []domain.Observation) (*domain.Summary, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("cannot summarize observations: %w", apperrors.ErrEmptySelection)
	}

	lo := observations[0].Rate
	hi := observations[0].Rate
	for _, o := range observations[1:] {
		if o.Rate.LessThan(lo) {
			lo = o.Rate
		}
		if o.Rate.GreaterThan(hi) {
			hi = o.Rate
		}
	}

	return &domain.Summary{
		Latest: observations[len(observations)-1],
		Min:    lo,
		Max:    hi,
		Count:  len(observations),
	}, nil
}
