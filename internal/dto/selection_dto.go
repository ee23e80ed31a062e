package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
)

// SelectionQuery carries a currency/measure selection in the query string.
// Measures may repeat (?measure=평균&measure=말일); none means every measure.
type SelectionQuery struct {
	Currency string   `form:"currency"`
	Measures []string `form:"measure"`
	From     string   `form:"from" binding:"omitempty,yearmonth"`
	To       string   `form:"to" binding:"omitempty,yearmonth"`
}

// ToSelection converts the query into a domain selection.
func (q SelectionQuery) ToSelection() (domain.Selection, error) {
	sel := domain.Selection{
		Currency: strings.TrimSpace(q.Currency),
	}
	for _, m := range q.Measures {
		if m = strings.TrimSpace(m); m != "" {
			sel.Measures = append(sel.Measures, m)
		}
	}

	var err error
	if sel.From, err = parseBound(q.From, "from"); err != nil {
		return domain.Selection{}, err
	}
	if sel.To, err = parseBound(q.To, "to"); err != nil {
		return domain.Selection{}, err
	}
	if sel.From != nil && sel.To != nil && sel.From.After(*sel.To) {
		return domain.Selection{}, fmt.Errorf("%w: 'from' (%s) is after 'to' (%s)", apperrors.ErrValidation, q.From, q.To)
	}
	return sel, nil
}

func parseBound(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := domain.ParsePeriod(value)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' must be a YYYY/MM month", apperrors.ErrValidation, name)
	}
	return &t, nil
}

// ListObservationsParams defines the query parameters for listing observations.
type ListObservationsParams struct {
	SelectionQuery
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string `form:"nextToken"`
}

// Descending reports whether the newest period should come first.
func (p ListObservationsParams) Descending() bool {
	return p.Order == "desc"
}
