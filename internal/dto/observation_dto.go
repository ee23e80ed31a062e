package dto

import (
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ObservationResponse defines the structure for API responses containing one observation.
type ObservationResponse struct {
	Period    string          `json:"period"`
	Currency  string          `json:"currency"`
	Measure   string          `json:"measure,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	TableID   string          `json:"tableID,omitempty"`
	Transform string          `json:"transform,omitempty"`
	Rate      decimal.Decimal `json:"rate"`
}

// ListObservationsResponse wraps a page of observations.
type ListObservationsResponse struct {
	Currency     string                `json:"currency"`
	Measures     []string              `json:"measures,omitempty"`
	Observations []ObservationResponse `json:"observations"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// CurrencyListResponse lists the selectable currencies.
type CurrencyListResponse struct {
	Currencies []string `json:"currencies"`
	Default    string   `json:"default"`
}

// MeasureListResponse lists the selectable measures.
type MeasureListResponse struct {
	Measures []string `json:"measures"`
}

// SummaryResponse defines the structure for the summary metrics of a selection.
type SummaryResponse struct {
	Currency     string          `json:"currency"`
	Measures     []string        `json:"measures,omitempty"`
	LatestRate   decimal.Decimal `json:"latestRate"`
	LatestPeriod string          `json:"latestPeriod"`
	Min          decimal.Decimal `json:"min"`
	Max          decimal.Decimal `json:"max"`
	Count        int             `json:"count"`
}

// ToObservationResponse converts a domain.Observation to ObservationResponse DTO
func ToObservationResponse(o domain.Observation) ObservationResponse {
	return ObservationResponse{
		Period:    o.Period,
		Currency:  o.Currency,
		Measure:   o.Measure,
		Unit:      o.Unit,
		TableID:   o.TableID,
		Transform: o.Transform,
		Rate:      o.Rate,
	}
}

// ToListObservationResponse converts a slice of domain.Observation to a slice of ObservationResponse DTOs.
func ToListObservationResponse(observations []domain.Observation) []ObservationResponse {
	responses := make([]ObservationResponse, len(observations))
	for i, o := range observations {
		responses[i] = ToObservationResponse(o)
	}
	return responses
}

// ToSummaryResponse converts a domain.Summary for the given selection to SummaryResponse DTO
func ToSummaryResponse(sel domain.Selection, s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Currency:     sel.Currency,
		Measures:     sel.Measures,
		LatestRate:   s.Latest.Rate,
		LatestPeriod: s.Latest.Period,
		Min:          s.Min,
		Max:          s.Max,
		Count:        s.Count,
	}
}
