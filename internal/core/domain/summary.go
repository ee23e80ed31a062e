package domain

import "github.com/shopspring/decimal"

// Summary holds the headline metrics for a filtered set of observations.
type Summary struct {
	Latest Observation     `json:"latest"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Count  int             `json:"count"`
}
