package mapping

import (
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/SscSPs/krw_rates_dashboard/internal/dto"
	"github.com/SscSPs/krw_rates_dashboard/internal/utils"
)

// ToObservationRows converts observations to formatted detail table rows, keeping their order.
func ToObservationRows(observations []domain.Observation) []dto.ObservationRow {
	rows := make([]dto.ObservationRow, len(observations))
	for i, o := range observations {
		rows[i] = dto.ObservationRow{
			Period:   o.Period,
			Currency: o.Currency,
			Measure:  o.Measure,
			Rate:     utils.FormatGrouped(o.Rate),
			Unit:     o.Unit,
		}
	}
	return rows
}

// ToMetricViews converts a summary to the three headline metric cards.
func ToMetricViews(s *domain.Summary) []dto.MetricView {
	return []dto.MetricView{
		{Label: "최근 환율", Value: utils.FormatWon(s.Latest.Rate), Delta: "기준: " + s.Latest.Period},
		{Label: "기간 내 최저", Value: utils.FormatWon(s.Min)},
		{Label: "기간 내 최고", Value: utils.FormatWon(s.Max)},
	}
}

// ToMeasureOptions marks the selected measures. No selection means all are selected.
func ToMeasureOptions(measures []string, selected []string) []dto.MeasureOption {
	chosen := make(map[string]bool, len(selected))
	for _, m := range selected {
		chosen[m] = true
	}
	options := make([]dto.MeasureOption, len(measures))
	for i, m := range measures {
		options[i] = dto.MeasureOption{
			Name:     m,
			Selected: len(selected) == 0 || chosen[m],
		}
	}
	return options
}
