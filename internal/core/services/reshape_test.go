package services_test

import (
	"testing"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportColumns = []string{"통계표", "계정항목", "측정항목", "단위", "변환", "2024/01", "2024/02", "2024/03"}

func exportTable(rows ...[]string) *domain.RawTable {
	return &domain.RawTable{Columns: exportColumns, Rows: rows}
}

func TestReshape_MeltsEveryValidCell(t *testing.T) {
	raw := exportTable(
		[]string{"731Y004", "원/미국달러", "말일자료", "원", "원자료", "1,200.50", "1,180.00", "1,250.75"},
		[]string{"731Y004", "원/일본엔(100엔)", "말일자료", "원", "원자료", "900.1", "910.2", "905.3"},
	)

	obs, stats, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	assert.Len(t, obs, 6, "rows x date columns when every cell is valid")
	assert.Equal(t, domain.ReshapeStats{Series: 2, DateColumns: 3, Cells: 6, Observations: 6}, stats)

	first := obs[0]
	assert.Equal(t, "731Y004", first.TableID)
	assert.Equal(t, "원/미국달러", first.Currency)
	assert.Equal(t, "말일자료", first.Measure)
	assert.Equal(t, "원", first.Unit)
	assert.Equal(t, "원자료", first.Transform)
	assert.Equal(t, "2024/01", first.Period)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(first.Rate))
}

func TestReshape_ThousandsSeparatorsAndWhitespace(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"계정항목", "2024/01", "2024/02"},
		Rows:    [][]string{{"원/유로", " 1,234,567.89 ", "1450"}},
	}

	obs, _, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	require.Len(t, obs, 2)
	assert.Equal(t, "1234567.89", obs[0].Rate.String())
	assert.Equal(t, "1450", obs[1].Rate.String())
}

func TestReshape_DropsMissingRates(t *testing.T) {
	raw := exportTable(
		[]string{"731Y004", "원/미국달러", "말일자료", "원", "원자료", "", "-", "abc"},
		[]string{"731Y004", "원/유로", "말일자료", "원", "원자료", "1,450.00", "  ", "1,470.25"},
	)

	obs, stats, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	require.Len(t, obs, 2)
	for _, o := range obs {
		assert.Equal(t, "원/유로", o.Currency)
		assert.False(t, o.Rate.IsZero())
	}
	assert.Equal(t, 4, stats.DroppedRate)
	assert.Equal(t, 6, stats.Cells)
}

func TestReshape_DropsBadPeriods(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"계정항목", "측정항목", "2024/01", "2024-02", "비고", "2024/03"},
		Rows:    [][]string{{"원/미국달러", "말일자료", "1,300.00", "1,310.00", "1,320.00", "1,330.00"}},
	}

	obs, stats, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	require.Len(t, obs, 2)
	assert.Equal(t, "2024/01", obs[0].Period)
	assert.Equal(t, "2024/03", obs[1].Period)
	assert.Equal(t, 2, stats.DroppedPeriod)
	for _, o := range obs {
		_, err := domain.ParsePeriod(o.Period)
		assert.NoError(t, err)
	}
}

func TestReshape_IdentifierColumnsAreNeverDates(t *testing.T) {
	raw := exportTable([]string{"731Y004", "원/미국달러", "말일자료", "원", "원자료", "1", "2", "3"})

	obs, stats, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.DateColumns)
	for _, o := range obs {
		assert.NotEqual(t, "통계표", o.Period)
		assert.NotEqual(t, "변환", o.Period)
	}
}

func TestReshape_LegacyCurrencyEntirelyBlank(t *testing.T) {
	raw := exportTable(
		[]string{"731Y004", "원/미국달러", "말일자료", "원", "원자료", "1,200.50", "1,180.00", "1,250.75"},
		[]string{"731Y004", "원/프랑스프랑", "말일자료", "원", "원자료", "", "", ""},
	)

	obs, _, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	assert.Equal(t, []string{"원/미국달러"}, services.Currencies(obs))
}

func TestReshape_OrdersAscendingAndKeepsRowOrderWithinMonth(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"계정항목", "측정항목", "2024/03", "2023/12", "2024/01"},
		Rows: [][]string{
			{"원/미국달러", "말일자료", "3", "1", "2"},
			{"원/미국달러", "평균자료", "30", "10", "20"},
		},
	}

	obs, _, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	require.Len(t, obs, 6)
	for i := 1; i < len(obs); i++ {
		assert.False(t, obs[i].PeriodDate.Before(obs[i-1].PeriodDate), "not ascending at %d", i)
	}
	assert.Equal(t, "2023/12", obs[0].Period)
	assert.Equal(t, "말일자료", obs[0].Measure)
	assert.Equal(t, "평균자료", obs[1].Measure)
	assert.Equal(t, "2024/03", obs[5].Period)
}

func TestReshape_Idempotent(t *testing.T) {
	raw := exportTable(
		[]string{"731Y004", "원/미국달러", "말일자료", "원", "원자료", "1,200.50", "", "1,250.75"},
		[]string{"731Y004", "원/미국달러", "평균자료", "원", "원자료", "1,190.00", "1,185.00", "-"},
	)

	first, firstStats, err := services.Reshape(raw, services.DefaultIdentifierColumns)
	require.NoError(t, err)
	second, secondStats, err := services.Reshape(raw, services.DefaultIdentifierColumns)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, secondStats)
}

func TestReshape_OptionalIdentifiersDefaultToEmpty(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"계정항목", "2024/01"},
		Rows:    [][]string{{"원/위안", "190.5"}},
	}

	obs, _, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Empty(t, obs[0].Measure)
	assert.Empty(t, obs[0].Unit)
	assert.Empty(t, obs[0].TableID)
}

func TestReshape_ShortRowsReadAsBlank(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"계정항목", "2024/01", "2024/02"},
		Rows:    [][]string{{"원/미국달러", "1,300.00"}},
	}

	obs, stats, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	require.NoError(t, err)
	assert.Len(t, obs, 1)
	assert.Equal(t, 1, stats.DroppedRate)
}

func TestReshape_MissingCurrencyColumn(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"통계표", "측정항목", "2024/01"},
		Rows:    [][]string{{"731Y004", "말일자료", "1"}},
	}

	_, _, err := services.Reshape(raw, services.DefaultIdentifierColumns)

	assert.ErrorIs(t, err, apperrors.ErrMalformedTable)
}

func TestReshape_EmptyTable(t *testing.T) {
	_, _, err := services.Reshape(&domain.RawTable{}, services.DefaultIdentifierColumns)
	assert.ErrorIs(t, err, apperrors.ErrMalformedTable)

	obs, stats, err := services.Reshape(exportTable(), services.DefaultIdentifierColumns)
	require.NoError(t, err)
	assert.Empty(t, obs)
	assert.Equal(t, 0, stats.Observations)
}

func TestReshape_CustomIdentifierColumns(t *testing.T) {
	ids := services.IdentifierColumns{
		domain.RoleCurrency: {"Currency", "계정항목"},
		domain.RoleMeasure:  {"Basis"},
	}
	raw := &domain.RawTable{
		Columns: []string{"Currency", "Basis", "2024/01"},
		Rows:    [][]string{{"USD", "close", "1,300"}},
	}

	obs, _, err := services.Reshape(raw, ids)

	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, "USD", obs[0].Currency)
	assert.Equal(t, "close", obs[0].Measure)
}
