package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionQuery_ToSelection(t *testing.T) {
	q := SelectionQuery{
		Currency: " 원/미국달러 ",
		Measures: []string{"말일자료", " ", "평균자료"},
		From:     "2024/01",
		To:       "2024/3",
	}

	sel, err := q.ToSelection()

	require.NoError(t, err)
	assert.Equal(t, "원/미국달러", sel.Currency)
	assert.Equal(t, []string{"말일자료", "평균자료"}, sel.Measures)
	require.NotNil(t, sel.From)
	require.NotNil(t, sel.To)
	assert.True(t, sel.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, sel.To.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSelectionQuery_NoMeasuresMeansAll(t *testing.T) {
	sel, err := SelectionQuery{Currency: "원/유로"}.ToSelection()

	require.NoError(t, err)
	assert.Empty(t, sel.Measures)
	assert.Nil(t, sel.From)
	assert.Nil(t, sel.To)
}

func TestSelectionQuery_InvalidBounds(t *testing.T) {
	_, err := SelectionQuery{From: "2024-01"}.ToSelection()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = SelectionQuery{From: "2024/06", To: "2024/01"}.ToSelection()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListObservationsParams_Descending(t *testing.T) {
	assert.True(t, ListObservationsParams{Order: "desc"}.Descending())
	assert.False(t, ListObservationsParams{Order: "asc"}.Descending())
	assert.False(t, ListObservationsParams{}.Descending())
}
