package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard month
	period := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(period, 2)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedPeriod, decodedSeq, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, period.Equal(decodedPeriod), "Period should match after decode")
	assert.Equal(t, 2, decodedSeq, "Position should match after decode")

	// Test case 2: Zero time value
	zeroToken := EncodeToken(time.Time{}, 0)
	decodedZero, decodedZeroSeq, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.True(t, decodedZero.IsZero(), "Zero period should match after decode")
	assert.Equal(t, 0, decodedZeroSeq)
}

func TestDecodeTokenErrors(t *testing.T) {
	// Test case 1: Invalid base64
	_, _, err := DecodeToken("invalid-base64!")
	assert.Error(t, err, "Should return error for invalid base64")

	// Test case 2: Missing separator
	invalidFormat := base64.StdEncoding.EncodeToString([]byte("no-separator-here"))
	_, _, err = DecodeToken(invalidFormat)
	assert.Error(t, err, "Should return error for missing separator")

	// Test case 3: Invalid period format
	invalidPeriod := base64.StdEncoding.EncodeToString([]byte("2024/03|0"))
	_, _, err = DecodeToken(invalidPeriod)
	assert.Error(t, err, "Should return error for invalid period format")

	// Test case 4: Negative position
	negative := base64.StdEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|-1"))
	_, _, err = DecodeToken(negative)
	assert.Error(t, err, "Should return error for a negative position")
}

func observationsFor(periods ...string) []domain.Observation {
	obs := make([]domain.Observation, len(periods))
	for i, p := range periods {
		pd, err := domain.ParsePeriod(p)
		if err != nil {
			panic(err)
		}
		obs[i] = domain.Observation{Period: p, PeriodDate: pd, Rate: decimal.NewFromInt(int64(i))}
	}
	return obs
}

func TestPage_WalksEveryObservationOnce(t *testing.T) {
	obs := observationsFor("2024/01", "2024/01", "2024/02", "2024/02", "2024/02", "2024/03", "2024/04")

	var seen []domain.Observation
	token := ""
	for pages := 0; pages < 10; pages++ {
		page, next, err := Page(obs, 2, token)
		require.NoError(t, err)
		seen = append(seen, page...)
		if next == "" {
			break
		}
		token = next
	}

	assert.Equal(t, obs, seen)
}

func TestPage_Descending(t *testing.T) {
	obs := domain.SortedByPeriodDesc(observationsFor("2024/01", "2024/02", "2024/02", "2024/03"))

	first, next, err := Page(obs, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024/03", "2024/02"}, []string{first[0].Period, first[1].Period})
	require.NotEmpty(t, next)

	second, next, err := Page(obs, 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024/02", "2024/01"}, []string{second[0].Period, second[1].Period})
	assert.Empty(t, next)
}

func TestPage_NoLimitReturnsEverything(t *testing.T) {
	obs := observationsFor("2024/01", "2024/02")

	page, next, err := Page(obs, 0, "")

	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Empty(t, next)
}

func TestPage_EmptyInput(t *testing.T) {
	page, next, err := Page(nil, 10, "")

	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Empty(t, next)
}

func TestPage_InvalidToken(t *testing.T) {
	obs := observationsFor("2024/01", "2024/02")

	_, _, err := Page(obs, 1, "%%%")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	foreign := EncodeToken(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	_, _, err = Page(obs, 1, foreign)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
