package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
)

const timeFormat = time.RFC3339 // Periods are whole months, seconds are plenty

// EncodeToken creates a base64 encoded token from the period of the last returned
// observation and its position among the observations sharing that period.
func EncodeToken(period time.Time, seq int) string {
	tokenStr := fmt.Sprintf("%s|%d", period.Format(timeFormat), seq)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into period and position.
func DecodeToken(token string) (time.Time, int, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	period, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (period parse): %w", err)
	}

	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 0 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (position parse)")
	}

	return period, seq, nil
}

// Page returns up to limit observations following the position encoded in token,
// plus the token for the next page ("" when there is none). Observations must be
// sorted by period (either direction) so that equal periods are contiguous.
// A limit of zero or less returns everything after the token.
func Page(observations []domain.Observation, limit int, token string) ([]domain.Observation, string, error) {
	start := 0
	if token != "" {
		period, seq, err := DecodeToken(token)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		idx := positionOf(observations, period, seq)
		if idx < 0 {
			return nil, "", fmt.Errorf("%w: pagination token does not match the selection", apperrors.ErrValidation)
		}
		start = idx + 1
	}

	end := len(observations)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := observations[start:end]

	if end >= len(observations) || len(page) == 0 {
		return page, "", nil
	}
	last := end - 1
	return page, EncodeToken(observations[last].PeriodDate, seqAt(observations, last)), nil
}

// positionOf finds the index of the seq-th observation with the given period.
func positionOf(observations []domain.Observation, period time.Time, seq int) int {
	n := 0
	for i, o := range observations {
		if !o.PeriodDate.Equal(period) {
			continue
		}
		if n == seq {
			return i
		}
		n++
	}
	return -1
}

// seqAt counts the observations before index i that share its period.
func seqAt(observations []domain.Observation, i int) int {
	seq := 0
	for j := i - 1; j >= 0 && observations[j].PeriodDate.Equal(observations[i].PeriodDate); j-- {
		seq++
	}
	return seq
}
