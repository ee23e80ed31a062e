package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/platform/metrics"
)

// datasetService implements the DatasetSvcFacade interface.
// The source table is read and reshaped once per process; the observations (or the
// load error) are then shared read-only by every caller.
type datasetService struct {
	BaseService
	rawTableRepo portsrepo.RawTableRepositoryFacade
	identifiers  IdentifierColumns

	once         sync.Once
	observations []domain.Observation
	stats        domain.ReshapeStats
	err          error
}

// DatasetServiceOption is a functional option for configuring the dataset service
type DatasetServiceOption func(*datasetService)

// WithIdentifierColumns overrides the header names recognised as identifier columns.
func WithIdentifierColumns(ids IdentifierColumns) DatasetServiceOption {
	return func(s *datasetService) {
		s.identifiers = ids
	}
}

// NewDatasetService creates a new dataset service with the provided options
func NewDatasetService(repo portsrepo.RawTableRepositoryFacade, options ...DatasetServiceOption) portssvc.DatasetSvcFacade {
	svc := &datasetService{
		rawTableRepo: repo,
		identifiers:  DefaultIdentifierColumns,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure datasetService implements the DatasetSvcFacade interface
var _ portssvc.DatasetSvcFacade = (*datasetService)(nil)

// load runs the read-and-reshape step exactly once. Failures are terminal.
func (s *datasetService) load(ctx context.Context) {
	s.once.Do(func() {
		// The result outlives the request that triggered it.
		ctx = context.WithoutCancel(ctx)
		start := time.Now()

		raw, err := s.rawTableRepo.LoadRawTable(ctx)
		if err != nil {
			s.err = fmt.Errorf("failed to load dataset from %s: %w", s.rawTableRepo.Location(), err)
			metrics.RecordDatasetLoadFailure(failureReason(err))
			s.LogError(ctx, err, "Failed to load source table", slog.String("source", s.rawTableRepo.Location()))
			return
		}

		observations, stats, err := Reshape(raw, s.identifiers)
		if err != nil {
			s.err = fmt.Errorf("failed to reshape dataset from %s: %w", s.rawTableRepo.Location(), err)
			metrics.RecordDatasetLoadFailure(failureReason(err))
			s.LogError(ctx, err, "Failed to reshape source table", slog.String("source", s.rawTableRepo.Location()))
			return
		}

		elapsed := time.Since(start)
		s.observations = observations
		s.stats = stats
		metrics.RecordDatasetLoad(stats, elapsed)

		s.LogInfo(ctx, "Dataset loaded",
			slog.String("source", s.rawTableRepo.Location()),
			slog.String("encoding", raw.Encoding),
			slog.Int("series", stats.Series),
			slog.Int("date_columns", stats.DateColumns),
			slog.Int("observations", stats.Observations),
			slog.Int("dropped_rate", stats.DroppedRate),
			slog.Int("dropped_period", stats.DroppedPeriod),
			slog.Duration("elapsed", elapsed))
	})
}

// Observations returns the cached observation table, loading it on first use.
func (s *datasetService) Observations(ctx context.Context) ([]domain.Observation, error) {
	s.load(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return s.observations, nil
}

// Stats returns the reshape counters of the cached load.
func (s *datasetService) Stats(ctx context.Context) (domain.ReshapeStats, error) {
	s.load(ctx)
	if s.err != nil {
		return domain.ReshapeStats{}, s.err
	}
	return s.stats, nil
}

// Source returns the location of the source file.
func (s *datasetService) Source() string {
	return s.rawTableRepo.Location()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, apperrors.ErrDecodeFailure):
		return "decode_failure"
	case errors.Is(err, apperrors.ErrMalformedTable):
		return "malformed_table"
	default:
		return "other"
	}
}
