package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/platform/metrics"
)

// selectionService implements the SelectionSvcFacade interface
type selectionService struct {
	BaseService
	dataset               portssvc.DatasetReaderSvc
	defaultCurrencyMarker string
}

// SelectionServiceOption is a functional option for configuring the selection service
type SelectionServiceOption func(*selectionService)

// WithDefaultCurrencyMarker sets the substring that identifies the default currency.
func WithDefaultCurrencyMarker(marker string) SelectionServiceOption {
	return func(s *selectionService) {
		s.defaultCurrencyMarker = marker
	}
}

// NewSelectionService creates a new selection service with the provided options
func NewSelectionService(dataset portssvc.DatasetReaderSvc, options ...SelectionServiceOption) portssvc.SelectionSvcFacade {
	svc := &selectionService{
		dataset:               dataset,
		defaultCurrencyMarker: DefaultCurrencyMarker,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure selectionService implements the SelectionSvcFacade interface
var _ portssvc.SelectionSvcFacade = (*selectionService)(nil)

// Options returns the selectable currencies and measures.
func (s *selectionService) Options(ctx context.Context) (*domain.SelectionOptions, error) {
	observations, err := s.dataset.Observations(ctx)
	if err != nil {
		return nil, err
	}

	currencies := Currencies(observations)
	return &domain.SelectionOptions{
		Currencies:      currencies,
		DefaultCurrency: DefaultCurrency(currencies, s.defaultCurrencyMarker),
		Measures:        Measures(observations),
	}, nil
}

// Select fills in the default currency when none was chosen and filters the table.
// An empty measure list means every measure passes.
func (s *selectionService) Select(ctx context.Context, sel domain.Selection) (*domain.SelectionResult, error) {
	observations, err := s.dataset.Observations(ctx)
	if err != nil {
		return nil, err
	}

	if sel.Currency == "" {
		sel.Currency = DefaultCurrency(Currencies(observations), s.defaultCurrencyMarker)
	}

	result := &domain.SelectionResult{
		Selection:    sel,
		Observations: FilterObservations(observations, sel),
	}

	if result.Empty() {
		metrics.RecordEmptySelection()
		s.LogInfo(ctx, "Selection matched no observations",
			slog.String("currency", sel.Currency),
			slog.Any("measures", sel.Measures))
	} else {
		s.LogDebug(ctx, "Selection resolved",
			slog.String("currency", sel.Currency),
			slog.Any("measures", sel.Measures),
			slog.Int("observations", len(result.Observations)))
	}

	return result, nil
}

// Summarize computes the headline metrics of the observations.
func (s *selectionService) Summarize(ctx context.Context, observations []domain.Observation) (*domain.Summary, error) {
	summary, err := Summarize(observations)
	if err != nil {
		s.LogWarn(ctx, "Summary statistics unavailable", slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}
