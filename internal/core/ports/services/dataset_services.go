package services

import (
	"context"
	"io"

	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
)

// DatasetReaderSvc exposes the observation table derived from the source file.
type DatasetReaderSvc interface {
	// Observations returns every observation in ascending period order.
	// The slice is shared and must not be modified by callers.
	Observations(ctx context.Context) ([]domain.Observation, error)

	// Stats returns the counters collected while reshaping the source table.
	Stats(ctx context.Context) (domain.ReshapeStats, error)
}

// DatasetDescriberSvc describes the dataset's origin for display.
type DatasetDescriberSvc interface {
	// Source returns the location of the source file.
	Source() string
}

// DatasetSvcFacade combines all dataset-related service interfaces
type DatasetSvcFacade interface {
	DatasetReaderSvc
	DatasetDescriberSvc
}

// SelectionReaderSvc defines the selection and filtering operations of the dashboard.
type SelectionReaderSvc interface {
	// Options returns the selectable currencies and measures plus the default currency.
	Options(ctx context.Context) (*domain.SelectionOptions, error)

	// Select resolves defaults into sel and returns the matching observations in
	// ascending period order. An empty match is not an error.
	Select(ctx context.Context, sel domain.Selection) (*domain.SelectionResult, error)
}

// SummarySvc computes headline metrics.
type SummarySvc interface {
	// Summarize returns the latest, minimum and maximum rate of the observations.
	// It returns apperrors.ErrEmptySelection when observations is empty.
	Summarize(ctx context.Context, observations []domain.Observation) (*domain.Summary, error)
}

// SelectionSvcFacade combines all selection-related service interfaces
type SelectionSvcFacade interface {
	SelectionReaderSvc
	SummarySvc
}

// ChartRenderer draws observations as a rate-vs-period line chart.
type ChartRenderer interface {
	// RenderLineChart writes the chart to w, one series per measure.
	RenderLineChart(w io.Writer, title string, observations []domain.Observation) error

	// ContentType returns the MIME type of the rendered output.
	ContentType() string
}
