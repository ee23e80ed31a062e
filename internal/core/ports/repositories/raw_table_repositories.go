package repositories

import (
	"context"

	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
)

// RawTableReader defines read operations for the wide-format source table.
type RawTableReader interface {
	// LoadRawTable reads and decodes the source file into a RawTable.
	// It returns apperrors.ErrFileNotFound, apperrors.ErrDecodeFailure or
	// apperrors.ErrMalformedTable (wrapped) on terminal failures.
	LoadRawTable(ctx context.Context) (*domain.RawTable, error)
}

// RawTableDescriber exposes where the source table comes from.
type RawTableDescriber interface {
	// Location returns the path (or other locator) of the source table.
	Location() string
}

// RawTableRepositoryFacade combines all raw table repository interfaces.
type RawTableRepositoryFacade interface {
	RawTableReader
	RawTableDescriber
}
