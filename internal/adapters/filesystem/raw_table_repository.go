package filesystem

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/repositories"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// RawTableRepository reads the wide-format source table from a single CSV file.
type RawTableRepository struct {
	path      string
	encodings []string
}

// NewRawTableRepository creates a new RawTableRepository.
// An empty encodings list falls back to DefaultEncodings.
func NewRawTableRepository(path string, encodings []string) portsrepo.RawTableRepositoryFacade {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	return &RawTableRepository{
		path:      path,
		encodings: encodings,
	}
}

// Ensure RawTableRepository implements the RawTableRepositoryFacade interface
var _ portsrepo.RawTableRepositoryFacade = (*RawTableRepository)(nil)

// Location returns the path of the source file.
func (r *RawTableRepository) Location() string {
	return r.path
}

// LoadRawTable reads the file once, then decodes it with the first candidate
// encoding that succeeds. A missing file is reported before any decoding is tried.
func (r *RawTableRepository) LoadRawTable(ctx context.Context) (*domain.RawTable, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", r.path, err)
	}

	text, used, err := decodeText(data, r.encodings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	table, err := parseRawTable(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	table.Encoding = used
	return table, nil
}

// parseRawTable reads CSV text into a RawTable, keeping every cell as text.
// Rows shorter than the header are padded with blank cells; longer rows are malformed.
// The header row is kept as written, so duplicate period headers stay parseable.
func parseRawTable(text string) (*domain.RawTable, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedTable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no header row", apperrors.ErrMalformedTable)
	}

	columns := records[0]
	for i, record := range records[1:] {
		switch {
		case len(record) > len(columns):
			return nil, fmt.Errorf("%w: data row %d has %d fields, header has %d",
				apperrors.ErrMalformedTable, i+1, len(record), len(columns))
		case len(record) < len(columns):
			padded := make([]string, len(columns))
			copy(padded, record)
			records[i+1] = padded
		}
	}

	// A header without data is an empty table, not a broken one.
	if len(records) == 1 {
		return &domain.RawTable{Columns: columns}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedTable, df.Err)
	}

	// Records() repeats the (possibly renamed) header as its first row; cells are positional.
	return &domain.RawTable{
		Columns: columns,
		Rows:    df.Records()[1:],
	}, nil
}
