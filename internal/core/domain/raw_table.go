package domain

// IdentifierRole is the fixed semantic role of a column that labels a series.
type IdentifierRole string

const (
	RoleTableID   IdentifierRole = "table_id"
	RoleCurrency  IdentifierRole = "currency"
	RoleMeasure   IdentifierRole = "measure"
	RoleUnit      IdentifierRole = "unit"
	RoleTransform IdentifierRole = "transform"
)

// IdentifierRoles lists every role in the order the source file lays them out.
var IdentifierRoles = []IdentifierRole{RoleTableID, RoleCurrency, RoleMeasure, RoleUnit, RoleTransform}

// RawTable is the source file as read: one row per (currency, measure) series and
// one string cell per column, date columns still in wide layout.
type RawTable struct {
	Columns []string
	Rows    [][]string
	// Encoding names the text encoding the file was decoded with.
	Encoding string
}

// NumRows returns the number of data rows.
func (t *RawTable) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the cell at row i, column j, or "" when the row is short.
func (t *RawTable) Cell(i, j int) string {
	row := t.Rows[i]
	if j >= len(row) {
		return ""
	}
	return row[j]
}

// ReshapeStats counts what happened to the melted cells during reshape.
type ReshapeStats struct {
	Series        int `json:"series"`
	DateColumns   int `json:"dateColumns"`
	Cells         int `json:"cells"`
	DroppedRate   int `json:"droppedRate"`
	DroppedPeriod int `json:"droppedPeriod"`
	Observations  int `json:"observations"`
}
