package dto

// NoticeLevel controls how a notice is styled on the dashboard.
type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a user-visible message shown in place of data.
type Notice struct {
	Level   NoticeLevel
	Message string
	Hint    string
}

// MetricView is one headline metric card.
type MetricView struct {
	Label string
	Value string
	Delta string
}

// ObservationRow is one formatted row of the detail table.
type ObservationRow struct {
	Period   string
	Currency string
	Measure  string
	Rate     string
	Unit     string
}

// MeasureOption is one entry of the measure multi-select.
type MeasureOption struct {
	Name     string
	Selected bool
}

// DashboardView is everything the dashboard template renders.
type DashboardView struct {
	Title       string
	Description string
	Source      string

	Currencies       []string
	SelectedCurrency string
	MeasureOptions   []MeasureOption
	From             string
	To               string

	// Notice replaces the whole data area (load failures, empty selection).
	Notice *Notice

	ChartTitle string
	ChartURL   string

	Metrics []MetricView
	// MetricsNotice is shown instead of Metrics when they cannot be computed.
	MetricsNotice *Notice

	ShowMeasureColumn bool
	ShowUnitColumn    bool
	Rows              []ObservationRow
}
