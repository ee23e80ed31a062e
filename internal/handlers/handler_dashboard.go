package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/dto"
	"github.com/SscSPs/krw_rates_dashboard/internal/middleware"
	"github.com/SscSPs/krw_rates_dashboard/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the dashboard page and its chart image.
type dashboardHandler struct {
	dataset     portssvc.DatasetSvcFacade
	selection   portssvc.SelectionSvcFacade
	renderer    portssvc.ChartRenderer
	title       string
	description string
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(dataset portssvc.DatasetSvcFacade, selection portssvc.SelectionSvcFacade, renderer portssvc.ChartRenderer, title, description string) *dashboardHandler {
	return &dashboardHandler{
		dataset:     dataset,
		selection:   selection,
		renderer:    renderer,
		title:       title,
		description: description,
	}
}

// registerDashboardRoutes registers the page routes.
func registerDashboardRoutes(r gin.IRoutes, h *dashboardHandler) {
	r.GET("/", h.showDashboard)
	r.GET("/chart.svg", h.renderChart)
}

// bindSelection reads the selection query and converts it to a domain selection.
func bindSelection(c *gin.Context) (dto.SelectionQuery, domain.Selection, error) {
	var q dto.SelectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, domain.Selection{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	sel, err := q.ToSelection()
	return q, sel, err
}

// chartURL builds the chart image link for a resolved selection.
func chartURL(sel domain.Selection, q dto.SelectionQuery) string {
	v := url.Values{}
	v.Set("currency", sel.Currency)
	for _, m := range sel.Measures {
		v.Add("measure", m)
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	return "/chart.svg?" + v.Encode()
}

func hasMeasure(observations []domain.Observation) bool {
	for _, o := range observations {
		if o.Measure != "" {
			return true
		}
	}
	return false
}

func hasUnit(observations []domain.Observation) bool {
	for _, o := range observations {
		if o.Unit != "" {
			return true
		}
	}
	return false
}

// showDashboard renders the dashboard for the selection in the query string.
// Load failures replace the data area with a notice; an empty selection is a warning, not an error.
func (h *dashboardHandler) showDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()

	view := &dto.DashboardView{
		Title:       h.title,
		Description: h.description,
		Source:      h.dataset.Source(),
	}

	q, sel, err := bindSelection(c)
	view.From, view.To = q.From, q.To
	if err != nil {
		logger.Warn("Invalid dashboard query", slog.String("error", err.Error()))
		view.Notice = &dto.Notice{Level: dto.NoticeWarning, Message: "조회 조건이 올바르지 않습니다. 기간은 YYYY/MM 형식으로 입력해주세요."}
		c.HTML(http.StatusBadRequest, dashboardTemplate, view)
		return
	}

	options, err := h.selection.Options(ctx)
	if err != nil {
		status, notice := loadFailureNotice(err, h.dataset.Source())
		logger.Error("Dashboard data unavailable", slog.String("error", err.Error()))
		view.Notice = notice
		c.HTML(status, dashboardTemplate, view)
		return
	}

	view.Currencies = options.Currencies
	view.MeasureOptions = mapping.ToMeasureOptions(options.Measures, sel.Measures)
	if len(options.Currencies) == 0 {
		logger.Warn("Dataset has no observations to display")
		view.Notice = &dto.Notice{Level: dto.NoticeWarning, Message: msgEmptyDataset}
		c.HTML(http.StatusOK, dashboardTemplate, view)
		return
	}

	result, err := h.selection.Select(ctx, sel)
	if err != nil {
		status, notice := loadFailureNotice(err, h.dataset.Source())
		logger.Error("Failed to select observations", slog.String("error", err.Error()))
		view.Notice = notice
		c.HTML(status, dashboardTemplate, view)
		return
	}

	currency := result.Selection.Currency
	view.SelectedCurrency = currency
	if result.Empty() {
		view.Notice = &dto.Notice{Level: dto.NoticeWarning, Message: msgEmptySelection}
		c.HTML(http.StatusOK, dashboardTemplate, view)
		return
	}

	view.ChartTitle = fmt.Sprintf("📈 %s 환율 추이", currency)
	view.ChartURL = chartURL(result.Selection, q)

	summary, err := h.selection.Summarize(ctx, result.Observations)
	switch {
	case err == nil:
		view.Metrics = mapping.ToMetricViews(summary)
	case errors.Is(err, apperrors.ErrEmptySelection):
		view.MetricsNotice = &dto.Notice{Level: dto.NoticeInfo, Message: msgNoStatistics}
	default:
		logger.Error("Failed to summarize observations", slog.String("error", err.Error()))
		c.HTML(http.StatusInternalServerError, dashboardTemplate, &dto.DashboardView{
			Title:  h.title,
			Source: h.dataset.Source(),
			Notice: &dto.Notice{Level: dto.NoticeError, Message: msgNoStatistics},
		})
		return
	}

	view.ShowMeasureColumn = hasMeasure(result.Observations)
	view.ShowUnitColumn = hasUnit(result.Observations)
	view.Rows = mapping.ToObservationRows(domain.SortedByPeriodDesc(result.Observations))

	logger.Info("Dashboard rendered",
		slog.String("currency", currency),
		slog.Int("observations", len(result.Observations)))
	c.HTML(http.StatusOK, dashboardTemplate, view)
}

// renderChart draws the selection as a line chart image.
func (h *dashboardHandler) renderChart(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	_, sel, err := bindSelection(c)
	if err != nil {
		logger.Warn("Invalid chart query", slog.String("error", err.Error()))
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.selection.Select(c.Request.Context(), sel)
	if err != nil {
		status, _ := loadFailureNotice(err, h.dataset.Source())
		logger.Error("Chart data unavailable", slog.String("error", err.Error()))
		c.Status(status)
		return
	}
	if result.Empty() {
		c.Status(http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%s 변동 그래프", result.Selection.Currency)
	if err := h.renderer.RenderLineChart(&buf, title, result.Observations); err != nil {
		logger.Error("Failed to render chart", slog.String("error", err.Error()))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, h.renderer.ContentType(), buf.Bytes())
}
