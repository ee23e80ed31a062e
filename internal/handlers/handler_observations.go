package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/dto"
	"github.com/SscSPs/krw_rates_dashboard/internal/middleware"
	"github.com/SscSPs/krw_rates_dashboard/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// observationHandler handles HTTP requests for the observation API.
type observationHandler struct {
	dataset   portssvc.DatasetSvcFacade
	selection portssvc.SelectionSvcFacade
}

// newObservationHandler creates a new observationHandler.
func newObservationHandler(dataset portssvc.DatasetSvcFacade, selection portssvc.SelectionSvcFacade) *observationHandler {
	return &observationHandler{
		dataset:   dataset,
		selection: selection,
	}
}

// registerObservationRoutes registers routes related to observations.
func registerObservationRoutes(rg *gin.RouterGroup, dataset portssvc.DatasetSvcFacade, selection portssvc.SelectionSvcFacade) {
	h := newObservationHandler(dataset, selection)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/measures", h.listMeasures)
	rg.GET("/observations", h.listObservations)
	rg.GET("/summary", h.getSummary)
	rg.GET("/dataset/stats", h.getDatasetStats)
}

// respondError maps service errors to API responses.
func (h *observationHandler) respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, notice := loadFailureNotice(err, h.dataset.Source())
	logger.Error("Failed "+action, slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": notice.Message})
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists the currencies that have at least one valid observation, in order of first appearance
// @Tags observations
// @Produce  json
// @Success 200 {object} dto.CurrencyListResponse
// @Failure 503 {object} map[string]string "Dataset unavailable"
// @Router /currencies [get]
func (h *observationHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	options, err := h.selection.Options(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err, "listing currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(options.Currencies)))
	c.JSON(http.StatusOK, dto.CurrencyListResponse{
		Currencies: options.Currencies,
		Default:    options.DefaultCurrency,
	})
}

// listMeasures godoc
// @Summary List measures
// @Description Lists the measurement bases present in the dataset
// @Tags observations
// @Produce  json
// @Success 200 {object} dto.MeasureListResponse
// @Failure 503 {object} map[string]string "Dataset unavailable"
// @Router /measures [get]
func (h *observationHandler) listMeasures(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	options, err := h.selection.Options(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err, "listing measures")
		return
	}

	c.JSON(http.StatusOK, dto.MeasureListResponse{Measures: options.Measures})
}

// listObservations godoc
// @Summary List observations
// @Description Lists the observations of one currency, optionally restricted to measures and a month range
// @Tags observations
// @Produce  json
// @Param   currency  query string false "Currency (defaults to the US dollar series)"
// @Param   measure   query []string false "Measurement basis, repeatable" collectionFormat(multi)
// @Param   from      query string false "First month (YYYY/MM)"
// @Param   to        query string false "Last month (YYYY/MM)"
// @Param   order     query string false "asc or desc" Enums(asc, desc)
// @Param   limit     query int false "Page size (1-1000)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListObservationsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 503 {object} map[string]string "Dataset unavailable"
// @Router /observations [get]
func (h *observationHandler) listObservations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListObservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListObservations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	sel, err := params.ToSelection()
	if err != nil {
		h.respondError(c, logger, err, "listing observations")
		return
	}

	result, err := h.selection.Select(c.Request.Context(), sel)
	if err != nil {
		h.respondError(c, logger, err, "listing observations")
		return
	}

	rows := result.Observations
	if params.Descending() {
		rows = domain.SortedByPeriodDesc(rows)
	}
	page, next, err := pagination.Page(rows, params.Limit, params.NextToken)
	if err != nil {
		h.respondError(c, logger, err, "listing observations")
		return
	}

	c.JSON(http.StatusOK, dto.ListObservationsResponse{
		Currency:     result.Selection.Currency,
		Measures:     result.Selection.Measures,
		Observations: dto.ToListObservationResponse(page),
		NextToken:    next,
	})
}

// getSummary godoc
// @Summary Summarize a selection
// @Description Returns the most recent, minimum and maximum rate of the selection
// @Tags observations
// @Produce  json
// @Param   currency query string false "Currency (defaults to the US dollar series)"
// @Param   measure  query []string false "Measurement basis, repeatable" collectionFormat(multi)
// @Param   from     query string false "First month (YYYY/MM)"
// @Param   to       query string false "Last month (YYYY/MM)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "No data for the selection"
// @Failure 503 {object} map[string]string "Dataset unavailable"
// @Router /summary [get]
func (h *observationHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	_, sel, err := bindSelection(c)
	if err != nil {
		h.respondError(c, logger, err, "summarizing selection")
		return
	}

	result, err := h.selection.Select(c.Request.Context(), sel)
	if err != nil {
		h.respondError(c, logger, err, "summarizing selection")
		return
	}

	summary, err := h.selection.Summarize(c.Request.Context(), result.Observations)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptySelection) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgEmptySelection})
			return
		}
		h.respondError(c, logger, err, "summarizing selection")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(result.Selection, summary))
}

// getDatasetStats godoc
// @Summary Dataset load statistics
// @Description Returns how many cells were kept or dropped while reshaping the source table
// @Tags observations
// @Produce  json
// @Success 200 {object} domain.ReshapeStats
// @Failure 503 {object} map[string]string "Dataset unavailable"
// @Router /dataset/stats [get]
func (h *observationHandler) getDatasetStats(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	stats, err := h.dataset.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err, "reading dataset stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
