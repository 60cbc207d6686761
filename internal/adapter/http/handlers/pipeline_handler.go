package handlers

import (
	"errors"
	"net/http"

	request "crm_pipeline/internal/adapter/http/dto/request"
	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/infrastructure/logging"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const paramOrganizationID = "organization_id"

var (
	errInvalidPipelineQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid pipeline query", http.StatusBadRequest)
)

// PipelineHandler serves the sales pipeline of an organization.
type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
	logger  *zap.Logger
}

func NewPipelineHandler(uc usecase.IPipelineUseCase, logger *zap.Logger) *PipelineHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineHandler{usecase: uc, logger: logger.Named("pipeline_handler")}
}

// GetItems returns the filtered and sorted pipeline with its forecast metrics
// @Summary List pipeline items
// @Description Quotes and invoices of the organization positioned in the sales funnel
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param q query string false "Case-insensitive search on customer name and document number"
// @Param stage query string false "Stage id or all" default(all)
// @Param sort query string false "customer, amount, stage, probability or date" default(date)
// @Param direction query string false "asc or desc" default(desc)
// @Param toggle query string false "Column header clicked, applied on top of sort and direction"
// @Success 200 {object} response.PipelineItemsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/items [get]
func (h *PipelineHandler) GetItems(c *gin.Context) {
	f, ok := h.filters(c)
	if !ok {
		return
	}
	items, err := h.usecase.GetPipelineItems(c.Request.Context(), c.Param(paramOrganizationID), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineItemsWithMetrics(items))
}

// GetMetrics returns the forecast totals of the filtered pipeline
// @Summary Forecast metrics
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param q query string false "Search text"
// @Param stage query string false "Stage id or all" default(all)
// @Success 200 {object} response.ForecastMetricsResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/metrics [get]
func (h *PipelineHandler) GetMetrics(c *gin.Context) {
	f, ok := h.filters(c)
	if !ok {
		return
	}
	m, err := h.usecase.GetForecastMetrics(c.Request.Context(), c.Param(paramOrganizationID), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromForecastMetrics(m))
}

// GetStageGroups returns the filtered pipeline keyed by stage
// @Summary Pipeline grouped by stage
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} map[string][]response.PipelineItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/stages [get]
func (h *PipelineHandler) GetStageGroups(c *gin.Context) {
	f, ok := h.filters(c)
	if !ok {
		return
	}
	groups, err := h.usecase.GetStageGroups(c.Request.Context(), c.Param(paramOrganizationID), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStageGroups(groups))
}

// GetKanban returns one column per stage in funnel order
// @Summary Kanban board
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} response.KanbanColumnResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/kanban [get]
func (h *PipelineHandler) GetKanban(c *gin.Context) {
	f, ok := h.filters(c)
	if !ok {
		return
	}
	cols, err := h.usecase.GetKanban(c.Request.Context(), c.Param(paramOrganizationID), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromKanbanColumns(cols))
}

// GetTable returns the sorted rows and the effective sort state
// @Summary Pipeline table
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param sort query string false "customer, amount, stage, probability or date" default(date)
// @Param direction query string false "asc or desc" default(desc)
// @Param toggle query string false "Column header clicked"
// @Success 200 {object} response.TableResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/table [get]
func (h *PipelineHandler) GetTable(c *gin.Context) {
	f, ok := h.filters(c)
	if !ok {
		return
	}
	rows, err := h.usecase.GetTable(c.Request.Context(), c.Param(paramOrganizationID), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTable(rows, f))
}

// GetSplit returns the master list and the resolved selection
// @Summary Split view
// @Description A selection filtered out of the list comes back as selected=null with selection_cleared=true
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param selected_type query string false "quote or invoice"
// @Param selected_id query string false "Document id"
// @Success 200 {object} response.SplitViewResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/split [get]
func (h *PipelineHandler) GetSplit(c *gin.Context) {
	var q request.SplitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return
	}
	f, err := q.ToFilters()
	if err != nil {
		h.badQuery(c, err)
		return
	}
	sel, err := q.ToSelection()
	if err != nil {
		h.badQuery(c, err)
		return
	}

	view, err := h.usecase.GetSplitView(c.Request.Context(), c.Param(paramOrganizationID), f, sel)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSplitView(view))
}

// GetView returns the projection named by the view parameter
// @Summary Pipeline view
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param view query string false "kanban, table or split" default(split)
// @Success 200 {object} object
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline [get]
func (h *PipelineHandler) GetView(c *gin.Context) {
	var q request.ViewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return
	}
	mode, err := q.ToViewMode()
	if err != nil {
		h.badQuery(c, err)
		return
	}

	switch mode {
	case pipeline.ViewModeKanban:
		h.GetKanban(c)
	case pipeline.ViewModeTable:
		h.GetTable(c)
	default:
		h.GetSplit(c)
	}
}

// GetStatus describes the collection currently held for the organization
// @Summary Pipeline status
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} response.PipelineStatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/status [get]
func (h *PipelineHandler) GetStatus(c *gin.Context) {
	st, err := h.usecase.Status(c.Request.Context(), c.Param(paramOrganizationID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPipelineStatus(st))
}

// Refresh refetches the three source collections
// @Summary Refresh pipeline
// @Description Data that could not be fetched keeps its last known value; the call then fails with 502
// @Tags pipeline
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} response.PipelineStatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /organizations/{organization_id}/pipeline/refresh [post]
func (h *PipelineHandler) Refresh(c *gin.Context) {
	orgID := c.Param(paramOrganizationID)
	if err := h.usecase.Refresh(c.Request.Context(), orgID); err != nil {
		h.fail(c, err)
		return
	}
	h.GetStatus(c)
}

func (h *PipelineHandler) filters(c *gin.Context) (pipeline.Filters, bool) {
	var q request.PipelineQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return pipeline.Filters{}, false
	}
	f, err := q.ToFilters()
	if err != nil {
		h.badQuery(c, err)
		return pipeline.Filters{}, false
	}
	return f, true
}

func (h *PipelineHandler) badQuery(c *gin.Context, err error) {
	h.logger.Debug("invalid pipeline query",
		zap.String("request_id", logging.RequestID(c)),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Error(err))
	c.JSON(errInvalidPipelineQuery.HTTPStatus, errInvalidPipelineQuery.ToHTTPError())
}

func (h *PipelineHandler) fail(c *gin.Context, err error) {
	appErr := mapPipelineError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("pipeline request failed",
			zap.String("request_id", logging.RequestID(c)),
			zap.String(paramOrganizationID, c.Param(paramOrganizationID)),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrganizationID):
		return pkg.NewDomainErrorSimple("INVALID_ORGANIZATION_ID", "Invalid organization id", http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrInvalidStageFilter),
		errors.Is(err, pipeline.ErrInvalidSortField),
		errors.Is(err, pipeline.ErrInvalidSortDirection),
		errors.Is(err, pipeline.ErrInvalidViewMode),
		errors.Is(err, request.ErrInvalidSelection),
		errors.Is(err, request.ErrInvalidItemType):
		return errInvalidPipelineQuery
	case errors.Is(err, usecase.ErrSourceUnavailable):
		return pkg.NewDomainError("SOURCE_UNAVAILABLE", "Pipeline data source unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
