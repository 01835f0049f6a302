package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	"github.com/retailpulse/bi_backend/internal/core/domain"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/dto"
	"github.com/retailpulse/bi_backend/internal/middleware"
)

// dashboardHandler handles the fixed dashboard reads.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// RegisterDashboardRoutes registers the dashboard read routes. The static
// top-customers route coexists with the :kind parameter route.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/top-customers", h.getTopCustomers)
		dashboard.GET("/:kind", h.getDashboardRows)
	}
}

// optionalIntQuery parses an optional integer query parameter, reporting
// whether the value was malformed.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// getDashboardRows godoc
// @Summary Monthly table read for one fact kind
// @Description Returns all fact rows of the kind, optionally filtered to a reporting period
// @Tags dashboard
// @Produce json
// @Param kind path string true "Fact kind" Enums(sales, profit, stock)
// @Param month query int false "Reporting month (1-12)"
// @Param year query int false "Reporting year"
// @Success 200 {object} dto.SalesDashboardResponse
// @Failure 400 {object} map[string]string "Unknown kind or bad filter"
// @Failure 500 {object} map[string]string "Failed to read facts"
// @Router /dashboard/{kind} [get]
func (h *dashboardHandler) getDashboardRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := c.Param("kind")

	month, ok := optionalIntQuery(c, "month")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}
	year, ok := optionalIntQuery(c, "year")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	filter := domain.PeriodFilter{Month: month, Year: year}

	logger = logger.With(slog.String("kind", kind))
	logger.Info("Received dashboard read request")

	var payload any
	var err error
	switch domain.ReportKind(kind) {
	case domain.ReportSales:
		var facts []domain.SalesFact
		facts, err = h.dashboardService.ListSales(c.Request.Context(), filter)
		payload = dto.ToSalesDashboardResponse(facts)
	case domain.ReportProfit:
		var facts []domain.ProfitMarginFact
		facts, err = h.dashboardService.ListProfit(c.Request.Context(), filter)
		payload = dto.ToProfitDashboardResponse(facts)
	case domain.ReportStock:
		var facts []domain.StockAgeingFact
		facts, err = h.dashboardService.ListStock(c.Request.Context(), filter)
		payload = dto.ToStockDashboardResponse(facts)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown kind. Use sales | profit | stock"})
		return
	}

	if err != nil {
		logger.Error("Failed to read dashboard rows", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read dashboard rows"})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// getTopCustomers godoc
// @Summary Top customers by gross value for one reporting period
// @Tags dashboard
// @Produce json
// @Param month query int true "Reporting month (1-12)"
// @Param year query int true "Reporting year"
// @Success 200 {object} dto.TopCustomersResponse
// @Failure 400 {object} map[string]string "Missing or malformed month/year"
// @Failure 500 {object} map[string]string "Failed to rank customers"
// @Router /dashboard/top-customers [get]
func (h *dashboardHandler) getTopCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, ok := optionalIntQuery(c, "month")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}
	year, ok := optionalIntQuery(c, "year")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	ranking, err := h.dashboardService.TopCustomers(c.Request.Context(), month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Top customers request missing period", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month and year are required"})
		} else {
			logger.Error("Failed to rank top customers", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank top customers"})
		}
		return
	}

	logger.Info("Top customers ranked", slog.Int("entries", len(ranking)))
	c.JSON(http.StatusOK, dto.ToTopCustomersResponse(ranking))
}
