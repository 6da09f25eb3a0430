package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboards.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/monthly", h.monthlyEvolution)
		reports.GET("/categories", h.categoryBreakdown)
		reports.GET("/personal-inflation", h.personalInflation)
		reports.GET("/portfolio", h.portfolio)
		reports.GET("/balances", h.consolidatedBalances)
	}
}

// anchorFromQuery parses the optional ?month=YYYY-MM query, defaulting to now.
func anchorFromQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	anchor, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, false
	}
	return anchor, true
}

// summary godoc
// @Summary Dashboard summary
// @Description The anchor month's income, expense and savings normalized to
// the reporting currency, plus the rates they were computed with.
// @Tags reports
// @Produce json
// @Param month query string false "Anchor month (YYYY-MM), defaults to current"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	anchor, ok := anchorFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month, expected YYYY-MM"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID, anchor)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// monthlyEvolution godoc
// @Summary Monthly evolution
// @Description Income, expense and savings per month over the lookback
// window ending at the anchor month.
// @Tags reports
// @Produce json
// @Param months query int false "Lookback window in months" default(6)
// @Param month query string false "Anchor month (YYYY-MM), defaults to current"
// @Success 200 {array} finance.MonthlySummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyEvolution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	anchor, ok := anchorFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month, expected YYYY-MM"})
		return
	}

	lookback := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid months value"})
			return
		}
		lookback = parsed
	}

	summaries, err := h.reportingService.MonthlyEvolution(c.Request.Context(), userID, lookback, anchor)
	if err != nil {
		logger.Error("Failed to compute monthly evolution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute monthly evolution"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// categoryBreakdown godoc
// @Summary Expense category breakdown
// @Description Normalized expense totals per category, largest first.
// @Tags reports
// @Produce json
// @Success 200 {array} finance.CategoryTotal
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	totals, err := h.reportingService.CategoryBreakdown(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// personalInflation godoc
// @Summary Personal inflation
// @Description Month-over-month change of the user's own spending, most
// recent period first.
// @Tags reports
// @Produce json
// @Success 200 {array} finance.InflationPoint
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/personal-inflation [get]
func (h *reportingHandler) personalInflation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	points, err := h.reportingService.PersonalInflation(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute personal inflation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute personal inflation"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// portfolio godoc
// @Summary Portfolio valuation
// @Description Values the active holdings with live quotes; manually entered
// prices take precedence.
// @Tags reports
// @Produce json
// @Success 200 {object} finance.PortfolioSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/portfolio [get]
func (h *reportingHandler) portfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	portfolio, err := h.reportingService.Portfolio(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to value portfolio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to value portfolio"})
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// consolidatedBalances godoc
// @Summary Consolidated balances
// @Description The user's positions valued in the reporting currency,
// largest first, with USD rows revalued at the current rate.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.ConsolidatedBalance
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) consolidatedBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.reportingService.ConsolidatedBalances(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load consolidated balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load consolidated balances"})
		return
	}

	c.JSON(http.StatusOK, balances)
}
