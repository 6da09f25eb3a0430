package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/dto"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for portfolio holdings.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers the investment routes.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.POST("", h.createInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
		investments.POST("/sync-prices", h.syncPrices)
	}
}

// listInvestments godoc
// @Summary List active holdings
// @Description Retrieves the user's active investments, newest purchase first.
// @Tags investments
// @Produce json
// @Success 200 {array} dto.InvestmentResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentResponse(investments))
}

// createInvestment godoc
// @Summary Create holding
// @Description Records a new investment, tracked by quantity or by invested amount.
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Holding details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create investment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create investment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// updateInvestment godoc
// @Summary Update holding
// @Description Changes the holding's current price and/or notes.
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param investment body dto.UpdateInvestmentRequest true "Changes"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	investment, err := h.investmentService.UpdateInvestment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
		default:
			logger.Error("Failed to update investment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// deleteInvestment godoc
// @Summary Delete holding
// @Description Soft-deletes a holding; it disappears from every aggregation.
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
			return
		}
		logger.Error("Failed to delete investment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete investment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// syncPrices godoc
// @Summary Sync holding prices
// @Description Fetches live quotes for the distinct tickers of the user's
// active holdings and persists changed prices. Unpriceable tickers are
// reported, never fatal.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.SyncPricesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/sync-prices [post]
func (h *investmentHandler) syncPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.investmentService.SyncPrices(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to sync prices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sync prices"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
