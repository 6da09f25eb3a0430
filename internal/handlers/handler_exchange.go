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

// exchangeHandler handles HTTP requests for currency exchanges.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

// registerExchangeRoutes registers the currency exchange routes.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	exchanges := rg.Group("/exchanges")
	{
		exchanges.GET("", h.listExchanges)
		exchanges.POST("", h.createExchange)
	}
}

// listExchanges godoc
// @Summary List currency exchanges
// @Description Retrieves the user's currency exchanges, newest first.
// @Tags exchanges
// @Produce json
// @Success 200 {array} dto.ExchangeResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges [get]
func (h *exchangeHandler) listExchanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	exchanges, err := h.exchangeService.ListExchanges(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list exchanges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve exchanges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeResponse(exchanges))
}

// createExchange godoc
// @Summary Create currency exchange
// @Description Records a conversion between currencies. The destination
// amount is derived server-side from the rate.
// @Tags exchanges
// @Accept json
// @Produce json
// @Param exchange body dto.CreateExchangeRequest true "Exchange details"
// @Success 201 {object} dto.ExchangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges [post]
func (h *exchangeHandler) createExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	exchange, err := h.exchangeService.CreateExchange(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create exchange"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeResponse(exchange))
}
