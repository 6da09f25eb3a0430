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

// inflationHandler handles HTTP requests for user-recorded inflation entries.
type inflationHandler struct {
	inflationService portssvc.InflationSvcFacade
}

func newInflationHandler(is portssvc.InflationSvcFacade) *inflationHandler {
	return &inflationHandler{inflationService: is}
}

// registerInflationRoutes registers the inflation routes.
func registerInflationRoutes(rg *gin.RouterGroup, inflationService portssvc.InflationSvcFacade) {
	h := newInflationHandler(inflationService)

	inflation := rg.Group("/inflation")
	{
		inflation.GET("", h.listEntries)
		inflation.POST("", h.createEntry)
		inflation.PUT("/:id", h.updateEntry)
		inflation.DELETE("/:id", h.deleteEntry)
		inflation.GET("/totals", h.periodTotals)
	}
}

// listEntries godoc
// @Summary List inflation entries
// @Description Retrieves every recorded inflation entry, newest period first.
// @Tags inflation
// @Produce json
// @Success 200 {array} dto.InflationEntryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inflation [get]
func (h *inflationHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.inflationService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list inflation entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve inflation entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInflationEntryResponse(entries))
}

// createEntry godoc
// @Summary Create inflation entry
// @Description Records an inflation figure for one category in one month.
// @Tags inflation
// @Accept json
// @Produce json
// @Param entry body dto.CreateInflationEntryRequest true "Entry details"
// @Success 201 {object} dto.InflationEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry for this period and category exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inflation [post]
func (h *inflationHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateInflationEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.inflationService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An entry for this period and category already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create inflation entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create inflation entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInflationEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update inflation entry
// @Description Updates the recorded percentage or description of an entry.
// @Tags inflation
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateInflationEntryRequest true "Changes"
// @Success 200 {object} dto.InflationEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inflation/{id} [put]
func (h *inflationHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInflationEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.inflationService.UpdateEntry(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Inflation entry not found"})
		default:
			logger.Error("Failed to update inflation entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update inflation entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInflationEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete inflation entry
// @Description Removes an inflation entry permanently.
// @Tags inflation
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inflation/{id} [delete]
func (h *inflationHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.inflationService.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Inflation entry not found"})
			return
		}
		logger.Error("Failed to delete inflation entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete inflation entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// periodTotals godoc
// @Summary Monthly inflation totals
// @Description Sums the per-category percentages of each recorded month,
// newest first.
// @Tags inflation
// @Produce json
// @Success 200 {array} dto.InflationPeriodTotal
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /inflation/totals [get]
func (h *inflationHandler) periodTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	totals, err := h.inflationService.PeriodTotals(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute inflation totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute inflation totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}
