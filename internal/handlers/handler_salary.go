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

// salaryHandler handles HTTP requests for the fixed salary.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

func newSalaryHandler(ss portssvc.SalarySvcFacade) *salaryHandler {
	return &salaryHandler{salaryService: ss}
}

// registerSalaryRoutes registers the salary routes.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade) {
	h := newSalaryHandler(salaryService)

	salary := rg.Group("/salary")
	{
		salary.GET("", h.getActiveSalary)
		salary.GET("/history", h.getSalaryHistory)
		salary.PUT("", h.setSalary)
	}
}

// getActiveSalary godoc
// @Summary Get active salary
// @Description Retrieves the currently active fixed salary.
// @Tags salary
// @Produce json
// @Success 200 {object} dto.SalaryResponse
// @Failure 404 {object} ErrorResponse "No salary set yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /salary [get]
func (h *salaryHandler) getActiveSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	salary, err := h.salaryService.GetActiveSalary(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No salary set"})
			return
		}
		logger.Error("Failed to get active salary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve salary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}

// getSalaryHistory godoc
// @Summary Get salary history
// @Description Retrieves every salary record, newest first.
// @Tags salary
// @Produce json
// @Success 200 {array} dto.SalaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /salary/history [get]
func (h *salaryHandler) getSalaryHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	history, err := h.salaryService.GetSalaryHistory(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get salary history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve salary history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalaryResponse(history))
}

// setSalary godoc
// @Summary Set salary
// @Description Records a new fixed salary, deactivating the previous one.
// @Tags salary
// @Accept json
// @Produce json
// @Param salary body dto.SetSalaryRequest true "Salary details"
// @Success 200 {object} dto.SalaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /salary [put]
func (h *salaryHandler) setSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	salary, err := h.salaryService.SetSalary(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to set salary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set salary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryResponse(salary))
}
