package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculationHandler handles HTTP requests related to calculations.
type calculationHandler struct {
	calculationService portssvc.CalculationSvcFacade
}

// RegisterCalculationRoutes registers routes related to calculations.
func RegisterCalculationRoutes(rg *gin.RouterGroup, calculationService portssvc.CalculationSvcFacade) {
	h := &calculationHandler{calculationService: calculationService}

	calculations := rg.Group("/calculations")
	{
		calculations.POST("", h.createCalculation)
		calculations.GET("", h.listCalculations)
		calculations.GET("/:calculationID", h.getCalculationByID)
	}
}

// createCalculation godoc
// @Summary Check a purchase against a budget
// @Description Computes price times count, the leftover budget and a summary, and stores the result.
// @Tags calculations
// @Accept json
// @Produce json
// @Param calculation body dto.CreateCalculationRequest true "Budget, price and count"
// @Success 201 {object} dto.CalculationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create calculation"
// @Security BearerAuth
// @Router /api/v1/calculations [post]
func (h *calculationHandler) createCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCalculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetSubjectFromContext(c)
	if !ok {
		logger.Error("Creator subject not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	calc, err := h.calculationService.CreateCalculation(c.Request.Context(), req, creatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create calculation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCalculationResponse(calc))
}

// getCalculationByID godoc
// @Summary Get a calculation
// @Description Retrieves one of the caller's calculations.
// @Tags calculations
// @Produce json
// @Param calculationID path string true "Calculation ID"
// @Success 200 {object} dto.CalculationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Calculation not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/calculations/{calculationID} [get]
func (h *calculationHandler) getCalculationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	calculationID := c.Param("calculationID")

	requesterID, ok := middleware.GetSubjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("calculation_id", calculationID))
	calc, err := h.calculationService.GetCalculationByID(c.Request.Context(), calculationID, requesterID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve calculation")
		return
	}
	c.JSON(http.StatusOK, dto.ToCalculationResponse(calc))
}

// listCalculations godoc
// @Summary List calculations
// @Description Lists the caller's calculations, newest first, with token-based pagination.
// @Tags calculations
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCalculationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/calculations [get]
func (h *calculationHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCalculationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requesterID, ok := middleware.GetSubjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.calculationService.ListCalculations(c.Request.Context(), requesterID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list calculations")
		return
	}
	c.JSON(http.StatusOK, resp)
}
