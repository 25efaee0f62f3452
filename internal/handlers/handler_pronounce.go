package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pronounceHandler handles HTTP requests that spell amounts and counts.
type pronounceHandler struct {
	pronunciationService portssvc.PronunciationSvc
}

// RegisterPronounceRoutes registers the /pronounce routes.
func RegisterPronounceRoutes(rg *gin.RouterGroup, pronunciationService portssvc.PronunciationSvc) {
	h := &pronounceHandler{pronunciationService: pronunciationService}

	pronounce := rg.Group("/pronounce")
	{
		pronounce.POST("/money", h.spellMoney)
		pronounce.POST("/count", h.spellCount)
	}
}

// spellMoney godoc
// @Summary Spell an amount of rubles
// @Description Renders an amount in digits and in Russian words, e.g. "два рубля двадцать две копейки".
// @Tags pronounce
// @Accept json
// @Produce json
// @Param amount body dto.SpellMoneyRequest true "Amount with at most two fractional digits"
// @Success 200 {object} dto.MoneyReadingResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Amount too large to spell"
// @Security BearerAuth
// @Router /api/v1/pronounce/money [post]
func (h *pronounceHandler) spellMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SpellMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SpellMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reading, err := h.pronunciationService.SpellMoney(c.Request.Context(), req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to spell amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToMoneyReadingResponse(reading))
}

// spellCount godoc
// @Summary Spell a count
// @Description Renders a non-negative integer with the noun "единица", e.g. "двадцать одна единица".
// @Tags pronounce
// @Accept json
// @Produce json
// @Param value body dto.SpellCountRequest true "Count"
// @Success 200 {object} dto.CountReadingResponse
// @Failure 400 {object} ErrorResponse "Invalid count"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/pronounce/count [post]
func (h *pronounceHandler) spellCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SpellCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SpellCount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reading, err := h.pronunciationService.SpellCount(c.Request.Context(), req.Value)
	if err != nil {
		respondWithError(c, logger, err, "Failed to spell count")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountReadingResponse(reading))
}
