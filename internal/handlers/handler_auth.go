package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
}

// RegisterAuthRoutes sets up the routes for authentication.
func RegisterAuthRoutes(rg *gin.RouterGroup, tokenService portssvc.TokenSvcFacade) {
	h := &authHandler{tokenService: tokenService}
	rg.POST("/token", h.issueToken)
}

// issueToken godoc
// @Summary Issue an access token
// @Description Exchanges client credentials for a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Client credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for token request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	token, expiresAt, err := h.tokenService.IssueToken(c.Request.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		respondWithError(c, logger, err, "Failed to issue token")
		return
	}

	logger.Info("Token issued", slog.String("client_id", req.ClientID))
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
