package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_counter/internal/apperrors"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/platform/config"
	"github.com/SscSPs/money_counter/internal/utils"
)

// tokenService implements the TokenSvcFacade for the client-credentials flow.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// IssueToken checks the client credentials against the configured id and
// bcrypt hash and returns a signed access token.
func (s *tokenService) IssueToken(ctx context.Context, clientID, clientSecret string) (string, time.Time, error) {
	if s.cfg.ClientID == "" || s.cfg.ClientSecretHash == "" {
		s.LogInfo(ctx, "Token requested but no client credentials are configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(clientID), []byte(s.cfg.ClientID)) != 1 ||
		!utils.CheckSecretHash(clientSecret, s.cfg.ClientSecretHash) {
		s.LogInfo(ctx, "Rejected client credentials", slog.String("client_id", clientID))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(clientID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("client_id", clientID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}
