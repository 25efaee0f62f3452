package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_counter/internal/apperrors"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/handlers"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, clientID, clientSecret string) (string, time.Time, error) {
	args := m.Called(ctx, clientID, clientSecret)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTokenService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockTokenService)

	rateLimiter, err := middleware.NewLimiter("2-M")
	suite.Require().NoError(err)

	auth := suite.router.Group("/auth", middleware.RateLimit(rateLimiter))
	handlers.RegisterAuthRoutes(auth, suite.mockService)
}

func (suite *AuthHandlerTestSuite) requestToken(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestIssueToken_Success() {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockService.On("IssueToken", mock.Anything, "client", "secret").Return("signed.jwt.token", expiresAt, nil).Once()

	w := suite.requestToken(dto.TokenRequest{ClientID: "client", ClientSecret: "secret"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-RateLimit-Limit"))
	var resp dto.TokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestIssueToken_BadCredentials() {
	suite.mockService.On("IssueToken", mock.Anything, "client", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := suite.requestToken(dto.TokenRequest{ClientID: "client", ClientSecret: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestIssueToken_MissingFields() {
	w := suite.requestToken(map[string]string{"clientID": "client"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IssueToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestIssueToken_RateLimited() {
	suite.mockService.On("IssueToken", mock.Anything, "client", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Twice()

	for i := 0; i < 2; i++ {
		suite.requestToken(dto.TokenRequest{ClientID: "client", ClientSecret: "wrong"})
	}
	w := suite.requestToken(dto.TokenRequest{ClientID: "client", ClientSecret: "wrong"})

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
