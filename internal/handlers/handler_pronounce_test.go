package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/core/domain"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/core/pronounce"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/handlers"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testIssuer    = "money-counter-test"
)

// generateTestToken creates a signed JWT for subject.
func generateTestToken(s *suite.Suite, subject string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// --- Mock PronunciationService ---
type MockPronunciationService struct {
	mock.Mock
}

func (m *MockPronunciationService) SpellMoney(ctx context.Context, amount string) (*domain.MoneyReading, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyReading), args.Error(1)
}

func (m *MockPronunciationService) SpellCount(ctx context.Context, value string) (*domain.CountReading, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountReading), args.Error(1)
}

var _ portssvc.PronunciationSvc = (*MockPronunciationService)(nil)

// --- Test Suite ---
type PronounceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPronunciationService
}

func (suite *PronounceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())

	suite.router = gin.New()
	suite.mockService = new(MockPronunciationService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret, testIssuer))
	handlers.RegisterPronounceRoutes(v1, suite.mockService)
}

func (suite *PronounceHandlerTestSuite) post(path string, body any, authorized bool) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(&suite.Suite, "client-1"))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PronounceHandlerTestSuite) TestSpellMoney_Success() {
	amount := domain.MustNewMoney(decimal.RequireFromString("2.22"))
	reading, err := domain.ReadMoney(amount)
	suite.Require().NoError(err)

	suite.mockService.On("SpellMoney", mock.Anything, "2.22").Return(&reading, nil).Once()

	w := suite.post("/api/v1/pronounce/money", dto.SpellMoneyRequest{Amount: "2.22"}, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MoneyReadingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2.22", resp.Amount)
	suite.Equal("2 рубля 22 копейки", resp.Text)
	suite.Equal("два рубля двадцать две копейки", resp.Words)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PronounceHandlerTestSuite) TestSpellMoney_InvalidSyntax() {
	w := suite.post("/api/v1/pronounce/money", dto.SpellMoneyRequest{Amount: "12,5"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SpellMoney", mock.Anything, mock.Anything)
}

func (suite *PronounceHandlerTestSuite) TestSpellMoney_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"negative amount", domain.ErrNegativeAmount, http.StatusBadRequest},
		{"too large", fmt.Errorf("%w: %w", apperrors.ErrUnprocessable, pronounce.ErrUnsupportedMagnitude), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockService.On("SpellMoney", mock.Anything, "1").Return(nil, tc.err).Once()

			w := suite.post("/api/v1/pronounce/money", dto.SpellMoneyRequest{Amount: "1"}, true)

			suite.Equal(tc.status, w.Code)
			suite.mockService.AssertExpectations(suite.T())
		})
	}
}

func (suite *PronounceHandlerTestSuite) TestSpellMoney_Unauthorized() {
	w := suite.post("/api/v1/pronounce/money", dto.SpellMoneyRequest{Amount: "1"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SpellMoney", mock.Anything, mock.Anything)
}

func (suite *PronounceHandlerTestSuite) TestSpellCount_Success() {
	reading, err := domain.ReadCount(domain.CountFromUint64(21))
	suite.Require().NoError(err)

	suite.mockService.On("SpellCount", mock.Anything, "21").Return(&reading, nil).Once()

	w := suite.post("/api/v1/pronounce/count", dto.SpellCountRequest{Value: "21"}, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CountReadingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("21", resp.Value)
	suite.Equal("21 единица", resp.Text)
	suite.Equal("двадцать одна единица", resp.Words)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PronounceHandlerTestSuite) TestSpellCount_RejectsNonDigits() {
	w := suite.post("/api/v1/pronounce/count", dto.SpellCountRequest{Value: "-3"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SpellCount", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestPronounceHandler(t *testing.T) {
	suite.Run(t, new(PronounceHandlerTestSuite))
}
