package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/SscSPs/money_counter/internal/utils"
)

const (
	secret = "test-secret-key-that-is-long-enough"
	issuer = "money-counter-test"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(secret, issuer), func(c *gin.Context) {
		subject, ok := middleware.GetSubjectFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, subject)
	})
	return r
}

func get(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateJWT("client-1", secret, time.Hour, issuer)
	require.NoError(t, err)

	w := get(newRouter(t), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-1", w.Body.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, err := utils.GenerateJWT("client-1", secret, -time.Minute, issuer)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("client-1", secret, time.Hour, "someone-else")
	require.NoError(t, err)
	noSubject, err := utils.GenerateJWT("", secret, time.Hour, issuer)
	require.NoError(t, err)

	cases := []struct {
		name          string
		authorization string
		message       string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"garbage token", "Bearer not-a-jwt", "Invalid token"},
		{"expired", "Bearer " + expired, "Token has expired"},
		{"wrong issuer", "Bearer " + foreign, "Invalid token"},
		{"no subject", "Bearer " + noSubject, "Invalid token claims"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newRouter(t), tc.authorization)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.message+`"}`, w.Body.String())
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := middleware.NewLimiter("1-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/limited", middleware.RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots")

	assert.Error(t, err)
}
