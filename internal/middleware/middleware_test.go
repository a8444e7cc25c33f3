package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/service"
	"github.com/wfunc/hexrealm/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

func newAuthEngine(t *testing.T) (*gin.Engine, *mocks.MockAuthService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(auth).RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		session, _ := GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "session_id": session})
	})
	return engine, auth
}

func TestRequireAuth(t *testing.T) {
	t.Run("缺少令牌", func(t *testing.T) {
		engine, _ := newAuthEngine(t)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "not provided")
	})

	t.Run("有效令牌", func(t *testing.T) {
		engine, auth := newAuthEngine(t)
		auth.EXPECT().ValidateToken(gomock.Any(), "good").
			Return(&service.TokenClaims{UserID: 7, Username: "alice", SessionID: "s-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7,"session_id":"s-1"}`, w.Body.String())
	})

	t.Run("X-Access-Token", func(t *testing.T) {
		engine, auth := newAuthEngine(t)
		auth.EXPECT().ValidateToken(gomock.Any(), "alt").
			Return(&service.TokenClaims{UserID: 3, SessionID: "s-3"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Access-Token", "alt")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("过期令牌", func(t *testing.T) {
		engine, auth := newAuthEngine(t)
		auth.EXPECT().ValidateToken(gomock.Any(), "old").
			Return(nil, errors.New(errors.ErrTokenExpired, "Token has expired"))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer old")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Token has expired"}`, w.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)
	auth.EXPECT().ValidateToken(gomock.Any(), "bad").
		Return(nil, errors.New(errors.ErrTokenInvalid, "Invalid token"))

	engine := gin.New()
	engine.GET("/", NewAuthMiddleware(auth).OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID(), Logger())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "client-id", w.Body.String())
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
