package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familykitchen/internal/domain"
	"familykitchen/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unauthorizedBody = `{"success":false,"error":{"code":"UNAUTHORIZED","message":"Unauthorized"}}`

type stubUsers map[int64]*domain.User

func (s stubUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *jwt.Service, users UserLoader, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{SessionAuth(tokens, users)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"is_guest": c.GetBool("is_guest"),
			"username": u.Username,
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuth_ValidCookie(t *testing.T) {
	tokens := jwt.New("test-secret-123", time.Hour)
	users := stubUsers{42: {ID: 42, Username: "you"}}
	token, err := tokens.GenerateToken(42, false)
	require.NoError(t, err)

	w := request(newProtectedRouter(tokens, users), token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"is_guest":false,"username":"you"}`, w.Body.String())
}

func TestSessionAuth_RejectionsShareOneShape(t *testing.T) {
	tokens := jwt.New("secret", time.Hour)
	users := stubUsers{1: {ID: 1, Username: "admin"}}

	forged, err := jwt.New("other-secret", time.Hour).GenerateToken(1, false)
	require.NoError(t, err)
	expired, err := jwt.New("secret", -time.Hour).GenerateToken(1, false)
	require.NoError(t, err)
	gone, err := tokens.GenerateToken(99, false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"no cookie", ""},
		{"garbage", "not-a-jwt"},
		{"wrong signature", forged},
		{"expired", expired},
		{"deleted user", gone},
	}

	router := newProtectedRouter(tokens, users)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(router, tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, unauthorizedBody, w.Body.String())
		})
	}
}

func TestRequireMember(t *testing.T) {
	tokens := jwt.New("secret", time.Hour)
	users := stubUsers{
		1: {ID: 1, Username: "admin"},
		2: {ID: 2, Username: "guest_1", IsGuest: true},
	}
	router := newProtectedRouter(tokens, users, RequireMember())

	member, _ := tokens.GenerateToken(1, false)
	guest, _ := tokens.GenerateToken(2, true)

	assert.Equal(t, http.StatusOK, request(router, member).Code)

	w := request(router, guest)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestCORS_AllowedOriginAndPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS("https://kitchen.example"))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://kitchen.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://kitchen.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorLogger())
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "kaboom")
}
