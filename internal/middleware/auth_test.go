package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"council-portal-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(m *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(m))
	r.GET("/protected", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextUsername)) })
	return r
}

func testManager() *auth.Manager {
	return auth.NewManager(auth.Config{Secret: "test-secret", Issuer: "council-portal-api", Audience: "council-portal-admin"})
}

func TestJWTAuthMiddleware_Success(t *testing.T) {
	m := testManager()
	r := newProtectedRouter(m)

	token, err := m.GenerateToken("admin", "editor")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "editor", w.Body.String())
}

func TestJWTAuthMiddleware_QueryToken(t *testing.T) {
	m := testManager()
	r := newProtectedRouter(m)

	token, err := m.GenerateToken("admin", "editor")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := newProtectedRouter(testManager())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	r := newProtectedRouter(testManager())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
