package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"council-portal-api/internal/auth"
	"council-portal-api/internal/cache"
	"council-portal-api/internal/content"
	"council-portal-api/internal/database"
	"council-portal-api/internal/middleware"
	"council-portal-api/internal/realtime"
	"council-portal-api/internal/remote"
	"council-portal-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "correct horse battery"

type testEnv struct {
	router *gin.Engine
	h      *Handler
	auth   *auth.Manager
	hub    *realtime.Hub
	db     *gorm.DB
}

// newTestEnv wires handlers over an in-memory database. A provisioned
// database is migrated and seeded; an unprovisioned one has no tables.
func newTestEnv(t *testing.T, provisioned bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var db *gorm.DB
	var err error
	if provisioned {
		db, err = testutil.NewInMemoryDB()
		require.NoError(t, err)
		_, err = database.Seed(db)
		require.NoError(t, err)
	} else {
		db, err = testutil.NewBareDB()
		require.NoError(t, err)
	}

	c := cache.New(cache.NewMemoryStore(cache.MemoryOptions{ConcurrencySafe: true}), cache.Options{})
	acc := content.New(remote.NewGormSource(db), c, content.Options{})
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	env := &testEnv{
		auth: auth.NewManager(auth.Config{Secret: "test-secret", Issuer: "council-portal-api", Audience: "council-portal-admin"}),
		hub:  realtime.NewHub(),
		db:   db,
	}
	env.h = New(Deps{
		Content: acc,
		Hub:     env.hub,
		Auth:    env.auth,
		Admin:   AdminAccount{Username: "editor", PasswordHash: hash},
	})

	r := gin.New()
	r.GET("/api/news", env.h.ListResource("news"))
	r.GET("/api/services", env.h.ListResource("services"))
	r.GET("/api/unknown", env.h.ListResource("unknown"))
	r.GET("/api/search", env.h.Search)
	r.POST("/api/feedback", env.h.SubmitFeedback)
	r.POST("/api/login", env.h.Login)
	admin := r.Group("/api/admin", middleware.JWTAuthMiddleware(env.auth))
	admin.GET("/suggestions", env.h.ListSuggestions)
	admin.POST("/news", env.h.PublishNews)
	admin.DELETE("/cache", env.h.ClearCache)
	env.router = r
	return env
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.auth.GenerateToken("admin", "editor")
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestWriteError_RemoteKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(Deps{})
	cases := []struct {
		kind remote.Kind
		code int
	}{
		{remote.KindNotProvisioned, http.StatusServiceUnavailable},
		{remote.KindTimeout, http.StatusGatewayTimeout},
		{remote.KindUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.writeError(c, &remote.Error{Op: "fetch", Resource: "news", Kind: tc.kind, Err: testutil.ErrDown})
		require.Equal(t, tc.code, w.Code, tc.kind.String())
	}
}

func TestWriteError_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(Deps{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.writeError(c, &content.ValidationError{Resource: "news", Fields: []content.FieldError{{Field: "title", Message: "is required"}}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Fields []content.FieldError `json:"fields"`
	}](t, w)
	require.Equal(t, "title", body.Fields[0].Field)
}
