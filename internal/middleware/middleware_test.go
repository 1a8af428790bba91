package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(auth *Authenticator, expose bool) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), CORS("*"), ErrorResponder(zap.NewNop(), expose))

	whoami := func(c *gin.Context) {
		u, ok := UserFrom(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "id": u.ID, "email": u.Email})
	}
	r.GET("/optional", auth.OptionalAuth(), whoami)
	r.GET("/required", auth.RequireAuth(), whoami)
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("pq: connection refused")) })
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Tip not found")) })
	return r
}

func do(r http.Handler, method, path, token string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuth(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour, zap.NewNop())
	r := newRouter(auth, false)

	token, err := auth.SignToken(models.AuthUser{ID: "user-1", Email: "a@example.org"})
	require.NoError(t, err)

	expired, err := NewAuthenticator("test-secret", -time.Minute, zap.NewNop()).SignToken(models.AuthUser{ID: "user-1"})
	require.NoError(t, err)
	foreign, err := NewAuthenticator("other-secret", time.Hour, zap.NewNop()).SignToken(models.AuthUser{ID: "user-1"})
	require.NoError(t, err)

	t.Run("optional without token", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/optional", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("optional with invalid token proceeds", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/optional", foreign)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("optional with valid token", func(t *testing.T) {
		_, body := do(r, http.MethodGet, "/optional", token)
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, "user-1", body["id"])
		assert.Equal(t, "a@example.org", body["email"])
	})

	t.Run("required without token", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/required", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", body["error"])
	})

	t.Run("required with expired token", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/required", expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired token", body["error"])
	})

	t.Run("required with valid token", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/required", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", body["id"])
	})
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour, zap.NewNop())
	_, err := auth.ParseToken("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJpZCI6InUifQ.")
	assert.Error(t, err)
}

func TestErrorResponder(t *testing.T) {
	auth := NewAuthenticator("s", time.Hour, zap.NewNop())

	t.Run("classified error", func(t *testing.T) {
		w, body := do(newRouter(auth, true), http.MethodGet, "/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]any{"error": "Tip not found"}, body)
	})

	t.Run("internal error hides details in production", func(t *testing.T) {
		w, body := do(newRouter(auth, false), http.MethodGet, "/boom", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["error"])
		assert.NotContains(t, body, "message")
	})

	t.Run("internal error shows details in development", func(t *testing.T) {
		_, body := do(newRouter(auth, true), http.MethodGet, "/boom", "")
		assert.Equal(t, "pq: connection refused", body["message"])
	})
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(NewAuthenticator("s", time.Hour, zap.NewNop()), false)
	w, _ := do(r, http.MethodOptions, "/optional", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w, body := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
}
