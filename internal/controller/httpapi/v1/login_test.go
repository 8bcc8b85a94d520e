package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/apocaliss92/reolink-osd-sync/config"
	dto "github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
)

func initLoginTest(t *testing.T) (*gin.Engine, *LoginRoute) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Auth: config.Auth{
			AdminUsername: "admin",
			AdminPassword: "secret",
			JWTKey:        "test-key",
			JWTExpiration: time.Hour,
		},
	}

	login := NewLoginRoute(cfg)

	engine := gin.New()
	engine.POST("/api/v1/authorize", login.Login)

	protected := engine.Group("/api", login.JWTAuthMiddleware())
	protected.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine, login
}

func authorize(t *testing.T, engine *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestLoginIssuesUsableToken(t *testing.T) {
	t.Parallel()

	engine, _ := initLoginTest(t)

	w := authorize(t, engine, "admin", "secret")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	engine, _ := initLoginTest(t)

	w := authorize(t, engine, "admin", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsMissingOrBogusToken(t *testing.T) {
	t.Parallel()

	engine, _ := initLoginTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
