package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alert-srv/config"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.OrganizationID)
	})...)
	return r
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := scope.New(testSecret).CreateToken(scope.Payload{UserID: "u1", OrganizationID: "org-1", Role: role})
	require.NoError(t, err)
	return tok
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), scope.New(testSecret), config.CookieConfig{Name: "auth"})
	r := newRouter(t, mw.Auth())

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{name: "no token", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "bad token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, status: http.StatusUnauthorized},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token(t, model.RoleViewer)) }, status: http.StatusOK},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "auth", Value: token(t, model.RoleViewer)}) }, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "org-1", w.Body.String())
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	mw := New(log.NewNop(), scope.New(testSecret), config.CookieConfig{})
	r := newRouter(t, mw.Auth(), mw.AdminOnly())

	for role, want := range map[string]int{
		model.RoleAdmin:      http.StatusOK,
		model.RoleTechnician: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		status      int
		allowOrigin string
		credentials string
	}{
		{name: "wildcard", origins: nil, method: http.MethodGet, origin: "https://a.example", status: http.StatusOK, allowOrigin: "https://a.example"},
		{name: "explicit origin", origins: []string{"https://app.example"}, method: http.MethodGet, origin: "https://app.example", status: http.StatusOK, allowOrigin: "https://app.example", credentials: "true"},
		{name: "subdomain", origins: []string{"*.example.com"}, method: http.MethodGet, origin: "https://ops.example.com", status: http.StatusOK, allowOrigin: "https://ops.example.com", credentials: "true"},
		{name: "unknown origin", origins: []string{"https://app.example"}, method: http.MethodGet, origin: "https://evil.example", status: http.StatusOK, credentials: "true"},
		{name: "preflight", origins: []string{"https://app.example"}, method: http.MethodOptions, origin: "https://app.example", status: http.StatusNoContent, allowOrigin: "https://app.example", credentials: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(NewCORSConfig(tt.origins)))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.allowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.credentials, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
