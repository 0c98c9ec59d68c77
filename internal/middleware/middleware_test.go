package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/config"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/session"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{CookieName: "sid", TTL: time.Hour}
}

func newTestRouter(store session.Store) (*gin.Engine, *Sessions) {
	log := logger.NewNopLogger()
	sessions := NewSessions(store, testSessionConfig(), log)

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.Use(sessions.Middleware())
	router.NoRoute(NoRouteHandler())
	return router, sessions
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "sid" {
			return cookie
		}
	}
	return nil
}

func TestSessions_IssuesCookie(t *testing.T) {
	router, _ := newTestRouter(session.NewMemoryStore())
	router.GET("/ping", func(c *gin.Context) {
		scoped, ok := CurrentSession(c)
		require.True(t, ok)
		c.String(http.StatusOK, scoped.SessionID())
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NoError(t, uuid.Validate(cookie.Value))
	assert.Equal(t, cookie.Value, w.Body.String())
	assert.True(t, cookie.HttpOnly)
}

func TestSessions_ReusesValidCookie(t *testing.T) {
	router, _ := newTestRouter(session.NewMemoryStore())
	router.GET("/ping", func(c *gin.Context) {
		scoped, _ := CurrentSession(c)
		c.String(http.StatusOK, scoped.SessionID())
	})

	sid := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, sid, w.Body.String())
	assert.Nil(t, sessionCookie(w), "no new cookie for a known session")
}

func TestSessions_NavigatorExpiresCookie(t *testing.T) {
	store := session.NewMemoryStore()
	router, _ := newTestRouter(store)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Forbidden"}`))
	}))
	defer upstream.Close()
	client := apiclient.New(apiclient.Config{BaseURL: upstream.URL})

	router.GET("/proxy", func(c *gin.Context) {
		_, err := client.Get(c.Request.Context(), "/societies", nil, nil)
		require.Error(t, err)
		target, ok := RedirectTarget(c)
		require.True(t, ok)
		utils.RedirectResponse(c, apiclient.StatusOf(err), "Forbidden", target)
	})

	sid := uuid.NewString()
	require.NoError(t, store.Set(context.Background(), sid, apiclient.KeyToken, "abc", time.Hour))
	require.NoError(t, store.Set(context.Background(), sid, apiclient.KeyRole, models.RoleAdmin, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/", w.Header().Get(utils.RedirectHeader))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)

	_, err := store.Get(context.Background(), sid, apiclient.KeyToken)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.Get(context.Background(), sid, apiclient.KeyRole)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRequireAuthAndRole(t *testing.T) {
	store := session.NewMemoryStore()
	router, _ := newTestRouter(store)
	log := logger.NewNopLogger()

	router.GET("/any", RequireAuth(log), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/admin", RequireAuth(log), RequireRole(models.RoleSuperAdmin, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	serve := func(path, sid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if sid != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := serve("/any", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/", w.Header().Get(utils.RedirectHeader))

	staff := uuid.NewString()
	require.NoError(t, store.Set(context.Background(), staff, apiclient.KeyToken, "t1", time.Hour))
	require.NoError(t, store.Set(context.Background(), staff, apiclient.KeyRole, models.RoleStaff, time.Hour))

	assert.Equal(t, http.StatusNoContent, serve("/any", staff).Code)
	assert.Equal(t, http.StatusForbidden, serve("/admin", staff).Code)

	admin := uuid.NewString()
	require.NoError(t, store.Set(context.Background(), admin, apiclient.KeyToken, `"t2"`, time.Hour))
	require.NoError(t, store.Set(context.Background(), admin, apiclient.KeyRole, models.RoleAdmin, time.Hour))

	assert.Equal(t, http.StatusNoContent, serve("/admin", admin).Code)
}

func TestErrorHandlers(t *testing.T) {
	router, _ := newTestRouter(session.NewMemoryStore())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
