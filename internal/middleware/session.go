package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/config"
	"society-admin-svc/internal/session"
	"society-admin-svc/pkg/logger"
)

// Gin context keys
const (
	ContextSessionKey  = "session"
	ContextRedirectKey = "session_redirect"
	ContextRoleKey     = "role"
)

// Sessions attaches the panel session of the request cookie to every request
type Sessions struct {
	store  session.Store
	cfg    config.SessionConfig
	logger *logger.Logger
}

// NewSessions creates the session middleware provider
func NewSessions(store session.Store, cfg config.SessionConfig, logger *logger.Logger) *Sessions {
	return &Sessions{store: store, cfg: cfg, logger: logger}
}

// Middleware resolves or issues the session cookie and binds the session storage
// and navigator to the request context used by the API client.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(s.cfg.CookieName)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			s.writeCookie(c, sid, int(s.cfg.TTL.Seconds()))
		}

		s.bind(c, sid)
		c.Next()
	}
}

// Renew moves the request to a freshly issued session id and clears the keys of
// the previous one. Login calls it so that a session id chosen before
// authentication never carries a token.
func (s *Sessions) Renew(c *gin.Context) (*session.Scoped, error) {
	if previous, ok := CurrentSession(c); ok {
		if err := previous.Remove(c.Request.Context(), apiclient.SessionKeys...); err != nil {
			return nil, err
		}
	}

	scoped := s.bind(c, uuid.NewString())
	s.writeCookie(c, scoped.SessionID(), int(s.cfg.TTL.Seconds()))
	return scoped, nil
}

func (s *Sessions) bind(c *gin.Context, sid string) *session.Scoped {
	scoped := session.Bind(s.store, sid, s.cfg.TTL)
	navigator := apiclient.NavigatorFunc(func(_ context.Context, path string) {
		s.logger.WithField("redirect", path).Info("Session ended by the API")
		c.Set(ContextRedirectKey, path)
		s.writeCookie(c, "", -1)
	})

	c.Set(ContextSessionKey, scoped)
	c.Request = c.Request.WithContext(apiclient.WithSession(c.Request.Context(), scoped, navigator))
	return scoped
}

// ExpireCookie removes the session cookie from the browser
func (s *Sessions) ExpireCookie(c *gin.Context) {
	s.writeCookie(c, "", -1)
}

func (s *Sessions) writeCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.CookieName, value, maxAge, "/", "", s.cfg.Secure, true)
}

// CurrentSession returns the session bound by Sessions.Middleware
func CurrentSession(c *gin.Context) (*session.Scoped, bool) {
	value, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	scoped, ok := value.(*session.Scoped)
	return scoped, ok
}

// RedirectTarget returns where the API client asked the panel to navigate, if anywhere
func RedirectTarget(c *gin.Context) (string, bool) {
	target := c.GetString(ContextRedirectKey)
	return target, target != ""
}
