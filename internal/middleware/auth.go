package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// RequireAuth rejects requests whose session holds no token
func RequireAuth(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scoped, ok := CurrentSession(c)
		if !ok {
			utils.RedirectResponse(c, http.StatusUnauthorized, "Authentication required", apiclient.RootPath)
			c.Abort()
			return
		}

		token, err := scoped.Get(c.Request.Context(), apiclient.KeyToken)
		if err != nil {
			log.WithError(err).Error("Failed to read session token")
			utils.InternalServerErrorResponse(c, "Failed to read session", err)
			c.Abort()
			return
		}
		if apiclient.NormalizeToken(token) == "" {
			utils.RedirectResponse(c, http.StatusUnauthorized, "Authentication required", apiclient.RootPath)
			c.Abort()
			return
		}

		role, err := scoped.Get(c.Request.Context(), apiclient.KeyRole)
		if err != nil {
			log.WithError(err).Warn("Failed to read session role")
		}
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RequireRole allows only sessions whose role is one of roles. It must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ContextRoleKey)]; !ok {
			utils.ForbiddenResponse(c, "You do not have access to this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}
