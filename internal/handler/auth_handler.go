package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/middleware"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// AuthHandler handles the panel login session
type AuthHandler struct {
	authService service.AuthService
	sessions    *middleware.Sessions
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, sessions *middleware.Sessions, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in to the panel
// @Description Authenticates against the society API and stores the token in the panel session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=models.User} "Logged in"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, bindingMessage(err), err)
		return
	}

	storage, err := h.sessions.Renew(c)
	if err != nil {
		h.logger.WithError(err).Error("Failed to renew session on login")
		utils.InternalServerErrorResponse(c, "Session is not available", err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), storage, &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", user)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out of the panel
// @Description Clears the panel session and expires the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if storage, ok := middleware.CurrentSession(c); ok {
		if err := h.authService.Logout(c.Request.Context(), storage); err != nil {
			h.logger.WithError(err).Error("Failed to clear session on logout")
			utils.InternalServerErrorResponse(c, "Failed to log out", err)
			return
		}
	}

	h.sessions.ExpireCookie(c)
	utils.RedirectResponse(c, http.StatusOK, "Logged out successfully", apiclient.RootPath)
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Returns the logged-in user. With refresh=true the user is reloaded from the society API.
// @Tags auth
// @Produce json
// @Param refresh query bool false "Reload from the API"
// @Success 200 {object} utils.APIResponse{data=models.User} "Current user"
// @Failure 401 {object} utils.APIResponse "Authentication required"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	storage, ok := middleware.CurrentSession(c)
	if !ok {
		respondError(c, service.ErrNotAuthenticated, "")
		return
	}

	fetch := h.authService.CurrentUser
	if c.Query("refresh") == "true" {
		fetch = h.authService.Me
	}

	user, err := fetch(c.Request.Context(), storage)
	if err != nil {
		respondError(c, err, "Failed to get current user")
		return
	}

	utils.SuccessResponse(c, "Current user retrieved successfully", user)
}
