package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"society-admin-svc/internal/middleware"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
)

// Services groups the services the routes are served by
type Services struct {
	Auth      service.AuthService
	Dashboard service.DashboardService
	Society   service.SocietyService
	Notice    service.NoticeService
	Amenity   service.AmenityService
	Complaint service.ComplaintService
	Payment   service.PaymentService
	User      service.UserService
	// Scheduler is optional; without it /scheduler/runs answers 404
	Scheduler SchedulerRuns
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, services Services, sessions *middleware.Sessions, logger *logger.Logger) {
	RegisterValidators()
	router.MaxMultipartMemory = MaxUploadMemory

	// Initialize handlers
	authHandler := NewAuthHandler(services.Auth, sessions, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)
	societyHandler := NewResourceHandler[models.Society, service.SocietyInput]("society", services.Society, logger, "image")
	noticeHandler := NewResourceHandler[models.Notice, service.NoticeInput]("notice", services.Notice, logger, "attachment")
	amenityHandler := NewResourceHandler[models.Amenity, service.AmenityInput]("amenity", services.Amenity, logger, "image")
	complaintHandler := NewComplaintHandler(services.Complaint, logger)
	paymentHandler := NewPaymentHandler(services.Payment, logger)
	userHandler := NewResourceHandler[models.User, service.UserInput]("user", services.User, logger, "avatar")
	schedulerHandler := NewSchedulerHandler(services.Scheduler, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes work on the session cookie alone
		auth := v1.Group("/auth", sessions.Middleware())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		protected := v1.Group("", sessions.Middleware(), middleware.RequireAuth(logger))
		admin := middleware.RequireRole(models.RoleSuperAdmin, models.RoleAdmin)

		protected.GET("/dashboard/summary", dashboardHandler.GetSummary)

		// Society routes
		societies := protected.Group("/societies", admin)
		societyHandler.Register(societies)
		societies.GET("/:id/payments", paymentHandler.ListBySociety)

		noticeHandler.Register(protected.Group("/notices"))
		amenityHandler.Register(protected.Group("/amenities"))
		complaintHandler.Register(protected.Group("/complaints"))
		paymentHandler.Register(protected.Group("/payments"))

		// User routes
		userHandler.Register(protected.Group("/users", admin))

		protected.GET("/scheduler/runs", admin, schedulerHandler.GetRuns)
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Society Admin Service",
	})
}
