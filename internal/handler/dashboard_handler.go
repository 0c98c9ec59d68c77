package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetSummary handles GET /api/v1/dashboard/summary
// @Summary Get dashboard summary
// @Description Get the headline counters of the panel. If societyId is 0 or not provided, the counters cover all societies.
// @Tags dashboard
// @Produce json
// @Param societyId query int false "Limit the counters to one society"
// @Success 200 {object} utils.APIResponse{data=service.DashboardSummary} "Successfully retrieved dashboard summary"
// @Failure 400 {object} utils.APIResponse "Bad request - invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	var societyID uint
	if raw := c.Query("societyId"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.logger.WithError(err).WithField("societyId", raw).Error("Invalid societyId parameter format")
			utils.BadRequestResponse(c, "Invalid societyId parameter format", err)
			return
		}
		societyID = uint(value)
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), societyID)
	if err != nil {
		respondError(c, err, "Failed to get dashboard summary")
		return
	}

	utils.SuccessResponse(c, "Successfully retrieved dashboard summary", summary)
}
