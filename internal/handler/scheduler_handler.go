package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/scheduler"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// DefaultRunLimit is the number of scheduler log rows returned when limit is not set
const DefaultRunLimit = 20

// SchedulerRuns reads the run history of the session purge job
type SchedulerRuns interface {
	RecentRuns(limit int) ([]models.SchedulerLog, error)
}

// SchedulerHandler exposes the scheduler run history
type SchedulerHandler struct {
	runs   SchedulerRuns
	logger *logger.Logger
}

// NewSchedulerHandler creates a new scheduler handler. runs may be nil.
func NewSchedulerHandler(runs SchedulerRuns, logger *logger.Logger) *SchedulerHandler {
	return &SchedulerHandler{
		runs:   runs,
		logger: logger,
	}
}

// GetRuns handles GET /api/v1/scheduler/runs
// @Summary Session purge runs
// @Description Returns the newest scheduler_logs rows of the session purge job, newest first. Only available with SESSION_DRIVER=postgres.
// @Tags scheduler
// @Produce json
// @Param limit query int false "Number of rows" default(20)
// @Success 200 {object} utils.APIResponse{data=[]models.SchedulerLog} "Scheduler runs"
// @Failure 400 {object} utils.APIResponse "Invalid limit"
// @Failure 404 {object} utils.APIResponse "Scheduler runs are not recorded"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/scheduler/runs [get]
func (h *SchedulerHandler) GetRuns(c *gin.Context) {
	limit := DefaultRunLimit
	if raw := c.Query("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			utils.BadRequestResponse(c, "Invalid limit parameter", err)
			return
		}
		if value > utils.MaxLimit {
			value = utils.MaxLimit
		}
		limit = value
	}

	if h.runs == nil {
		utils.NotFoundResponse(c, scheduler.ErrNoRunLog.Error())
		return
	}

	runs, err := h.runs.RecentRuns(limit)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoRunLog) {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to read scheduler runs")
		utils.InternalServerErrorResponse(c, "Failed to read scheduler runs", err)
		return
	}

	utils.SuccessResponse(c, "Scheduler runs retrieved successfully", runs)
}
