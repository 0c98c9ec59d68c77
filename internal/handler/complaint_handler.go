package handler

import (
	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// ComplaintHandler adds the workflow routes of complaints to the CRUD routes
type ComplaintHandler struct {
	*ResourceHandler[models.Complaint, service.ComplaintInput]
	complaintService service.ComplaintService
}

// UpdateStatusRequest is the body of a complaint status change
type UpdateStatusRequest struct {
	Status  string `json:"status" form:"status" binding:"required" example:"resolved"`
	Remarks string `json:"remarks" form:"remarks" binding:"max=1000" example:"Lift motor replaced"`
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService service.ComplaintService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		ResourceHandler:  NewResourceHandler[models.Complaint, service.ComplaintInput]("complaint", complaintService, logger, "images"),
		complaintService: complaintService,
	}
}

// Register mounts the CRUD and workflow routes on group
func (h *ComplaintHandler) Register(group *gin.RouterGroup) {
	h.ResourceHandler.Register(group)
	group.PATCH("/:id/status", h.UpdateStatus)
}

// UpdateStatus handles PATCH /api/v1/complaints/:id/status
// @Summary Change complaint status
// @Description Moves a complaint through open, in_progress, resolved, closed or rejected. Rejecting requires remarks.
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse{data=models.Complaint} "Status updated"
// @Failure 400 {object} utils.APIResponse "Invalid status"
// @Router /api/v1/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, bindingMessage(err), err)
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), id, req.Status, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to update complaint status")
		return
	}

	utils.SuccessResponse(c, "Complaint status updated successfully", complaint)
}
