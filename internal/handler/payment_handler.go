package handler

import (
	"github.com/gin-gonic/gin"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/service"
	"society-admin-svc/pkg/logger"
	"society-admin-svc/pkg/utils"
)

// PaymentHandler serves payment routes
type PaymentHandler struct {
	*ResourceHandler[models.Payment, service.PaymentInput]
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		ResourceHandler: NewResourceHandler[models.Payment, service.PaymentInput]("payment", paymentService, logger, "receipt"),
		paymentService:  paymentService,
	}
}

// ListBySociety handles GET /api/v1/societies/:id/payments
// @Summary List payments of a society
// @Tags payments
// @Produce json
// @Param id path int true "Society ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Payment} "Payments retrieved"
// @Router /api/v1/societies/{id}/payments [get]
func (h *PaymentHandler) ListBySociety(c *gin.Context) {
	societyID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid society ID", err)
		return
	}

	params := listParamsFromQuery(c)
	page, err := h.paymentService.ListBySociety(c.Request.Context(), societyID, params)
	if err != nil {
		respondError(c, err, "Failed to list society payments")
		return
	}

	utils.PaginatedSuccessResponse(c, "Society payments retrieved successfully", page.Items, params.Page, params.Limit, page.Pagination.Total)
}
