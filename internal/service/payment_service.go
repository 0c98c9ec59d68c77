package service

import (
	"context"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// PaymentInput is the create/replace payload of a payment
type PaymentInput struct {
	SocietyID      uint         `json:"societyId" form:"societyId" binding:"required" example:"1"`
	UserID         uint         `json:"userId" form:"userId" binding:"required" example:"12"`
	AmenityID      *uint        `json:"amenityId,omitempty" form:"amenityId" example:"3"`
	Amount         float64      `json:"amount" form:"amount" binding:"required" example:"2500"`
	Purpose        string       `json:"purpose" form:"purpose" binding:"required,min=3,max=150" example:"Maintenance October"`
	Method         string       `json:"method" form:"method" binding:"required,oneof=cash upi card bank_transfer cheque" example:"upi"`
	Status         string       `json:"status,omitempty" form:"status" binding:"omitempty,oneof=pending paid failed refunded" example:"pending"`
	TransactionRef string       `json:"transactionRef,omitempty" form:"transactionRef" binding:"omitempty,max=100" example:"UPI-2291827361"`
	DueDate        *models.Date `json:"dueDate,omitempty" form:"dueDate" swaggertype:"string" format:"date" example:"2026-10-01"`
}

// PaymentService defines the payment operations of the panel
type PaymentService interface {
	ResourceService[models.Payment, PaymentInput]
	ListBySociety(ctx context.Context, societyID uint, params models.ListParams) (*models.Page[models.Payment], error)
}

type paymentService struct {
	*resourceService[models.Payment, PaymentInput]
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repository.PaymentRepository, logger *logger.Logger) PaymentService {
	return &paymentService{
		resourceService: &resourceService[models.Payment, PaymentInput]{
			name:          "payment",
			repo:          repo,
			validate:      validatePayment,
			validatePatch: validatePaymentPatch,
			logger:        logger,
		},
		paymentRepo: repo,
	}
}

// ListBySociety lists the payments of one society
func (s *paymentService) ListBySociety(ctx context.Context, societyID uint, params models.ListParams) (*models.Page[models.Payment], error) {
	if societyID == 0 {
		return nil, ErrInvalidID
	}

	page, err := s.paymentRepo.ListBySociety(ctx, societyID, params)
	if err != nil {
		s.logger.WithError(err).WithField("society_id", societyID).Error("Failed to list society payments")
		return nil, err
	}
	return page, nil
}

func validatePayment(input *PaymentInput) error {
	if input.Amount <= 0 {
		return newValidationError("amount", "must be greater than zero")
	}
	return nil
}

func validatePaymentPatch(fields map[string]interface{}) error {
	raw, ok := fields["amount"]
	if !ok {
		return nil
	}
	amount, ok := raw.(float64)
	if !ok || amount <= 0 {
		return newValidationError("amount", "must be greater than zero")
	}
	return nil
}
