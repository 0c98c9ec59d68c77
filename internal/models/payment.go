package models

import "time"

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Payment methods
const (
	PaymentMethodCash   = "cash"
	PaymentMethodUPI    = "upi"
	PaymentMethodCard   = "card"
	PaymentMethodBank   = "bank_transfer"
	PaymentMethodCheque = "cheque"
)

// Payment is a maintenance or amenity payment made by a resident
type Payment struct {
	ID             uint       `json:"id" example:"1"`
	SocietyID      uint       `json:"societyId" example:"1"`
	UserID         uint       `json:"userId" example:"12"`
	AmenityID      *uint      `json:"amenityId,omitempty" example:"3"`
	Amount         float64    `json:"amount" example:"2500"`
	Purpose        string     `json:"purpose" example:"Maintenance October"`
	Method         string     `json:"method" example:"upi"`
	Status         string     `json:"status" example:"pending"`
	TransactionRef string     `json:"transactionRef,omitempty" example:"UPI-2291827361"`
	ReceiptURL     string     `json:"receipt,omitempty"`
	DueDate        *Date      `json:"dueDate,omitempty" swaggertype:"string" format:"date" example:"2026-10-01"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
