package service

import (
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/internal/validation"
	"society-admin-svc/pkg/logger"
)

// AmenityInput is the create/replace payload of an amenity
type AmenityInput struct {
	SocietyID       uint    `json:"societyId" form:"societyId" binding:"required" example:"1"`
	Name            string  `json:"name" form:"name" binding:"required,min=2,max=100" example:"Clubhouse"`
	Description     string  `json:"description,omitempty" form:"description" binding:"omitempty,max=1000" example:"Air-conditioned hall for 80 guests"`
	Capacity        int     `json:"capacity" form:"capacity" binding:"omitempty,min=1,max=10000" example:"80"`
	OpenTime        string  `json:"openTime" form:"openTime" binding:"required,hhmm" example:"06:00"`
	CloseTime       string  `json:"closeTime" form:"closeTime" binding:"required,hhmm" example:"22:00"`
	RequiresPayment bool    `json:"requiresPayment" form:"requiresPayment" example:"true"`
	Fee             float64 `json:"fee" form:"fee" binding:"omitempty,min=0" example:"1500"`
	IsActive        *bool   `json:"isActive,omitempty" form:"isActive" example:"true"`
}

// AmenityService defines the amenity operations of the panel
type AmenityService interface {
	ResourceService[models.Amenity, AmenityInput]
}

// NewAmenityService creates a new amenity service
func NewAmenityService(repo repository.AmenityRepository, logger *logger.Logger) AmenityService {
	return &resourceService[models.Amenity, AmenityInput]{
		name:          "amenity",
		repo:          repo,
		validate:      validateAmenity,
		validatePatch: validateAmenityPatch,
		logger:        logger,
	}
}

// validateAmenity requires a fee for paid amenities. The API generates the
// payment QR code from it.
func validateAmenity(input *AmenityInput) error {
	if input.RequiresPayment && input.Fee <= 0 {
		return newValidationError("fee", "must be greater than zero when payment is required")
	}
	if !input.RequiresPayment && input.Fee > 0 {
		return newValidationError("fee", "must be zero when payment is not required")
	}
	// HH:MM strings compare in clock order
	if input.OpenTime >= input.CloseTime {
		return newValidationError("closeTime", "must be after openTime")
	}
	return nil
}

// validateAmenityPatch applies the amenity rules to the fields present in a patch.
// Pairs are only compared when both halves are sent.
func validateAmenityPatch(fields map[string]interface{}) error {
	fee, hasFee, err := patchNumber(fields, "fee")
	if err != nil {
		return err
	}
	if hasFee && fee < 0 {
		return newValidationError("fee", "must not be negative")
	}
	requiresPayment, hasRequires, err := patchBool(fields, "requiresPayment")
	if err != nil {
		return err
	}
	if hasFee && hasRequires {
		if requiresPayment && fee <= 0 {
			return newValidationError("fee", "must be greater than zero when payment is required")
		}
		if !requiresPayment && fee > 0 {
			return newValidationError("fee", "must be zero when payment is not required")
		}
	}

	openTime, hasOpen, err := patchString(fields, "openTime")
	if err != nil {
		return err
	}
	if hasOpen && !validation.IsHHMM(openTime) {
		return newValidationError("openTime", "must be a time in HH:MM format")
	}
	closeTime, hasClose, err := patchString(fields, "closeTime")
	if err != nil {
		return err
	}
	if hasClose && !validation.IsHHMM(closeTime) {
		return newValidationError("closeTime", "must be a time in HH:MM format")
	}
	if hasOpen && hasClose && openTime >= closeTime {
		return newValidationError("closeTime", "must be after openTime")
	}
	return nil
}
