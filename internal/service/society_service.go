package service

import (
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// SocietyInput is the create/replace payload of a society
type SocietyInput struct {
	Name               string `json:"name" form:"name" binding:"required,min=3,max=100" example:"Green Valley Residency"`
	RegistrationNumber string `json:"registrationNumber,omitempty" form:"registrationNumber" binding:"omitempty,max=50" example:"MH/PUN/HSG/2019/1021"`
	Type               string `json:"type" form:"type" binding:"required,oneof=residential commercial mixed" example:"residential"`
	Address            string `json:"address" form:"address" binding:"required,min=5,max=255" example:"12 Baner Road"`
	City               string `json:"city" form:"city" binding:"required,min=2,max=100" example:"Pune"`
	State              string `json:"state" form:"state" binding:"required,min=2,max=100" example:"Maharashtra"`
	Pincode            string `json:"pincode" form:"pincode" binding:"required,numeric,len=6" example:"411045"`
	ContactEmail       string `json:"contactEmail" form:"contactEmail" binding:"required,email" example:"office@greenvalley.in"`
	ContactPhone       string `json:"contactPhone" form:"contactPhone" binding:"required,phone" example:"9876543210"`
	TotalUnits         int    `json:"totalUnits" form:"totalUnits" binding:"required,min=1,max=100000" example:"240"`
	IsActive           *bool  `json:"isActive,omitempty" form:"isActive" example:"true"`
}

// SocietyService defines the society operations of the panel
type SocietyService interface {
	ResourceService[models.Society, SocietyInput]
}

// NewSocietyService creates a new society service
func NewSocietyService(repo repository.SocietyRepository, logger *logger.Logger) SocietyService {
	return &resourceService[models.Society, SocietyInput]{
		name:   "society",
		repo:   repo,
		logger: logger,
	}
}
