package models

import "time"

// Society types
const (
	SocietyTypeResidential = "residential"
	SocietyTypeCommercial  = "commercial"
	SocietyTypeMixed       = "mixed"
)

// Society is the primary tenant record managed by the panel
type Society struct {
	ID                 uint       `json:"id" example:"1"`
	Name               string     `json:"name" example:"Green Valley Residency"`
	RegistrationNumber string     `json:"registrationNumber" example:"MH/PUN/HSG/2019/1021"`
	Type               string     `json:"type" example:"residential"`
	Address            string     `json:"address" example:"12 Baner Road"`
	City               string     `json:"city" example:"Pune"`
	State              string     `json:"state" example:"Maharashtra"`
	Pincode            string     `json:"pincode" example:"411045"`
	ContactEmail       string     `json:"contactEmail" example:"office@greenvalley.in"`
	ContactPhone       string     `json:"contactPhone" example:"9876543210"`
	TotalUnits         int        `json:"totalUnits" example:"240"`
	ImageURL           string     `json:"image,omitempty"`
	IsActive           *bool      `json:"isActive,omitempty" example:"true"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}
