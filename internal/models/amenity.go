package models

import "time"

// Amenity is a bookable facility of a society. Paid amenities carry a fee and a
// payment QR code generated by the API.
type Amenity struct {
	ID              uint       `json:"id" example:"1"`
	SocietyID       uint       `json:"societyId" example:"1"`
	Name            string     `json:"name" example:"Clubhouse"`
	Description     string     `json:"description" example:"Air-conditioned hall for 80 guests"`
	Capacity        int        `json:"capacity" example:"80"`
	OpenTime        string     `json:"openTime" example:"06:00"`
	CloseTime       string     `json:"closeTime" example:"22:00"`
	RequiresPayment bool       `json:"requiresPayment" example:"true"`
	Fee             float64    `json:"fee" example:"1500"`
	QRCodeURL       string     `json:"qrCode,omitempty"`
	ImageURL        string     `json:"image,omitempty"`
	IsActive        *bool      `json:"isActive,omitempty" example:"true"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
