package repository

import (
	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

// SocietyRepository defines the remote operations on societies
type SocietyRepository interface {
	RemoteResource[models.Society]
}

// NewSocietyRepository creates a new society repository
func NewSocietyRepository(client *apiclient.Client) SocietyRepository {
	return newRemoteResource[models.Society](client, SocietiesPath)
}

// NoticeRepository defines the remote operations on notices
type NoticeRepository interface {
	RemoteResource[models.Notice]
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(client *apiclient.Client) NoticeRepository {
	return newRemoteResource[models.Notice](client, NoticesPath)
}

// AmenityRepository defines the remote operations on amenities
type AmenityRepository interface {
	RemoteResource[models.Amenity]
}

// NewAmenityRepository creates a new amenity repository
func NewAmenityRepository(client *apiclient.Client) AmenityRepository {
	return newRemoteResource[models.Amenity](client, AmenitiesPath)
}
