package models

import "time"

// Complaint types
const (
	ComplaintTypeMaintenance = "maintenance"
	ComplaintTypeSecurity    = "security"
	ComplaintTypeNoise       = "noise"
	ComplaintTypeCleanliness = "cleanliness"
	ComplaintTypeOther       = "other"
)

// Complaint priorities
const (
	ComplaintPriorityLow    = "low"
	ComplaintPriorityMedium = "medium"
	ComplaintPriorityHigh   = "high"
	ComplaintPriorityUrgent = "urgent"
)

// Complaint statuses
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusClosed     = "closed"
	ComplaintStatusRejected   = "rejected"
)

// ComplaintStatuses lists every status the API accepts
var ComplaintStatuses = []string{
	ComplaintStatusOpen,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusClosed,
	ComplaintStatusRejected,
}

// Complaint is an issue filed by a resident
type Complaint struct {
	ID          uint       `json:"id" example:"1"`
	SocietyID   uint       `json:"societyId" example:"1"`
	ResidentID  uint       `json:"residentId" example:"12"`
	Title       string     `json:"title" example:"Lift not working"`
	Description string     `json:"description" example:"Lift B stops between floors 3 and 4"`
	Type        string     `json:"type" example:"maintenance"`
	Priority    string     `json:"priority" example:"high"`
	Status      string     `json:"status" example:"open"`
	AssignedTo  *uint      `json:"assignedTo,omitempty" example:"4"`
	Remarks     string     `json:"remarks,omitempty"`
	Images      []string   `json:"images,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// IsValidComplaintStatus reports whether status is one of ComplaintStatuses
func IsValidComplaintStatus(status string) bool {
	for _, s := range ComplaintStatuses {
		if s == status {
			return true
		}
	}
	return false
}
