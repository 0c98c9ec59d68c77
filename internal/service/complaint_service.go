package service

import (
	"context"
	"strings"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// ComplaintInput is the create/replace payload of a complaint
type ComplaintInput struct {
	SocietyID   uint   `json:"societyId" form:"societyId" binding:"required" example:"1"`
	ResidentID  uint   `json:"residentId" form:"residentId" binding:"required" example:"12"`
	Title       string `json:"title" form:"title" binding:"required,min=5,max=150" example:"Lift not working"`
	Description string `json:"description" form:"description" binding:"required,min=10,max=2000" example:"Lift B stops between floors 3 and 4"`
	Type        string `json:"type" form:"type" binding:"required,oneof=maintenance security noise cleanliness other" example:"maintenance"`
	Priority    string `json:"priority" form:"priority" binding:"required,oneof=low medium high urgent" example:"high"`
	Status      string `json:"status,omitempty" form:"status" binding:"omitempty,oneof=open in_progress resolved closed rejected" example:"open"`
	AssignedTo  *uint  `json:"assignedTo,omitempty" form:"assignedTo" example:"4"`
}

// ComplaintService defines the complaint operations of the panel
type ComplaintService interface {
	ResourceService[models.Complaint, ComplaintInput]
	UpdateStatus(ctx context.Context, id uint, status, remarks string) (*models.Complaint, error)
}

type complaintService struct {
	*resourceService[models.Complaint, ComplaintInput]
	complaintRepo repository.ComplaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(repo repository.ComplaintRepository, logger *logger.Logger) ComplaintService {
	return &complaintService{
		resourceService: &resourceService[models.Complaint, ComplaintInput]{
			name:          "complaint",
			repo:          repo,
			validatePatch: validateComplaintPatch,
			logger:        logger,
		},
		complaintRepo: repo,
	}
}

// UpdateStatus moves a complaint to status. Rejecting requires remarks.
func (s *complaintService) UpdateStatus(ctx context.Context, id uint, status, remarks string) (*models.Complaint, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.IsValidComplaintStatus(status) {
		return nil, newValidationError("status", "must be one of %s", strings.Join(models.ComplaintStatuses, ", "))
	}
	remarks = strings.TrimSpace(remarks)
	if status == models.ComplaintStatusRejected && remarks == "" {
		return nil, newValidationError("remarks", "are required when rejecting a complaint")
	}

	complaint, err := s.complaintRepo.UpdateStatus(ctx, id, status, remarks)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{"id": id, "status": status}).Error("Failed to update complaint status")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{"id": id, "status": status}).Info("Complaint status updated successfully")
	return complaint, nil
}

func validateComplaintPatch(fields map[string]interface{}) error {
	status, ok, err := patchString(fields, "status")
	if err != nil || !ok {
		return err
	}
	status = strings.ToLower(status)
	if !models.IsValidComplaintStatus(status) {
		return newValidationError("status", "must be one of %s", strings.Join(models.ComplaintStatuses, ", "))
	}
	fields["status"] = status
	if status == models.ComplaintStatusRejected {
		remarks, _, err := patchString(fields, "remarks")
		if err != nil {
			return err
		}
		if remarks == "" {
			return newValidationError("remarks", "are required when rejecting a complaint")
		}
	}
	return nil
}
