package repository

import (
	"context"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

// ComplaintRepository defines the remote operations on complaints
type ComplaintRepository interface {
	RemoteResource[models.Complaint]
	UpdateStatus(ctx context.Context, id uint, status, remarks string) (*models.Complaint, error)
}

type complaintRepository struct {
	*remoteResource[models.Complaint]
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(client *apiclient.Client) ComplaintRepository {
	return &complaintRepository{
		remoteResource: newRemoteResource[models.Complaint](client, ComplaintsPath),
	}
}

// UpdateStatus moves a complaint through its workflow with PATCH /complaints/:id/status
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status, remarks string) (*models.Complaint, error) {
	body := map[string]string{"status": status}
	if remarks != "" {
		body["remarks"] = remarks
	}

	var complaint models.Complaint
	if _, err := r.client.Patch(ctx, r.itemPath(id)+"/status", body, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}
