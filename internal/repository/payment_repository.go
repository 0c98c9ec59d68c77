package repository

import (
	"context"
	"fmt"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

// PaymentRepository defines the remote operations on payments
type PaymentRepository interface {
	RemoteResource[models.Payment]
	ListBySociety(ctx context.Context, societyID uint, params models.ListParams) (*models.Page[models.Payment], error)
}

type paymentRepository struct {
	*remoteResource[models.Payment]
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(client *apiclient.Client) PaymentRepository {
	return &paymentRepository{
		remoteResource: newRemoteResource[models.Payment](client, PaymentsPath),
	}
}

// ListBySociety lists the payments of one society with GET /societies/:id/payments
func (r *paymentRepository) ListBySociety(ctx context.Context, societyID uint, params models.ListParams) (*models.Page[models.Payment], error) {
	return listPage[models.Payment](ctx, r.client, fmt.Sprintf("%s/%d/payments", SocietiesPath, societyID), params)
}
