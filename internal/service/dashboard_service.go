package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// DashboardSummary holds the headline counters of the panel home screen
type DashboardSummary struct {
	TotalSocieties  int64 `json:"totalSocieties" example:"12"`
	OpenComplaints  int64 `json:"openComplaints" example:"7"`
	PendingPayments int64 `json:"pendingPayments" example:"31"`
	TotalNotices    int64 `json:"totalNotices" example:"54"`
	TotalAmenities  int64 `json:"totalAmenities" example:"18"`
}

// DashboardService defines the dashboard operations
type DashboardService interface {
	GetSummary(ctx context.Context, societyID uint) (*DashboardSummary, error)
}

type dashboardService struct {
	societyRepo   repository.SocietyRepository
	noticeRepo    repository.NoticeRepository
	amenityRepo   repository.AmenityRepository
	complaintRepo repository.ComplaintRepository
	paymentRepo   repository.PaymentRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	societyRepo repository.SocietyRepository,
	noticeRepo repository.NoticeRepository,
	amenityRepo repository.AmenityRepository,
	complaintRepo repository.ComplaintRepository,
	paymentRepo repository.PaymentRepository,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		societyRepo:   societyRepo,
		noticeRepo:    noticeRepo,
		amenityRepo:   amenityRepo,
		complaintRepo: complaintRepo,
		paymentRepo:   paymentRepo,
		logger:        logger,
	}
}

// GetSummary reads the totals of each list endpoint in parallel. A societyID of 0
// counts across all societies. The first failure cancels the remaining calls.
func (s *dashboardService) GetSummary(ctx context.Context, societyID uint) (*DashboardSummary, error) {
	base := models.ListParams{Page: 1, Limit: 1}
	if societyID != 0 {
		base = base.WithFilter("societyId", strconv.FormatUint(uint64(societyID), 10))
	}

	summary := &DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if societyID != 0 {
			summary.TotalSocieties = 1
			return nil
		}
		return countInto[models.Society](gctx, s.societyRepo, base, &summary.TotalSocieties)
	})
	g.Go(func() error {
		return countInto[models.Complaint](gctx, s.complaintRepo, base.WithFilter("status", models.ComplaintStatusOpen), &summary.OpenComplaints)
	})
	g.Go(func() error {
		return countInto[models.Payment](gctx, s.paymentRepo, base.WithFilter("status", models.PaymentStatusPending), &summary.PendingPayments)
	})
	g.Go(func() error {
		return countInto[models.Notice](gctx, s.noticeRepo, base, &summary.TotalNotices)
	})
	g.Go(func() error {
		return countInto[models.Amenity](gctx, s.amenityRepo, base, &summary.TotalAmenities)
	})

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("society_id", societyID).Error("Failed to build dashboard summary")
		return nil, err
	}
	return summary, nil
}

func countInto[T any](ctx context.Context, repo repository.RemoteResource[T], params models.ListParams, total *int64) error {
	page, err := repo.List(ctx, params)
	if err != nil {
		return err
	}
	*total = page.Pagination.Total
	return nil
}
