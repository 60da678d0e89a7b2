package donationservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/validate"
)

var ErrDonationFailed = domain.NewError(domain.ErrTransaction, "Failed to process donation")

var paymentStatuses = map[string]bool{
	domain.PaymentCompleted: true,
	domain.PaymentPending:   true,
	domain.PaymentFailed:    true,
	domain.PaymentRefunded:  true,
}

type Repo interface {
	CreateWithReceipt(ctx context.Context, d *domain.Donation, financialYear string) (int, error)
	List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
	ListByDonor(ctx context.Context, donorID int) ([]domain.Donation, error)
	GetByID(ctx context.Context, id int) (*domain.Donation, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Totals(ctx context.Context) (*domain.DonationTotals, error)
	TotalsByMethod(ctx context.Context) ([]domain.MethodTotal, error)
	Monthly(ctx context.Context) ([]domain.MonthlyTotal, error)
}

type Metrics interface {
	DonationRecorded(amount float64, start time.Time)
	DonationFailed(reason string)
}

type Service struct {
	repo    Repo
	metrics Metrics
	now     func() time.Time
}

func New(repo Repo, metrics Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// Donate records a completed donation from donorID, credits the campaign and
// issues the tax receipt in one transaction. It returns the donation id and
// the receipt number.
func (s *Service) Donate(ctx context.Context, donorID int, d *domain.Donation) (int, string, error) {
	start := s.now()
	if d.CampaignID <= 0 || d.Amount == 0 || d.PaymentMethod == "" {
		s.metrics.DonationFailed("validation")
		return 0, "", domain.Validation("Missing required fields")
	}
	amount := decimal.NewFromFloat(d.Amount).Round(2)
	if !amount.IsPositive() {
		s.metrics.DonationFailed("validation")
		return 0, "", domain.Validation("Amount must be greater than zero")
	}
	if !validate.AmountFits(amount) {
		s.metrics.DonationFailed("validation")
		return 0, "", domain.Validation("Amount exceeds the maximum allowed")
	}

	receipt, err := validate.NewReceiptNumber(start)
	if err != nil {
		zap.L().Error("can't generate receipt number", zap.Error(err))
		s.metrics.DonationFailed("receipt")
		return 0, "", ErrDonationFailed
	}

	d.DonorID = donorID
	d.Amount = amount.InexactFloat64()
	d.ReceiptNumber = receipt
	d.PaymentStatus = domain.PaymentCompleted
	d.TaxBenefit = true

	id, err := s.repo.CreateWithReceipt(ctx, d, validate.FinancialYear(start))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.DonationFailed("not_found")
			return 0, "", err
		}
		zap.L().Error("donation rolled back", zap.Int("donor_id", donorID), zap.Error(err))
		s.metrics.DonationFailed("transaction")
		return 0, "", ErrDonationFailed
	}

	s.metrics.DonationRecorded(d.Amount, start)
	zap.L().Info("donation recorded",
		zap.Int("donation_id", id),
		zap.Int("campaign_id", d.CampaignID),
		zap.String("receipt_number", receipt),
	)
	return id, receipt, nil
}

func (s *Service) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	if filter.Status != "" && !paymentStatuses[filter.Status] {
		return nil, domain.Validation("Invalid payment status")
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByDonor(ctx context.Context, donorID int) ([]domain.Donation, error) {
	return s.repo.ListByDonor(ctx, donorID)
}

// Get returns the donation to its donor or to staff.
func (s *Service) Get(ctx context.Context, id, callerID int, role domain.Role) (*domain.Donation, error) {
	donation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, domain.NotFound("Donation not found")
	}
	if !role.IsStaff() && donation.DonorID != callerID {
		return nil, domain.Forbidden("Access denied")
	}
	return donation, nil
}

// UpdateStatus changes the payment status; the campaign total follows
// transitions into and out of completed.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) error {
	if status == "" {
		return domain.Validation("Payment status is required")
	}
	if !paymentStatuses[status] {
		return domain.Validation("Invalid payment status")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	zap.L().Info("donation status updated", zap.Int("donation_id", id), zap.String("status", status))
	return nil
}

func (s *Service) Stats(ctx context.Context) (*domain.DonationStats, error) {
	var (
		stats  domain.DonationStats
		totals *domain.DonationTotals
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.repo.Totals(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ByMethod, err = s.repo.TotalsByMethod(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Monthly, err = s.repo.Monthly(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't collect donation stats", zap.Error(err))
		return nil, err
	}
	if totals != nil {
		stats.Total = *totals
	}
	return &stats, nil
}
