package reportservice

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/validate"
)

const (
	AnonymousDonor = "Anonymous"

	recentDonationsLimit = 10
	topCampaignsLimit    = 5
	topDonorsLimit       = 20
)

var financialYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

type Repo interface {
	DashboardCounts(ctx context.Context) (*domain.DashboardCounts, error)
	RecentDonations(ctx context.Context, limit int) ([]domain.RecentDonation, error)
	TopCampaigns(ctx context.Context, limit int) ([]domain.TopCampaign, error)
	IncomeByCampaign(ctx context.Context, filter domain.FinancialFilter) ([]domain.CampaignIncome, error)
	ExpensesByCategory(ctx context.Context, filter domain.FinancialFilter) ([]domain.ExpenseTotal, error)
	TopDonors(ctx context.Context, limit int) ([]domain.DonorTotal, error)
	DonorsByState(ctx context.Context) ([]domain.StateDonors, error)
	NewDonorsMonthly(ctx context.Context) ([]domain.MonthlyNewDonors, error)
	CampaignPerformance(ctx context.Context) ([]domain.CampaignSummary, error)
	CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error)
	BeneficiariesByCategory(ctx context.Context) ([]domain.BeneficiaryCategoryStats, error)
	AidByType(ctx context.Context) ([]domain.AidByType, error)
	AidByState(ctx context.Context) ([]domain.StateAid, error)
	Receipts(ctx context.Context, financialYear string) ([]domain.ReceiptEntry, error)
	ReceiptTotals(ctx context.Context) ([]domain.YearTotal, error)
	ReceiptByNumber(ctx context.Context, number string) (*domain.ReceiptEntry, error)
}

// Service builds read-only reports. Every call queries the store afresh and
// runs the independent queries of one report concurrently.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var (
		report domain.Dashboard
		counts *domain.DashboardCounts
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.repo.DashboardCounts(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.RecentDonations, err = s.repo.RecentDonations(ctx, recentDonationsLimit)
		return err
	})
	g.Go(func() (err error) {
		report.TopCampaigns, err = s.repo.TopCampaigns(ctx, topCampaignsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build dashboard", zap.Error(err))
		return nil, err
	}
	if counts != nil {
		report.Stats = *counts
	}
	for i := range report.RecentDonations {
		if report.RecentDonations[i].Anonymous {
			report.RecentDonations[i].DonorName = AnonymousDonor
		}
	}
	return &report, nil
}

// Financial sums income and approved expenses. Totals are added in decimal
// so the net balance carries no float drift.
func (s *Service) Financial(ctx context.Context, filter domain.FinancialFilter) (*domain.FinancialReport, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domain.Validation("End date must not precede start date")
	}

	var report domain.FinancialReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Income.ByCampaign, err = s.repo.IncomeByCampaign(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		report.Expenses.ByCategory, err = s.repo.ExpensesByCategory(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build financial report", zap.Error(err))
		return nil, err
	}

	income := decimal.Zero
	for _, c := range report.Income.ByCampaign {
		income = income.Add(decimal.NewFromFloat(c.TotalAmount))
	}
	expenses := decimal.Zero
	for _, e := range report.Expenses.ByCategory {
		expenses = expenses.Add(decimal.NewFromFloat(e.TotalAmount))
	}
	report.Income.Total = income.Round(2).InexactFloat64()
	report.Expenses.Total = expenses.Round(2).InexactFloat64()
	report.NetBalance = income.Sub(expenses).Round(2).InexactFloat64()
	return &report, nil
}

func (s *Service) Donors(ctx context.Context) (*domain.DonorReport, error) {
	var report domain.DonorReport
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.TopDonors, err = s.repo.TopDonors(ctx, topDonorsLimit)
		return err
	})
	g.Go(func() (err error) {
		report.DonorsByState, err = s.repo.DonorsByState(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.NewDonorsMonthly, err = s.repo.NewDonorsMonthly(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build donor report", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

func (s *Service) CampaignPerformance(ctx context.Context) (*domain.CampaignPerformanceReport, error) {
	var report domain.CampaignPerformanceReport
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Campaigns, err = s.repo.CampaignPerformance(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.ByCategory, err = s.repo.CategoryPerformance(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build campaign performance report", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

func (s *Service) Beneficiaries(ctx context.Context) (*domain.BeneficiaryReport, error) {
	var report domain.BeneficiaryReport
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.ByCategory, err = s.repo.BeneficiariesByCategory(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.AidDistribution, err = s.repo.AidByType(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.StateWise, err = s.repo.AidByState(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build beneficiary report", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

// TaxReceipts lists receipts, optionally for one financial year such as "2024-2025",
// with per-year totals.
func (s *Service) TaxReceipts(ctx context.Context, financialYear string) (*domain.TaxReceiptReport, error) {
	if financialYear != "" && !financialYearPattern.MatchString(financialYear) {
		return nil, domain.Validation("Invalid financial year")
	}

	var report domain.TaxReceiptReport
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Receipts, err = s.repo.Receipts(ctx, financialYear)
		return err
	})
	g.Go(func() (err error) {
		report.Summary, err = s.repo.ReceiptTotals(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build tax receipt report", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

// Receipt rejects numbers whose check digit does not match before touching the store.
func (s *Service) Receipt(ctx context.Context, number string) (*domain.ReceiptEntry, error) {
	if !validate.IsReceiptNumber(number) {
		return nil, domain.Validation("Invalid receipt number")
	}
	receipt, err := s.repo.ReceiptByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.NotFound("Receipt not found")
	}
	return receipt, nil
}
