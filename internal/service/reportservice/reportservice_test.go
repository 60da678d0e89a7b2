package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/domain"
)

const validReceipt = "RCT79927398713"

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Anonymous donors are masked", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().DashboardCounts(gomock.Any()).Return(&domain.DashboardCounts{ActiveCampaigns: 2, TotalDonationsAmount: 2800}, nil)
		repo.EXPECT().RecentDonations(gomock.Any(), 10).Return([]domain.RecentDonation{
			{DonationID: 1, DonorName: "Asha", Anonymous: true},
			{DonationID: 2, DonorName: "Vikram"},
		}, nil)
		repo.EXPECT().TopCampaigns(gomock.Any(), 5).Return([]domain.TopCampaign{{CampaignID: 1, CompletionPercentage: 28}}, nil)

		report, err := service.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Stats.ActiveCampaigns)
		assert.Equal(t, AnonymousDonor, report.RecentDonations[0].DonorName)
		assert.Equal(t, "Vikram", report.RecentDonations[1].DonorName)
		assert.Len(t, report.TopCampaigns, 1)
	})

	t.Run("Query failure", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().DashboardCounts(gomock.Any()).Return(nil, errors.New("database error"))
		repo.EXPECT().RecentDonations(gomock.Any(), 10).Return(nil, nil).AnyTimes()
		repo.EXPECT().TopCampaigns(gomock.Any(), 5).Return(nil, nil).AnyTimes()

		_, err := service.Dashboard(ctx)
		assert.EqualError(t, err, "database error")
	})
}

func TestFinancial(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Totals and net balance", func(t *testing.T) {
		service, repo := NewMock(t)
		filter := domain.FinancialFilter{StartDate: &start, EndDate: &end}
		repo.EXPECT().IncomeByCampaign(gomock.Any(), filter).Return([]domain.CampaignIncome{
			{CampaignTitle: "A", TotalAmount: 0.1},
			{CampaignTitle: "B", TotalAmount: 0.2},
		}, nil)
		repo.EXPECT().ExpensesByCategory(gomock.Any(), filter).Return([]domain.ExpenseTotal{
			{Category: "logistics", TotalAmount: 0.05},
		}, nil)

		report, err := service.Financial(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 0.3, report.Income.Total)
		assert.Equal(t, 0.05, report.Expenses.Total)
		assert.Equal(t, 0.25, report.NetBalance)
	})

	t.Run("No rows", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().IncomeByCampaign(gomock.Any(), domain.FinancialFilter{CampaignID: 3}).Return([]domain.CampaignIncome{}, nil)
		repo.EXPECT().ExpensesByCategory(gomock.Any(), domain.FinancialFilter{CampaignID: 3}).Return([]domain.ExpenseTotal{}, nil)

		report, err := service.Financial(ctx, domain.FinancialFilter{CampaignID: 3})
		require.NoError(t, err)
		assert.Zero(t, report.NetBalance)
	})

	t.Run("Inverted range", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Financial(ctx, domain.FinancialFilter{StartDate: &end, EndDate: &start})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDonors(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().TopDonors(gomock.Any(), 20).Return([]domain.DonorTotal{{UserID: 1, TotalDonated: 2500}}, nil)
	repo.EXPECT().DonorsByState(gomock.Any()).Return([]domain.StateDonors{{State: "Kerala", DonorCount: 1}}, nil)
	repo.EXPECT().NewDonorsMonthly(gomock.Any()).Return([]domain.MonthlyNewDonors{{Month: "2024-08", NewDonors: 1}}, nil)

	report, err := service.Donors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, report.TopDonors[0].TotalDonated)
	assert.Len(t, report.DonorsByState, 1)
	assert.Len(t, report.NewDonorsMonthly, 1)
}

func TestCampaignPerformance(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().CampaignPerformance(gomock.Any()).Return([]domain.CampaignSummary{{CampaignID: 1, CompletionPercentage: 80}}, nil)
	repo.EXPECT().CategoryPerformance(gomock.Any()).Return([]domain.CategoryPerformance{{Category: "health", CampaignCount: 1}}, nil)

	report, err := service.CampaignPerformance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80.0, report.Campaigns[0].CompletionPercentage)
	assert.Equal(t, "health", report.ByCategory[0].Category)
}

func TestBeneficiaries(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().BeneficiariesByCategory(gomock.Any()).Return([]domain.BeneficiaryCategoryStats{{Category: "education", TotalCount: 3}}, nil)
	repo.EXPECT().AidByType(gomock.Any()).Return([]domain.AidByType{{AidType: "food", DistributionCount: 4}}, nil)
	repo.EXPECT().AidByState(gomock.Any()).Return(nil, errors.New("database error"))

	_, err := service.Beneficiaries(ctx)
	assert.EqualError(t, err, "database error")
}

func TestTaxReceipts(t *testing.T) {
	ctx := context.Background()

	t.Run("Filtered by year", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().Receipts(gomock.Any(), "2024-2025").Return([]domain.ReceiptEntry{{ReceiptNumber: validReceipt}}, nil)
		repo.EXPECT().ReceiptTotals(gomock.Any()).Return([]domain.YearTotal{{FinancialYear: "2024-2025", TotalReceipts: 1}}, nil)

		report, err := service.TaxReceipts(ctx, "2024-2025")
		require.NoError(t, err)
		assert.Len(t, report.Receipts, 1)
		assert.Equal(t, 1, report.Summary[0].TotalReceipts)
	})

	t.Run("Malformed year", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.TaxReceipts(ctx, "2024")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestReceipt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		number      string
		prepareMock func(repo *MockRepo)
		expectedErr error
	}{
		{
			name:   "Found",
			number: validReceipt,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ReceiptByNumber(ctx, validReceipt).Return(&domain.ReceiptEntry{ReceiptNumber: validReceipt}, nil)
			},
		},
		{
			name:        "Bad check digit",
			number:      "RCT79927398710",
			prepareMock: func(repo *MockRepo) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Wrong prefix",
			number:      "ABC79927398713",
			prepareMock: func(repo *MockRepo) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:   "Unknown receipt",
			number: validReceipt,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ReceiptByNumber(ctx, validReceipt).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			receipt, err := service.Receipt(ctx, tt.number)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, validReceipt, receipt.ReceiptNumber)
		})
	}
}
