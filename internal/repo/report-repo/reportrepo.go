package reportrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// collect runs query and scans every row with scan.
func collect[T any](ctx context.Context, db pg.Database, what, query string, args []any, scan func(pgx.Rows, *T) error) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get "+what, zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			zap.L().Error("can't scan "+what, zap.Error(err))
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *Repository) DashboardCounts(ctx context.Context) (*domain.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM campaigns WHERE status = 'active'),
			(SELECT COUNT(*) FROM users WHERE role = 'donor' AND status = 'active'),
			(SELECT COUNT(*) FROM beneficiaries WHERE status = 'active'),
			(SELECT COALESCE(SUM(amount), 0) FROM donations WHERE payment_status = 'completed')
	`
	var c domain.DashboardCounts
	err := r.db.QueryRow(ctx, query).
		Scan(&c.ActiveCampaigns, &c.TotalDonors, &c.ActiveBeneficiaries, &c.TotalDonationsAmount)
	if err != nil {
		zap.L().Error("can't get dashboard counts", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) RecentDonations(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	query := `
		SELECT d.donation_id, d.amount, d.donation_date, d.anonymous, COALESCE(u.name, ''), COALESCE(c.title, '')
		FROM donations d
		LEFT JOIN users u ON d.donor_id = u.user_id
		LEFT JOIN campaigns c ON d.campaign_id = c.campaign_id
		WHERE d.payment_status = 'completed'
		ORDER BY d.donation_date DESC
		LIMIT $1
	`
	return collect(ctx, r.db, "recent donations", query, []any{limit}, func(rows pgx.Rows, d *domain.RecentDonation) error {
		return rows.Scan(&d.DonationID, &d.Amount, &d.DonationDate, &d.Anonymous, &d.DonorName, &d.CampaignTitle)
	})
}

func (r *Repository) TopCampaigns(ctx context.Context, limit int) ([]domain.TopCampaign, error) {
	query := `
		SELECT campaign_id, title, category, target_amount, raised_amount,
			ROUND(raised_amount / target_amount * 100, 2)
		FROM campaigns
		WHERE status = 'active'
		ORDER BY raised_amount DESC
		LIMIT $1
	`
	return collect(ctx, r.db, "top campaigns", query, []any{limit}, func(rows pgx.Rows, c *domain.TopCampaign) error {
		return rows.Scan(&c.CampaignID, &c.Title, &c.Category, &c.TargetAmount, &c.RaisedAmount, &c.CompletionPercentage)
	})
}

func financialFilter(dateColumn, campaignColumn string, filter domain.FinancialFilter) *pg.Filter {
	f := pg.NewFilter()
	if filter.StartDate != nil && filter.EndDate != nil {
		f.Between(dateColumn, *filter.StartDate, *filter.EndDate)
	}
	return f.EqIfPositive(campaignColumn, filter.CampaignID)
}

func (r *Repository) IncomeByCampaign(ctx context.Context, filter domain.FinancialFilter) ([]domain.CampaignIncome, error) {
	f := financialFilter("d.donation_date", "d.campaign_id", filter)
	query := `
		SELECT COALESCE(c.title, ''), COUNT(d.donation_id), SUM(d.amount), AVG(d.amount)
		FROM donations d
		LEFT JOIN campaigns c ON d.campaign_id = c.campaign_id
		WHERE d.payment_status = 'completed'` + f.And() + `
		GROUP BY c.campaign_id, c.title
		ORDER BY SUM(d.amount) DESC`
	return collect(ctx, r.db, "income by campaign", query, f.Args(), func(rows pgx.Rows, i *domain.CampaignIncome) error {
		return rows.Scan(&i.CampaignTitle, &i.DonationCount, &i.TotalAmount, &i.AverageAmount)
	})
}

func (r *Repository) ExpensesByCategory(ctx context.Context, filter domain.FinancialFilter) ([]domain.ExpenseTotal, error) {
	f := financialFilter("e.expense_date", "e.campaign_id", filter)
	query := `
		SELECT e.category, COUNT(e.expense_id), SUM(e.amount)
		FROM expenses e
		WHERE e.status = 'approved'` + f.And() + `
		GROUP BY e.category
		ORDER BY e.category`
	return collect(ctx, r.db, "expenses by category", query, f.Args(), func(rows pgx.Rows, e *domain.ExpenseTotal) error {
		return rows.Scan(&e.Category, &e.ExpenseCount, &e.TotalAmount)
	})
}

func (r *Repository) TopDonors(ctx context.Context, limit int) ([]domain.DonorTotal, error) {
	query := `
		SELECT user_id, name, email, state, donation_count, total_donated, last_donation_date
		FROM donor_summary
		ORDER BY total_donated DESC
		LIMIT $1
	`
	return collect(ctx, r.db, "top donors", query, []any{limit}, func(rows pgx.Rows, d *domain.DonorTotal) error {
		return rows.Scan(&d.UserID, &d.Name, &d.Email, &d.State, &d.DonationCount, &d.TotalDonated, &d.LastDonationDate)
	})
}

func (r *Repository) DonorsByState(ctx context.Context) ([]domain.StateDonors, error) {
	query := `
		SELECT u.state, COUNT(DISTINCT u.user_id), COALESCE(SUM(d.amount), 0) AS total_amount
		FROM users u
		LEFT JOIN donations d ON u.user_id = d.donor_id AND d.payment_status = 'completed'
		WHERE u.role = 'donor' AND u.state IS NOT NULL
		GROUP BY u.state
		ORDER BY total_amount DESC
	`
	return collect(ctx, r.db, "donors by state", query, nil, func(rows pgx.Rows, s *domain.StateDonors) error {
		return rows.Scan(&s.State, &s.DonorCount, &s.TotalAmount)
	})
}

func (r *Repository) NewDonorsMonthly(ctx context.Context) ([]domain.MonthlyNewDonors, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*)
		FROM users
		WHERE role = 'donor' AND created_at >= NOW() - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month DESC
	`
	return collect(ctx, r.db, "new donors", query, nil, func(rows pgx.Rows, m *domain.MonthlyNewDonors) error {
		return rows.Scan(&m.Month, &m.NewDonors)
	})
}

func (r *Repository) CampaignPerformance(ctx context.Context) ([]domain.CampaignSummary, error) {
	query := `
		SELECT campaign_id, title, category, status, target_amount, raised_amount,
			remaining_amount, completion_percentage, total_donations, unique_donors
		FROM campaign_summary
		ORDER BY completion_percentage DESC
	`
	return collect(ctx, r.db, "campaign performance", query, nil, func(rows pgx.Rows, s *domain.CampaignSummary) error {
		return rows.Scan(&s.CampaignID, &s.Title, &s.Category, &s.Status, &s.TargetAmount, &s.RaisedAmount,
			&s.RemainingAmount, &s.CompletionPercentage, &s.TotalDonations, &s.UniqueDonors)
	})
}

func (r *Repository) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	query := `
		SELECT category, COUNT(campaign_id), SUM(target_amount), SUM(raised_amount),
			ROUND(SUM(raised_amount) / SUM(target_amount) * 100, 2)
		FROM campaigns
		GROUP BY category
		ORDER BY category
	`
	return collect(ctx, r.db, "category performance", query, nil, func(rows pgx.Rows, c *domain.CategoryPerformance) error {
		return rows.Scan(&c.Category, &c.CampaignCount, &c.TotalTarget, &c.TotalRaised, &c.AvgCompletion)
	})
}

func (r *Repository) BeneficiariesByCategory(ctx context.Context) ([]domain.BeneficiaryCategoryStats, error) {
	query := `
		SELECT category, COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'completed')
		FROM beneficiaries
		GROUP BY category
		ORDER BY category
	`
	return collect(ctx, r.db, "beneficiaries by category", query, nil, func(rows pgx.Rows, s *domain.BeneficiaryCategoryStats) error {
		return rows.Scan(&s.Category, &s.TotalCount, &s.ActiveCount, &s.CompletedCount)
	})
}

func (r *Repository) AidByType(ctx context.Context) ([]domain.AidByType, error) {
	query := `
		SELECT aid_type, COUNT(*), COALESCE(SUM(amount), 0), COUNT(DISTINCT beneficiary_id)
		FROM aid_distribution
		GROUP BY aid_type
		ORDER BY aid_type
	`
	return collect(ctx, r.db, "aid by type", query, nil, func(rows pgx.Rows, a *domain.AidByType) error {
		return rows.Scan(&a.AidType, &a.DistributionCount, &a.TotalAmount, &a.UniqueBeneficiaries)
	})
}

func (r *Repository) AidByState(ctx context.Context) ([]domain.StateAid, error) {
	query := `
		SELECT b.state, COUNT(DISTINCT b.beneficiary_id) AS beneficiary_count, COUNT(ad.distribution_id),
			COALESCE(SUM(ad.amount), 0)
		FROM beneficiaries b
		LEFT JOIN aid_distribution ad ON b.beneficiary_id = ad.beneficiary_id
		WHERE b.state IS NOT NULL
		GROUP BY b.state
		ORDER BY beneficiary_count DESC
	`
	return collect(ctx, r.db, "aid by state", query, nil, func(rows pgx.Rows, s *domain.StateAid) error {
		return rows.Scan(&s.State, &s.BeneficiaryCount, &s.AidDistributions, &s.TotalAidAmount)
	})
}

const receiptEntrySelect = `
	SELECT tr.receipt_number, tr.financial_year, tr.issued_date, d.amount, u.name,
		COALESCE(u.pan_number, ''), c.title
	FROM tax_receipts tr
	JOIN donations d ON tr.donation_id = d.donation_id
	JOIN users u ON d.donor_id = u.user_id
	JOIN campaigns c ON d.campaign_id = c.campaign_id`

func scanReceiptEntry(row pgx.Row, e *domain.ReceiptEntry) error {
	return row.Scan(&e.ReceiptNumber, &e.FinancialYear, &e.IssuedDate, &e.Amount, &e.DonorName, &e.PANNumber, &e.CampaignTitle)
}

// Receipts lists receipts of completed donations, newest first, optionally
// for one financial year.
func (r *Repository) Receipts(ctx context.Context, financialYear string) ([]domain.ReceiptEntry, error) {
	f := pg.NewFilter().
		Eq("d.payment_status", domain.PaymentCompleted).
		EqIfSet("tr.financial_year", financialYear)
	query := receiptEntrySelect + f.Where() + " ORDER BY tr.issued_date DESC, tr.receipt_id DESC"
	return collect(ctx, r.db, "tax receipts", query, f.Args(), func(rows pgx.Rows, e *domain.ReceiptEntry) error {
		return scanReceiptEntry(rows, e)
	})
}

func (r *Repository) ReceiptTotals(ctx context.Context) ([]domain.YearTotal, error) {
	query := `
		SELECT tr.financial_year, COUNT(*), SUM(d.amount)
		FROM tax_receipts tr
		JOIN donations d ON tr.donation_id = d.donation_id
		WHERE d.payment_status = $1
		GROUP BY tr.financial_year
		ORDER BY tr.financial_year DESC
	`
	return collect(ctx, r.db, "receipt totals", query, []any{domain.PaymentCompleted}, func(rows pgx.Rows, y *domain.YearTotal) error {
		return rows.Scan(&y.FinancialYear, &y.TotalReceipts, &y.TotalAmount)
	})
}

// ReceiptByNumber returns nil without error for an unknown receipt.
func (r *Repository) ReceiptByNumber(ctx context.Context, number string) (*domain.ReceiptEntry, error) {
	var e domain.ReceiptEntry
	err := scanReceiptEntry(r.db.QueryRow(ctx, receiptEntrySelect+" WHERE tr.receipt_number = $1", number), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find tax receipt", zap.Error(err))
		return nil, err
	}
	return &e, nil
}
