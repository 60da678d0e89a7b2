package donationrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
)

const donationColumns = `d.donation_id, d.donor_id, d.campaign_id, d.amount, d.payment_method,
	COALESCE(d.transaction_id, ''), d.payment_status, d.receipt_number, d.anonymous,
	COALESCE(d.message, ''), d.tax_benefit, d.donation_date`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func donationFields(d *domain.Donation) []any {
	return []any{&d.ID, &d.DonorID, &d.CampaignID, &d.Amount, &d.PaymentMethod, &d.TransactionID,
		&d.PaymentStatus, &d.ReceiptNumber, &d.Anonymous, &d.Message, &d.TaxBenefit, &d.DonationDate}
}

// CreateWithReceipt writes the donation, credits the campaign and issues the
// tax receipt as one unit. An unknown campaign yields a not found error and
// nothing is written.
func (r *Repository) CreateWithReceipt(ctx context.Context, d *domain.Donation, financialYear string) (int, error) {
	insertDonation := `
		INSERT INTO donations (donor_id, campaign_id, amount, payment_method, transaction_id,
			payment_status, receipt_number, anonymous, message, tax_benefit)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), TRUE)
		RETURNING donation_id
	`
	creditCampaign := `UPDATE campaigns SET raised_amount = raised_amount + $1 WHERE campaign_id = $2`
	insertReceipt := `
		INSERT INTO tax_receipts (donation_id, receipt_number, financial_year, issued_date)
		VALUES ($1, $2, $3, CURRENT_DATE)
	`

	var donationID int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertDonation, d.DonorID, d.CampaignID, d.Amount, d.PaymentMethod,
			d.TransactionID, domain.PaymentCompleted, d.ReceiptNumber, d.Anonymous, d.Message).Scan(&donationID)
		if err != nil {
			if pg.IsForeignKeyViolation(err) {
				if strings.Contains(pg.ConstraintName(err), "donor") {
					return domain.NotFound("Donor not found")
				}
				return domain.NotFound("Campaign not found")
			}
			return fmt.Errorf("insert donation: %w", err)
		}

		tag, err := r.db.Exec(ctx, creditCampaign, d.Amount, d.CampaignID)
		if err != nil {
			return fmt.Errorf("credit campaign: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFound("Campaign not found")
		}

		if _, err := r.db.Exec(ctx, insertReceipt, donationID, d.ReceiptNumber, financialYear); err != nil {
			return fmt.Errorf("insert tax receipt: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("donation transaction failed", zap.Int("campaign_id", d.CampaignID), zap.Error(err))
		return 0, err
	}
	return donationID, nil
}

func (r *Repository) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	f := pg.NewFilter().
		EqIfPositive("d.campaign_id", filter.CampaignID).
		EqIfPositive("d.donor_id", filter.DonorID).
		EqIfSet("d.payment_status", filter.Status)
	query := "SELECT " + donationColumns + `, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(c.title, '')
		FROM donations d
		LEFT JOIN users u ON d.donor_id = u.user_id
		LEFT JOIN campaigns c ON d.campaign_id = c.campaign_id` + f.Where() + " ORDER BY d.donation_date DESC"

	rows, err := r.db.Query(ctx, query, f.Args()...)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(append(donationFields(&d), &d.DonorName, &d.DonorEmail, &d.CampaignTitle)...); err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *Repository) ListByDonor(ctx context.Context, donorID int) ([]domain.Donation, error) {
	query := "SELECT " + donationColumns + `, COALESCE(c.title, ''), COALESCE(c.category, '')
		FROM donations d
		LEFT JOIN campaigns c ON d.campaign_id = c.campaign_id
		WHERE d.donor_id = $1
		ORDER BY d.donation_date DESC`

	rows, err := r.db.Query(ctx, query, donorID)
	if err != nil {
		zap.L().Error("can't get donor donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(append(donationFields(&d), &d.CampaignTitle, &d.Category)...); err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

// GetByID returns nil without error for an unknown id.
func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := "SELECT " + donationColumns + `, COALESCE(u.name, ''), COALESCE(u.email, ''),
			COALESCE(c.title, ''), COALESCE(c.category, ''), COALESCE(tr.financial_year, '')
		FROM donations d
		LEFT JOIN users u ON d.donor_id = u.user_id
		LEFT JOIN campaigns c ON d.campaign_id = c.campaign_id
		LEFT JOIN tax_receipts tr ON d.donation_id = tr.donation_id
		WHERE d.donation_id = $1`

	var d domain.Donation
	err := r.db.QueryRow(ctx, query, id).Scan(append(donationFields(&d),
		&d.DonorName, &d.DonorEmail, &d.CampaignTitle, &d.Category, &d.FinancialYear)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// UpdateStatus moves a donation to status. Leaving or entering completed
// debits or credits the campaign in the same transaction, so raised_amount
// stays the sum of completed donations.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	lockDonation := `SELECT payment_status, amount, campaign_id FROM donations WHERE donation_id = $1 FOR UPDATE`
	setStatus := `UPDATE donations SET payment_status = $1 WHERE donation_id = $2`
	adjustCampaign := `UPDATE campaigns SET raised_amount = raised_amount + $1 WHERE campaign_id = $2`

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var (
			current    string
			amount     float64
			campaignID int
		)
		err := r.db.QueryRow(ctx, lockDonation, id).Scan(&current, &amount, &campaignID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFound("Donation not found")
			}
			zap.L().Error("can't lock donation", zap.Error(err))
			return err
		}
		if current == status {
			return nil
		}

		if _, err := r.db.Exec(ctx, setStatus, status, id); err != nil {
			zap.L().Error("can't update donation status", zap.Error(err))
			return err
		}

		var delta float64
		switch {
		case current == domain.PaymentCompleted:
			delta = -amount
		case status == domain.PaymentCompleted:
			delta = amount
		default:
			return nil
		}
		if _, err := r.db.Exec(ctx, adjustCampaign, delta, campaignID); err != nil {
			zap.L().Error("can't adjust campaign total", zap.Int("campaign_id", campaignID), zap.Error(err))
			return fmt.Errorf("adjust campaign: %w", err)
		}
		return nil
	})
}

func (r *Repository) Totals(ctx context.Context) (*domain.DonationTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(AVG(amount), 0), COUNT(DISTINCT donor_id)
		FROM donations
		WHERE payment_status = $1
	`
	var t domain.DonationTotals
	err := r.db.QueryRow(ctx, query, domain.PaymentCompleted).
		Scan(&t.TotalDonations, &t.TotalAmount, &t.AverageAmount, &t.UniqueDonors)
	if err != nil {
		zap.L().Error("can't get donation totals", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) TotalsByMethod(ctx context.Context) ([]domain.MethodTotal, error) {
	query := `
		SELECT payment_method, COUNT(*), SUM(amount)
		FROM donations
		WHERE payment_status = $1
		GROUP BY payment_method
		ORDER BY payment_method
	`
	rows, err := r.db.Query(ctx, query, domain.PaymentCompleted)
	if err != nil {
		zap.L().Error("can't get donation totals by method", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := []domain.MethodTotal{}
	for rows.Next() {
		var t domain.MethodTotal
		if err := rows.Scan(&t.PaymentMethod, &t.Count, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// Monthly covers the trailing twelve months, newest first.
func (r *Repository) Monthly(ctx context.Context) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT to_char(donation_date, 'YYYY-MM') AS month, COUNT(*), SUM(amount)
		FROM donations
		WHERE payment_status = $1 AND donation_date >= NOW() - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month DESC
	`
	rows, err := r.db.Query(ctx, query, domain.PaymentCompleted)
	if err != nil {
		zap.L().Error("can't get monthly donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := []domain.MonthlyTotal{}
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Donations, &t.Amount); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
