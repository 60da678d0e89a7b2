package campaignrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
)

const campaignColumns = `c.campaign_id, c.title, COALESCE(c.description, ''), c.category, c.target_amount,
	c.raised_amount, c.start_date, c.end_date, COALESCE(c.location, ''), COALESCE(c.state, ''),
	COALESCE(c.image_url, ''), c.status, c.created_by, c.created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	f := pg.NewFilter().
		EqIfSet("c.status", filter.Status).
		EqIfSet("c.category", filter.Category).
		EqIfSet("c.state", filter.State)
	query := "SELECT " + campaignColumns + " FROM campaigns c" + f.Where() + " ORDER BY c.created_at DESC"

	rows, err := r.db.Query(ctx, query, f.Args()...)
	if err != nil {
		zap.L().Error("can't get campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		var c domain.Campaign
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.TargetAmount, &c.RaisedAmount,
			&c.StartDate, &c.EndDate, &c.Location, &c.State, &c.ImageURL, &c.Status, &c.CreatedBy, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// GetByID returns nil without error for an unknown id.
func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := "SELECT " + campaignColumns + `, COALESCE(u.name, '')
		FROM campaigns c
		LEFT JOIN users u ON c.created_by = u.user_id
		WHERE c.campaign_id = $1`

	var c domain.Campaign
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.TargetAmount,
		&c.RaisedAmount, &c.StartDate, &c.EndDate, &c.Location, &c.State, &c.ImageURL, &c.Status, &c.CreatedBy,
		&c.CreatedAt, &c.CreatorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// Stats counts completed donations against the campaign.
func (r *Repository) Stats(ctx context.Context, id int) (*domain.CampaignStats, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT donor_id)
		FROM donations
		WHERE campaign_id = $1 AND payment_status = $2
	`
	var stats domain.CampaignStats
	err := r.db.QueryRow(ctx, query, id, domain.PaymentCompleted).Scan(&stats.TotalDonations, &stats.UniqueDonors)
	if err != nil {
		zap.L().Error("can't get campaign stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// Summary returns nil without error for an unknown id.
func (r *Repository) Summary(ctx context.Context, id int) (*domain.CampaignSummary, error) {
	query := `
		SELECT campaign_id, title, category, status, target_amount, raised_amount,
			remaining_amount, completion_percentage, total_donations, unique_donors
		FROM campaign_summary
		WHERE campaign_id = $1
	`
	var s domain.CampaignSummary
	err := r.db.QueryRow(ctx, query, id).Scan(&s.CampaignID, &s.Title, &s.Category, &s.Status, &s.TargetAmount,
		&s.RaisedAmount, &s.RemainingAmount, &s.CompletionPercentage, &s.TotalDonations, &s.UniqueDonors)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get campaign summary", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Campaign) (int, error) {
	query := `
		INSERT INTO campaigns (title, description, category, target_amount, start_date, end_date,
			location, state, image_url, created_by)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10)
		RETURNING campaign_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, c.Title, c.Description, c.Category, c.TargetAmount, c.StartDate, c.EndDate,
		c.Location, c.State, c.ImageURL, c.CreatedBy).Scan(&id)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, c *domain.Campaign) error {
	query := `
		UPDATE campaigns
		SET title = $1, description = NULLIF($2, ''), category = $3, target_amount = $4, start_date = $5,
			end_date = $6, location = NULLIF($7, ''), state = NULLIF($8, ''), image_url = NULLIF($9, ''), status = $10
		WHERE campaign_id = $11
	`
	tag, err := r.db.Exec(ctx, query, c.Title, c.Description, c.Category, c.TargetAmount, c.StartDate, c.EndDate,
		c.Location, c.State, c.ImageURL, c.Status, c.ID)
	if err != nil {
		zap.L().Error("can't update campaign", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Campaign not found")
	}
	return nil
}

// Delete refuses campaigns that already hold donations.
func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM campaigns WHERE campaign_id = $1", id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return domain.Conflict("Campaign has donations")
		}
		zap.L().Error("can't delete campaign", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Campaign not found")
	}
	return nil
}
