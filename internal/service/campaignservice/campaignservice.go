package campaignservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	pkgvalidate "github.com/GlebRadaev/charity/pkg/validate"
)

var campaignStatuses = map[string]bool{
	"active":    true,
	"closed":    true,
	"completed": true,
}

type Repo interface {
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	GetByID(ctx context.Context, id int) (*domain.Campaign, error)
	Stats(ctx context.Context, id int) (*domain.CampaignStats, error)
	Summary(ctx context.Context, id int) (*domain.CampaignSummary, error)
	Create(ctx context.Context, c *domain.Campaign) (int, error)
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	return s.repo.List(ctx, filter)
}

// Get returns the campaign together with its completed donation stats.
func (s *Service) Get(ctx context.Context, id int) (*domain.Campaign, *domain.CampaignStats, error) {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if campaign == nil {
		return nil, nil, domain.NotFound("Campaign not found")
	}
	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return campaign, stats, nil
}

func (s *Service) Summary(ctx context.Context, id int) (*domain.CampaignSummary, error) {
	summary, err := s.repo.Summary(ctx, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, domain.NotFound("Campaign not found")
	}
	return summary, nil
}

func validate(c *domain.Campaign) error {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" || c.Category == "" || c.TargetAmount == 0 || c.StartDate.IsZero() {
		return domain.Validation("Missing required fields")
	}
	if c.TargetAmount < 0 {
		return domain.Validation("Target amount must be positive")
	}
	if !pkgvalidate.AmountFits(decimal.NewFromFloat(c.TargetAmount)) {
		return domain.Validation("Target amount exceeds the maximum allowed")
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return domain.Validation("End date must not precede start date")
	}
	if c.Status == "" {
		c.Status = "active"
	}
	if !campaignStatuses[c.Status] {
		return domain.Validation("Invalid campaign status")
	}
	return nil
}

// Create stores a new campaign owned by creatorID.
func (s *Service) Create(ctx context.Context, c *domain.Campaign, creatorID int) (int, error) {
	if err := validate(c); err != nil {
		return 0, err
	}
	c.CreatedBy = &creatorID
	c.RaisedAmount = 0

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		zap.L().Error("can't create campaign", zap.Error(err))
		return 0, err
	}
	zap.L().Info("campaign created", zap.Int("campaign_id", id), zap.Int("created_by", creatorID))
	return id, nil
}

// Update replaces the editable fields. Raised amount is only ever changed by donations.
func (s *Service) Update(ctx context.Context, c *domain.Campaign) error {
	if err := validate(c); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	zap.L().Info("campaign updated", zap.Int("campaign_id", c.ID))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("campaign deleted", zap.Int("campaign_id", id))
	return nil
}
