package beneficiaryservice

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/charity/internal/domain"
)

type Repo interface {
	List(ctx context.Context, filter domain.BeneficiaryFilter) ([]domain.Beneficiary, error)
	GetByID(ctx context.Context, id int) (*domain.Beneficiary, error)
	Create(ctx context.Context, b *domain.Beneficiary) (int, error)
	Update(ctx context.Context, b *domain.Beneficiary) error
	Delete(ctx context.Context, id int) error
	AidHistory(ctx context.Context, beneficiaryID int) ([]domain.AidDistribution, error)
	CreateAid(ctx context.Context, a *domain.AidDistribution) (int, error)
	Totals(ctx context.Context) (*domain.BeneficiaryTotals, error)
	ActiveByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	TopStates(ctx context.Context) ([]domain.StateCount, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter domain.BeneficiaryFilter) ([]domain.Beneficiary, error) {
	return s.repo.List(ctx, filter)
}

// Get returns the beneficiary and the aid it has received, newest first.
func (s *Service) Get(ctx context.Context, id int) (*domain.Beneficiary, []domain.AidDistribution, error) {
	var (
		beneficiary *domain.Beneficiary
		history     []domain.AidDistribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		beneficiary, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.repo.AidHistory(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if beneficiary == nil {
		return nil, nil, domain.NotFound("Beneficiary not found")
	}
	if history == nil {
		history = []domain.AidDistribution{}
	}
	return beneficiary, history, nil
}

func validate(b *domain.Beneficiary) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" || b.Category == "" {
		return domain.Validation("Name and category are required")
	}
	if b.Age != nil && *b.Age < 0 {
		return domain.Validation("Age must not be negative")
	}
	if b.FamilyMembers != nil && *b.FamilyMembers < 0 {
		return domain.Validation("Family members must not be negative")
	}
	return nil
}

// Register records a beneficiary on behalf of the staff member registeredBy.
func (s *Service) Register(ctx context.Context, b *domain.Beneficiary, registeredBy int) (int, error) {
	if err := validate(b); err != nil {
		return 0, err
	}
	b.RegisteredBy = &registeredBy
	b.Status = domain.StatusActive

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		zap.L().Error("can't register beneficiary", zap.Error(err))
		return 0, err
	}
	zap.L().Info("beneficiary registered", zap.Int("beneficiary_id", id), zap.Int("registered_by", registeredBy))
	return id, nil
}

func (s *Service) Update(ctx context.Context, b *domain.Beneficiary) error {
	if err := validate(b); err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = domain.StatusActive
	}
	if b.Status != domain.StatusActive && b.Status != domain.StatusInactive {
		return domain.Validation("Status must be active or inactive")
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}
	zap.L().Info("beneficiary updated", zap.Int("beneficiary_id", b.ID))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("beneficiary deleted", zap.Int("beneficiary_id", id))
	return nil
}

// RecordAid stores an aid distribution made by distributedBy to an existing beneficiary.
func (s *Service) RecordAid(ctx context.Context, a *domain.AidDistribution, distributedBy int) (int, error) {
	a.AidType = strings.TrimSpace(a.AidType)
	if a.AidType == "" || a.DistributionDate.IsZero() {
		return 0, domain.Validation("Aid type and distribution date are required")
	}
	if a.Amount < 0 {
		return 0, domain.Validation("Amount must not be negative")
	}

	beneficiary, err := s.repo.GetByID(ctx, a.BeneficiaryID)
	if err != nil {
		return 0, err
	}
	if beneficiary == nil {
		return 0, domain.NotFound("Beneficiary not found")
	}

	a.DistributedBy = &distributedBy
	id, err := s.repo.CreateAid(ctx, a)
	if err != nil {
		return 0, err
	}
	zap.L().Info("aid distribution recorded",
		zap.Int("distribution_id", id),
		zap.Int("beneficiary_id", a.BeneficiaryID),
		zap.String("aid_type", a.AidType),
	)
	return id, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.BeneficiaryStats, error) {
	var (
		stats  domain.BeneficiaryStats
		totals *domain.BeneficiaryTotals
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.repo.Totals(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ByCategory, err = s.repo.ActiveByCategory(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ByState, err = s.repo.TopStates(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't collect beneficiary stats", zap.Error(err))
		return nil, err
	}
	if totals != nil {
		stats.Total = *totals
	}
	return &stats, nil
}
