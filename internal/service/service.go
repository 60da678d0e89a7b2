package service

import (
	"context"

	authhandlers "github.com/GlebRadaev/charity/internal/handlers/auth"
	"github.com/GlebRadaev/charity/internal/handlers/beneficiaries"
	"github.com/GlebRadaev/charity/internal/handlers/campaigns"
	"github.com/GlebRadaev/charity/internal/handlers/donations"
	"github.com/GlebRadaev/charity/internal/handlers/reports"
	"github.com/GlebRadaev/charity/internal/handlers/users"
	"github.com/GlebRadaev/charity/internal/repo"
	"github.com/GlebRadaev/charity/internal/service/authservice"
	"github.com/GlebRadaev/charity/internal/service/beneficiaryservice"
	"github.com/GlebRadaev/charity/internal/service/campaignservice"
	"github.com/GlebRadaev/charity/internal/service/donationservice"
	"github.com/GlebRadaev/charity/internal/service/reportservice"
	pkgauth "github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/metrics"
)

// AdminBootstrapper seeds the default administrator account at startup.
type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, email, password string) error
}

type Services struct {
	AuthService        authhandlers.Service
	UserService        users.Service
	CampaignService    campaigns.Service
	DonationService    donations.Service
	BeneficiaryService beneficiaries.Service
	ReportService      reports.Service
	Bootstrap          AdminBootstrapper
}

func New(
	repo *repo.Repositories,
	hashService pkgauth.HashServiceInterface,
	jwtService pkgauth.JWTServiceInterface,
	m *metrics.Metrics,
) *Services {
	authService := authservice.New(repo.UserRepo, hashService, jwtService, m)

	return &Services{
		AuthService:        authService,
		UserService:        authService,
		CampaignService:    campaignservice.New(repo.CampaignRepo),
		DonationService:    donationservice.New(repo.DonationRepo, m),
		BeneficiaryService: beneficiaryservice.New(repo.BeneficiaryRepo),
		ReportService:      reportservice.New(repo.ReportRepo),
		Bootstrap:          authService,
	}
}
