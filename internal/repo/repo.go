package repo

import (
	"github.com/GlebRadaev/charity/internal/pg"
	beneficiaryrepo "github.com/GlebRadaev/charity/internal/repo/beneficiary-repo"
	campaignrepo "github.com/GlebRadaev/charity/internal/repo/campaign-repo"
	donationrepo "github.com/GlebRadaev/charity/internal/repo/donation-repo"
	reportrepo "github.com/GlebRadaev/charity/internal/repo/report-repo"
	userrepo "github.com/GlebRadaev/charity/internal/repo/user-repo"
	"github.com/GlebRadaev/charity/internal/service/authservice"
	"github.com/GlebRadaev/charity/internal/service/beneficiaryservice"
	"github.com/GlebRadaev/charity/internal/service/campaignservice"
	"github.com/GlebRadaev/charity/internal/service/donationservice"
	"github.com/GlebRadaev/charity/internal/service/reportservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	CampaignRepo    campaignservice.Repo
	DonationRepo    donationservice.Repo
	BeneficiaryRepo beneficiaryservice.Repo
	ReportRepo      reportservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		CampaignRepo:    campaignrepo.New(conn),
		DonationRepo:    donationrepo.New(conn, txManager),
		BeneficiaryRepo: beneficiaryrepo.New(conn),
		ReportRepo:      reportrepo.New(conn),
	}
}
