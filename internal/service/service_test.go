package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/repo"
	"github.com/GlebRadaev/charity/internal/service/authservice"
	"github.com/GlebRadaev/charity/internal/service/beneficiaryservice"
	"github.com/GlebRadaev/charity/internal/service/campaignservice"
	"github.com/GlebRadaev/charity/internal/service/donationservice"
	"github.com/GlebRadaev/charity/internal/service/reportservice"
	pkgauth "github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/metrics"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockRepo(ctrl),
		CampaignRepo:    campaignservice.NewMockRepo(ctrl),
		DonationRepo:    donationservice.NewMockRepo(ctrl),
		BeneficiaryRepo: beneficiaryservice.NewMockRepo(ctrl),
		ReportRepo:      reportservice.NewMockRepo(ctrl),
	}

	services := New(repos, pkgauth.NewMockHashServiceInterface(ctrl), pkgauth.NewMockJWTServiceInterface(ctrl), metrics.New(prometheus.NewRegistry()))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.CampaignService)
	assert.NotNil(t, services.DonationService)
	assert.NotNil(t, services.BeneficiaryService)
	assert.NotNil(t, services.ReportService)
	assert.Same(t, services.AuthService, services.Bootstrap)
}
