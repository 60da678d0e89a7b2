package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	authhandlers "github.com/GlebRadaev/charity/internal/handlers/auth"
	"github.com/GlebRadaev/charity/internal/handlers/beneficiaries"
	"github.com/GlebRadaev/charity/internal/handlers/campaigns"
	"github.com/GlebRadaev/charity/internal/handlers/donations"
	"github.com/GlebRadaev/charity/internal/handlers/reports"
	"github.com/GlebRadaev/charity/internal/handlers/users"
	"github.com/GlebRadaev/charity/internal/service"
	"github.com/GlebRadaev/charity/pkg/auth"
)

const testSecret = "router-test-secret"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        authhandlers.NewMockService(ctrl),
		UserService:        users.NewMockService(ctrl),
		CampaignService:    campaigns.NewMockService(ctrl),
		DonationService:    donations.NewMockService(ctrl),
		BeneficiaryService: beneficiaries.NewMockService(ctrl),
		ReportService:      reports.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService(testSecret), prometheus.NewRegistry())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.ReportHandler)
}

func newRouter(t *testing.T) http.Handler {
	ctrl := gomock.NewController(t)

	authH := NewMockAuthHandler(ctrl)
	authH.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authH.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	userH := NewMockUserHandler(ctrl)
	userH.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	userH.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()

	campaignH := NewMockCampaignHandler(ctrl)
	campaignH.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	campaignH.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	campaignH.EXPECT().Summary(gomock.Any(), gomock.Any()).AnyTimes()
	campaignH.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	campaignH.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	campaignH.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()

	donationH := NewMockDonationHandler(ctrl)
	donationH.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	donationH.EXPECT().MyDonations(gomock.Any(), gomock.Any()).AnyTimes()
	donationH.EXPECT().Stats(gomock.Any(), gomock.Any()).AnyTimes()
	donationH.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	donationH.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	donationH.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()

	beneficiaryH := NewMockBeneficiaryHandler(ctrl)
	beneficiaryH.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().Stats(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	beneficiaryH.EXPECT().AddAid(gomock.Any(), gomock.Any()).AnyTimes()

	reportH := NewMockReportHandler(ctrl)
	reportH.EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().Financial(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().Donors(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().CampaignPerformance(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().Beneficiaries(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().TaxReceipts(gomock.Any(), gomock.Any()).AnyTimes()
	reportH.EXPECT().Receipt(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        authH,
		UserHandler:        userH,
		CampaignHandler:    campaignH,
		DonationHandler:    donationH,
		BeneficiaryHandler: beneficiaryH,
		ReportHandler:      reportH,
		Tokens:             auth.NewJWTService(testSecret),
		Gatherer:           prometheus.NewRegistry(),
	}

	return h.InitRoutes(chi.NewRouter())
}

func tokenFor(t *testing.T, role domain.Role) string {
	token, err := auth.NewJWTService(testSecret).GenerateJWT(
		&domain.User{ID: 7, Email: "user@example.org", Role: role},
		time.Now().Add(time.Hour),
	)
	require.NoError(t, err)
	return token
}

type route struct {
	method string
	url    string
}

var (
	publicRoutes = []route{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/campaigns"},
		{http.MethodGet, "/api/campaigns/1"},
		{http.MethodGet, "/api/campaigns/1/summary"},
	}
	authenticatedRoutes = []route{
		{http.MethodGet, "/api/donations/my-donations"},
		{http.MethodGet, "/api/donations/3"},
		{http.MethodPost, "/api/donations"},
	}
	staffRoutes = []route{
		{http.MethodPost, "/api/campaigns"},
		{http.MethodGet, "/api/donations"},
		{http.MethodGet, "/api/donations/stats/summary"},
		{http.MethodGet, "/api/beneficiaries"},
		{http.MethodGet, "/api/beneficiaries/stats/summary"},
		{http.MethodGet, "/api/beneficiaries/2"},
		{http.MethodPost, "/api/beneficiaries"},
		{http.MethodPut, "/api/beneficiaries/2"},
		{http.MethodPost, "/api/beneficiaries/2/aid"},
		{http.MethodGet, "/api/reports/dashboard"},
		{http.MethodGet, "/api/reports/financial"},
		{http.MethodGet, "/api/reports/donors"},
		{http.MethodGet, "/api/reports/campaign-performance"},
		{http.MethodGet, "/api/reports/beneficiaries"},
		{http.MethodGet, "/api/reports/tax-receipts"},
		{http.MethodGet, "/api/reports/tax-receipts/RCT79927398713"},
	}
	adminRoutes = []route{
		{http.MethodGet, "/api/users"},
		{http.MethodPut, "/api/users/4"},
		{http.MethodPut, "/api/campaigns/1"},
		{http.MethodDelete, "/api/campaigns/1"},
		{http.MethodPut, "/api/donations/3/status"},
		{http.MethodDelete, "/api/beneficiaries/2"},
	}
)

func serve(router http.Handler, rt route, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(rt.method, rt.url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInitRoutes_Gates(t *testing.T) {
	router := newRouter(t)

	donor := tokenFor(t, domain.RoleDonor)
	volunteer := tokenFor(t, domain.RoleVolunteer)
	admin := tokenFor(t, domain.RoleAdmin)

	tests := []struct {
		name   string
		routes []route
		token  string
		status int
	}{
		{"public without token", publicRoutes, "", http.StatusOK},
		{"authenticated without token", authenticatedRoutes, "", http.StatusForbidden},
		{"staff without token", staffRoutes, "", http.StatusForbidden},
		{"admin without token", adminRoutes, "", http.StatusForbidden},
		{"authenticated as donor", authenticatedRoutes, donor, http.StatusOK},
		{"staff as donor", staffRoutes, donor, http.StatusForbidden},
		{"admin as donor", adminRoutes, donor, http.StatusForbidden},
		{"staff as volunteer", staffRoutes, volunteer, http.StatusOK},
		{"admin as volunteer", adminRoutes, volunteer, http.StatusForbidden},
		{"staff as admin", staffRoutes, admin, http.StatusOK},
		{"admin as admin", adminRoutes, admin, http.StatusOK},
		{"invalid token", authenticatedRoutes, "not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rt := range tt.routes {
				rec := serve(router, rt, tt.token)
				assert.Equal(t, tt.status, rec.Code, "%s %s", rt.method, rt.url)
			}
		})
	}
}

func TestInitRoutes_Health(t *testing.T) {
	rec := serve(newRouter(t), route{http.MethodGet, "/api/health"}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.HealthResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "Charity Management System API is running", resp.Message)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestInitRoutes_UnknownAPIEndpoint(t *testing.T) {
	router := newRouter(t)

	for _, url := range []string{"/api/unknown", "/api/reports/unknown", "/api/campaigns/1/unknown/deep"} {
		rec := serve(router, route{http.MethodGet, url}, tokenFor(t, domain.RoleAdmin))

		assert.Equal(t, http.StatusNotFound, rec.Code, url)
		var resp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "API endpoint not found", resp["error"])
	}
}

func TestInitRoutes_Metrics(t *testing.T) {
	rec := serve(newRouter(t), route{http.MethodGet, "/metrics"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
