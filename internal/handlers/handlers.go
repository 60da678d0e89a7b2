package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/charity/docs"
	"github.com/GlebRadaev/charity/internal/dto"
	authhandlers "github.com/GlebRadaev/charity/internal/handlers/auth"
	beneficiaryhandlers "github.com/GlebRadaev/charity/internal/handlers/beneficiaries"
	campaignhandlers "github.com/GlebRadaev/charity/internal/handlers/campaigns"
	donationhandlers "github.com/GlebRadaev/charity/internal/handlers/donations"
	reporthandlers "github.com/GlebRadaev/charity/internal/handlers/reports"
	userhandlers "github.com/GlebRadaev/charity/internal/handlers/users"
	"github.com/GlebRadaev/charity/internal/service"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MyDonations(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type BeneficiaryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddAid(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Financial(w http.ResponseWriter, r *http.Request)
	Donors(w http.ResponseWriter, r *http.Request)
	CampaignPerformance(w http.ResponseWriter, r *http.Request)
	Beneficiaries(w http.ResponseWriter, r *http.Request)
	TaxReceipts(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	CampaignHandler    CampaignHandler
	DonationHandler    DonationHandler
	BeneficiaryHandler BeneficiaryHandler
	ReportHandler      ReportHandler

	Tokens   auth.TokenValidator
	Gatherer prometheus.Gatherer
}

func New(s *service.Services, tokens auth.TokenValidator, gatherer prometheus.Gatherer) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.UserService),
		CampaignHandler:    campaignhandlers.New(s.CampaignService),
		DonationHandler:    donationhandlers.New(s.DonationService),
		BeneficiaryHandler: beneficiaryhandlers.New(s.BeneficiaryService),
		ReportHandler:      reporthandlers.New(s.ReportService),
		Tokens:             tokens,
		Gatherer:           gatherer,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}

	authenticated := auth.Middleware(h.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(NotFound)
		r.Get("/health", Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authenticated, auth.RequireAdmin())
			r.Get("/", h.UserHandler.List)
			r.Put("/{id}", h.UserHandler.Update)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.CampaignHandler.List)
			r.Get("/{id}", h.CampaignHandler.Get)
			r.Get("/{id}/summary", h.CampaignHandler.Summary)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.With(auth.RequireAdminOrVolunteer()).Post("/", h.CampaignHandler.Create)
				r.With(auth.RequireAdmin()).Put("/{id}", h.CampaignHandler.Update)
				r.With(auth.RequireAdmin()).Delete("/{id}", h.CampaignHandler.Delete)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Use(authenticated)
			r.With(auth.RequireAdminOrVolunteer()).Get("/", h.DonationHandler.List)
			r.Get("/my-donations", h.DonationHandler.MyDonations)
			r.With(auth.RequireAdminOrVolunteer()).Get("/stats/summary", h.DonationHandler.Stats)
			r.Get("/{id}", h.DonationHandler.Get)
			r.Post("/", h.DonationHandler.Create)
			r.With(auth.RequireAdmin()).Put("/{id}/status", h.DonationHandler.UpdateStatus)
		})

		r.Route("/beneficiaries", func(r chi.Router) {
			r.Use(authenticated, auth.RequireAdminOrVolunteer())
			r.Get("/", h.BeneficiaryHandler.List)
			r.Get("/stats/summary", h.BeneficiaryHandler.Stats)
			r.Get("/{id}", h.BeneficiaryHandler.Get)
			r.Post("/", h.BeneficiaryHandler.Create)
			r.Put("/{id}", h.BeneficiaryHandler.Update)
			r.With(auth.RequireAdmin()).Delete("/{id}", h.BeneficiaryHandler.Delete)
			r.Post("/{id}/aid", h.BeneficiaryHandler.AddAid)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(authenticated, auth.RequireAdminOrVolunteer())
			r.Get("/dashboard", h.ReportHandler.Dashboard)
			r.Get("/financial", h.ReportHandler.Financial)
			r.Get("/donors", h.ReportHandler.Donors)
			r.Get("/campaign-performance", h.ReportHandler.CampaignPerformance)
			r.Get("/beneficiaries", h.ReportHandler.Beneficiaries)
			r.Get("/tax-receipts", h.ReportHandler.TaxReceipts)
			r.Get("/tax-receipts/{receipt}", h.ReportHandler.Receipt)
		})
	})

	return r
}

// Health godoc
//
//	@Summary	Liveness check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponseDTO
//	@Router		/api/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{
		Status:    "OK",
		Message:   "Charity Management System API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithError(w, http.StatusNotFound, "API endpoint not found")
}
