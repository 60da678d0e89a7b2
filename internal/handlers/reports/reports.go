package reports

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Financial(ctx context.Context, filter domain.FinancialFilter) (*domain.FinancialReport, error)
	Donors(ctx context.Context) (*domain.DonorReport, error)
	CampaignPerformance(ctx context.Context) (*domain.CampaignPerformanceReport, error)
	Beneficiaries(ctx context.Context) (*domain.BeneficiaryReport, error)
	TaxReceipts(ctx context.Context, financialYear string) (*domain.TaxReceiptReport, error)
	Receipt(ctx context.Context, number string) (*domain.ReceiptEntry, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Dashboard godoc
//
//	@Summary		Dashboard figures
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Dashboard
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch dashboard data"
//	@Router			/api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch dashboard data")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Financial godoc
//
//	@Summary		Income and expenses
//	@Description	The date range applies only when both start_date and end_date are given
//	@Tags			Reports
//	@Produce		json
//	@Param			start_date	query	string	false	"YYYY-MM-DD"
//	@Param			end_date	query	string	false	"YYYY-MM-DD"
//	@Param			campaign_id	query	int		false	"Campaign ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.FinancialReport
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		500	{object}	utils.Response	"Failed to generate financial report"
//	@Router			/api/reports/financial [get]
func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	campaignID, err := utils.QueryInt(r, "campaign_id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate financial report")
		return
	}
	q := r.URL.Query()
	filter, err := dto.FinancialQuery{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		CampaignID: campaignID,
	}.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate financial report")
		return
	}
	report, err := h.reportService.Financial(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate financial report")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Donors godoc
//
//	@Summary		Donor report
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.DonorReport
//	@Failure		500	{object}	utils.Response	"Failed to generate donor report"
//	@Router			/api/reports/donors [get]
func (h *ReportHandler) Donors(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Donors(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate donor report")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// CampaignPerformance godoc
//
//	@Summary		Campaign performance report
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.CampaignPerformanceReport
//	@Failure		500	{object}	utils.Response	"Failed to generate campaign performance report"
//	@Router			/api/reports/campaign-performance [get]
func (h *ReportHandler) CampaignPerformance(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.CampaignPerformance(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate campaign performance report")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Beneficiaries godoc
//
//	@Summary		Beneficiary and aid report
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.BeneficiaryReport
//	@Failure		500	{object}	utils.Response	"Failed to generate beneficiary report"
//	@Router			/api/reports/beneficiaries [get]
func (h *ReportHandler) Beneficiaries(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Beneficiaries(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate beneficiary report")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// TaxReceipts godoc
//
//	@Summary		Tax receipt report
//	@Tags			Reports
//	@Produce		json
//	@Param			financial_year	query	string	false	"e.g. 2024-2025"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.TaxReceiptReport
//	@Failure		400	{object}	utils.Response	"Invalid financial year"
//	@Failure		500	{object}	utils.Response	"Failed to generate tax receipt report"
//	@Router			/api/reports/tax-receipts [get]
func (h *ReportHandler) TaxReceipts(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.TaxReceipts(r.Context(), r.URL.Query().Get("financial_year"))
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to generate tax receipt report")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Receipt godoc
//
//	@Summary		Look up one tax receipt
//	@Description	The receipt number's check digit is verified before the lookup
//	@Tags			Reports
//	@Produce		json
//	@Param			receipt	path	string	true	"Receipt number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid receipt number"
//	@Failure		404	{object}	utils.Response	"Receipt not found"
//	@Failure		500	{object}	utils.Response	"Failed to fetch receipt"
//	@Router			/api/reports/tax-receipts/{receipt} [get]
func (h *ReportHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.reportService.Receipt(r.Context(), chi.URLParam(r, "receipt"))
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch receipt")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReceiptResponseDTO{Receipt: receipt})
}
