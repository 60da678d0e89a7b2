package donations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/auth"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	Donate(ctx context.Context, donorID int, d *domain.Donation) (int, string, error)
	List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
	ListByDonor(ctx context.Context, donorID int) ([]domain.Donation, error)
	Get(ctx context.Context, id, callerID int, role domain.Role) (*domain.Donation, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Stats(ctx context.Context) (*domain.DonationStats, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// List godoc
//
//	@Summary		List donations
//	@Tags			Donations
//	@Produce		json
//	@Param			campaign_id	query	int		false	"Campaign ID"
//	@Param			donor_id	query	int		false	"Donor ID"
//	@Param			status		query	string	false	"Payment status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch donations"
//	@Router			/api/donations [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	campaignID, err := utils.QueryInt(r, "campaign_id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donations")
		return
	}
	donorID, err := utils.QueryInt(r, "donor_id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donations")
		return
	}
	filter := domain.DonationFilter{
		CampaignID: campaignID,
		DonorID:    donorID,
		Status:     r.URL.Query().Get("status"),
	}
	donations, err := h.donationService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationsResponseDTO{Donations: donations})
}

// MyDonations godoc
//
//	@Summary		Donations of the caller
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationsResponseDTO
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		500	{object}	utils.Response	"Failed to fetch donations"
//	@Router			/api/donations/my-donations [get]
func (h *DonationHandler) MyDonations(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	donations, err := h.donationService.ListByDonor(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationsResponseDTO{Donations: donations})
}

// Stats godoc
//
//	@Summary		Donation statistics
//	@Description	Completed donation totals, totals per payment method and the last 12 months
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.DonationStats
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch donation statistics"
//	@Router			/api/donations/stats/summary [get]
func (h *DonationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.donationService.Stats(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donation statistics")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// Get godoc
//
//	@Summary		Get a donation
//	@Description	Donors may only read their own donations
//	@Tags			Donations
//	@Produce		json
//	@Param			id	path	int	true	"Donation ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DonationResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Failed to fetch donation"
//	@Router			/api/donations/{id} [get]
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donation")
		return
	}
	donation, err := h.donationService.Get(r.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch donation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DonationResponseDTO{Donation: donation})
}

// Create godoc
//
//	@Summary		Make a donation
//	@Description	Records the donation, credits the campaign and issues a tax receipt atomically
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.DonationRequestDTO	true	"Donation"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateDonationResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing required fields"
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Failed to process donation"
//	@Router			/api/donations [post]
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	var req dto.DonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, receipt, err := h.donationService.Donate(r.Context(), claims.UserID, req.ToDomain())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to process donation")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateDonationResponseDTO{
		Message:       "Donation successful",
		DonationID:    id,
		ReceiptNumber: receipt,
	})
}

// UpdateStatus godoc
//
//	@Summary		Change a donation's payment status
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int									true	"Donation ID"
//	@Param			request	body	dto.UpdateDonationStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		400	{object}	utils.Response	"Payment status is required"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Failed to update donation status"
//	@Router			/api/donations/{id}/status [put]
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update donation status")
		return
	}
	var req dto.UpdateDonationStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.donationService.UpdateStatus(r.Context(), id, req.PaymentStatus); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update donation status")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Donation status updated successfully"})
}
