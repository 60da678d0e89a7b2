package campaigns

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
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, *domain.CampaignStats, error)
	Summary(ctx context.Context, id int) (*domain.CampaignSummary, error)
	Create(ctx context.Context, c *domain.Campaign, creatorID int) (int, error)
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id int) error
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// List godoc
//
//	@Summary		List campaigns
//	@Description	Newest first, optionally filtered
//	@Tags			Campaigns
//	@Produce		json
//	@Param			status		query		string	false	"Campaign status"
//	@Param			category	query		string	false	"Category"
//	@Param			state		query		string	false	"State"
//	@Success		200			{object}	dto.CampaignsResponseDTO
//	@Failure		500			{object}	utils.Response	"Failed to fetch campaigns"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CampaignFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		State:    q.Get("state"),
	}
	campaigns, err := h.campaignService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch campaigns")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignsResponseDTO{Campaigns: campaigns})
}

// Get godoc
//
//	@Summary		Get a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		int	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignResponseDTO
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Failed to fetch campaign"
//	@Router			/api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch campaign")
		return
	}
	campaign, stats, err := h.campaignService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch campaign")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignResponseDTO{Campaign: campaign, Stats: stats})
}

// Summary godoc
//
//	@Summary		Campaign progress summary
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		int	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignSummaryResponseDTO
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Failed to fetch campaign summary"
//	@Router			/api/campaigns/{id}/summary [get]
func (h *CampaignHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch campaign summary")
		return
	}
	summary, err := h.campaignService.Summary(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch campaign summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignSummaryResponseDTO{Summary: summary})
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CampaignRequestDTO	true	"Campaign"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateCampaignResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing required fields"
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to create campaign"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	var req dto.CampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	campaign, err := req.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to create campaign")
		return
	}
	id, err := h.campaignService.Create(r.Context(), campaign, claims.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to create campaign")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateCampaignResponseDTO{
		Message:    "Campaign created successfully",
		CampaignID: id,
	})
}

// Update godoc
//
//	@Summary		Update a campaign
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Campaign ID"
//	@Param			request	body	dto.CampaignRequestDTO	true	"Campaign"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing required fields"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Failed to update campaign"
//	@Router			/api/campaigns/{id} [put]
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update campaign")
		return
	}
	var req dto.CampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	campaign, err := req.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update campaign")
		return
	}
	campaign.ID = id
	if err := h.campaignService.Update(r.Context(), campaign); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update campaign")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Campaign updated successfully"})
}

// Delete godoc
//
//	@Summary		Delete a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path	int	true	"Campaign ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Failed to delete campaign"
//	@Router			/api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to delete campaign")
		return
	}
	if err := h.campaignService.Delete(r.Context(), id); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to delete campaign")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Campaign deleted successfully"})
}
