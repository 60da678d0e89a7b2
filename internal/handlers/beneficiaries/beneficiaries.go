package beneficiaries

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
	List(ctx context.Context, filter domain.BeneficiaryFilter) ([]domain.Beneficiary, error)
	Get(ctx context.Context, id int) (*domain.Beneficiary, []domain.AidDistribution, error)
	Register(ctx context.Context, b *domain.Beneficiary, registeredBy int) (int, error)
	Update(ctx context.Context, b *domain.Beneficiary) error
	Delete(ctx context.Context, id int) error
	RecordAid(ctx context.Context, a *domain.AidDistribution, distributedBy int) (int, error)
	Stats(ctx context.Context) (*domain.BeneficiaryStats, error)
}

type BeneficiaryHandler struct {
	beneficiaryService Service
}

func New(beneficiaryService Service) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryService: beneficiaryService,
	}
}

// List godoc
//
//	@Summary		List beneficiaries
//	@Tags			Beneficiaries
//	@Produce		json
//	@Param			status			query	string	false	"Status"
//	@Param			category		query	string	false	"Category"
//	@Param			state			query	string	false	"State"
//	@Param			income_level	query	string	false	"Income level"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BeneficiariesResponseDTO
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch beneficiaries"
//	@Router			/api/beneficiaries [get]
func (h *BeneficiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BeneficiaryFilter{
		Status:      q.Get("status"),
		Category:    q.Get("category"),
		State:       q.Get("state"),
		IncomeLevel: q.Get("income_level"),
	}
	beneficiaries, err := h.beneficiaryService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch beneficiaries")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BeneficiariesResponseDTO{Beneficiaries: beneficiaries})
}

// Stats godoc
//
//	@Summary		Beneficiary statistics
//	@Tags			Beneficiaries
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.BeneficiaryStats
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch beneficiary statistics"
//	@Router			/api/beneficiaries/stats/summary [get]
func (h *BeneficiaryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.beneficiaryService.Stats(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch beneficiary statistics")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// Get godoc
//
//	@Summary		Get a beneficiary with aid history
//	@Tags			Beneficiaries
//	@Produce		json
//	@Param			id	path	int	true	"Beneficiary ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BeneficiaryResponseDTO
//	@Failure		404	{object}	utils.Response	"Beneficiary not found"
//	@Failure		500	{object}	utils.Response	"Failed to fetch beneficiary"
//	@Router			/api/beneficiaries/{id} [get]
func (h *BeneficiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch beneficiary")
		return
	}
	beneficiary, history, err := h.beneficiaryService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch beneficiary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BeneficiaryResponseDTO{Beneficiary: beneficiary, AidHistory: history})
}

// Create godoc
//
//	@Summary		Register a beneficiary
//	@Tags			Beneficiaries
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BeneficiaryRequestDTO	true	"Beneficiary"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateBeneficiaryResponseDTO
//	@Failure		400	{object}	utils.Response	"Name and category are required"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to register beneficiary"
//	@Router			/api/beneficiaries [post]
func (h *BeneficiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	var req dto.BeneficiaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, err := h.beneficiaryService.Register(r.Context(), req.ToDomain(), claims.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to register beneficiary")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateBeneficiaryResponseDTO{
		Message:       "Beneficiary registered successfully",
		BeneficiaryID: id,
	})
}

// Update godoc
//
//	@Summary		Update a beneficiary
//	@Tags			Beneficiaries
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Beneficiary ID"
//	@Param			request	body	dto.BeneficiaryRequestDTO	true	"Beneficiary"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		400	{object}	utils.Response	"Name and category are required"
//	@Failure		404	{object}	utils.Response	"Beneficiary not found"
//	@Failure		500	{object}	utils.Response	"Failed to update beneficiary"
//	@Router			/api/beneficiaries/{id} [put]
func (h *BeneficiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update beneficiary")
		return
	}
	var req dto.BeneficiaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	beneficiary := req.ToDomain()
	beneficiary.ID = id
	if err := h.beneficiaryService.Update(r.Context(), beneficiary); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update beneficiary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Beneficiary updated successfully"})
}

// Delete godoc
//
//	@Summary		Delete a beneficiary
//	@Tags			Beneficiaries
//	@Produce		json
//	@Param			id	path	int	true	"Beneficiary ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		404	{object}	utils.Response	"Beneficiary not found"
//	@Failure		500	{object}	utils.Response	"Failed to delete beneficiary"
//	@Router			/api/beneficiaries/{id} [delete]
func (h *BeneficiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to delete beneficiary")
		return
	}
	if err := h.beneficiaryService.Delete(r.Context(), id); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to delete beneficiary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Beneficiary deleted successfully"})
}

// AddAid godoc
//
//	@Summary		Record an aid distribution
//	@Tags			Beneficiaries
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int					true	"Beneficiary ID"
//	@Param			request	body	dto.AidRequestDTO	true	"Aid distribution"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateAidResponseDTO
//	@Failure		400	{object}	utils.Response	"Aid type and distribution date are required"
//	@Failure		404	{object}	utils.Response	"Beneficiary not found"
//	@Failure		500	{object}	utils.Response	"Failed to record aid distribution"
//	@Router			/api/beneficiaries/{id}/aid [post]
func (h *BeneficiaryHandler) AddAid(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to record aid distribution")
		return
	}
	var req dto.AidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	aid, err := req.ToDomain(id)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to record aid distribution")
		return
	}
	distributionID, err := h.beneficiaryService.RecordAid(r.Context(), aid, claims.UserID)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to record aid distribution")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateAidResponseDTO{
		Message:        "Aid distribution recorded successfully",
		DistributionID: distributionID,
	})
}
