package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Param			role	query	string	false	"donor, volunteer or admin"
//	@Param			status	query	string	false	"active or inactive"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UsersResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid role"
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		500	{object}	utils.Response	"Failed to fetch users"
//	@Router			/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.UserFilter{
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
	}
	users, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to fetch users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsersResponseDTO{Users: users})
}

// Update godoc
//
//	@Summary		Update a user
//	@Description	Replace a user's profile, role and status. This is the only way to grant the admin role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"User"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		403	{object}	utils.Response	"Insufficient role"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Failed to update user"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update user")
		return
	}
	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.userService.UpdateUser(r.Context(), req.ToDomain(id)); err != nil {
		utils.RespondWithDomainError(w, err, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User updated successfully"})
}
