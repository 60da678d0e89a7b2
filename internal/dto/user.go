package dto

import "github.com/GlebRadaev/charity/internal/domain"

type UsersResponseDTO struct {
	Users []domain.User `json:"users"`
}

// UpdateUserRequestDTO replaces the whole profile, including role and status.
type UpdateUserRequestDTO struct {
	Name      string `json:"name" example:"Asha Menon"`
	Email     string `json:"email" example:"asha@example.org"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role" example:"volunteer"`
	PANNumber string `json:"pan_number,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
	Status    string `json:"status" example:"active"`
}

func (r UpdateUserRequestDTO) ToDomain(id int) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      domain.Role(r.Role),
		PANNumber: r.PANNumber,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		Status:    r.Status,
	}
}
