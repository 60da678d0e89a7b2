package dto

import "github.com/GlebRadaev/charity/internal/domain"

type RegisterRequestDTO struct {
	Name      string `json:"name" example:"Asha Menon"`
	Email     string `json:"email" example:"asha@example.org"`
	Phone     string `json:"phone,omitempty" example:"9876543210"`
	Password  string `json:"password" example:"s3cretpass"`
	Role      string `json:"role,omitempty" example:"donor"`
	PANNumber string `json:"pan_number,omitempty" example:"ABCDE1234F"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty" example:"Kochi"`
	State     string `json:"state,omitempty" example:"Kerala"`
	Pincode   string `json:"pincode,omitempty" example:"682001"`
}

func (r RegisterRequestDTO) ToDomain() *domain.User {
	return &domain.User{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      domain.Role(r.Role),
		PANNumber: r.PANNumber,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
	}
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  int    `json:"userId" example:"1"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"asha@example.org"`
	Password string `json:"password" example:"s3cretpass"`
}

type LoginUserDTO struct {
	UserID int         `json:"userId" example:"1"`
	Name   string      `json:"name" example:"Asha Menon"`
	Email  string      `json:"email" example:"asha@example.org"`
	Role   domain.Role `json:"role" example:"donor"`
	Phone  string      `json:"phone"`
	City   string      `json:"city"`
	State  string      `json:"state"`
}

type LoginResponseDTO struct {
	Message string       `json:"message" example:"Login successful"`
	Token   string       `json:"token"`
	User    LoginUserDTO `json:"user"`
}

func NewLoginResponse(token string, u *domain.User) LoginResponseDTO {
	return LoginResponseDTO{
		Message: "Login successful",
		Token:   token,
		User: LoginUserDTO{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   u.Role,
			Phone:  u.Phone,
			City:   u.City,
			State:  u.State,
		},
	}
}
