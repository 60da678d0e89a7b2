package dto

import "github.com/GlebRadaev/charity/internal/domain"

type BeneficiaryRequestDTO struct {
	Name          string `json:"name" example:"Ravi Kumar"`
	Age           *int   `json:"age,omitempty" example:"12"`
	Gender        string `json:"gender,omitempty" example:"male"`
	AadhaarNumber string `json:"aadhaar_number,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty" example:"Kerala"`
	Pincode       string `json:"pincode,omitempty"`
	Category      string `json:"category" example:"education"`
	IncomeLevel   string `json:"income_level,omitempty" example:"BPL"`
	FamilyMembers *int   `json:"family_members,omitempty" example:"4"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty" example:"active"`
}

func (r BeneficiaryRequestDTO) ToDomain() *domain.Beneficiary {
	return &domain.Beneficiary{
		Name:          r.Name,
		Age:           r.Age,
		Gender:        r.Gender,
		AadhaarNumber: r.AadhaarNumber,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		Pincode:       r.Pincode,
		Category:      r.Category,
		IncomeLevel:   r.IncomeLevel,
		FamilyMembers: r.FamilyMembers,
		Description:   r.Description,
		Status:        r.Status,
	}
}

type BeneficiariesResponseDTO struct {
	Beneficiaries []domain.Beneficiary `json:"beneficiaries"`
}

type BeneficiaryResponseDTO struct {
	Beneficiary *domain.Beneficiary      `json:"beneficiary"`
	AidHistory  []domain.AidDistribution `json:"aidHistory"`
}

type CreateBeneficiaryResponseDTO struct {
	Message       string `json:"message" example:"Beneficiary registered successfully"`
	BeneficiaryID int    `json:"beneficiaryId" example:"1"`
}

type AidRequestDTO struct {
	CampaignID       *int    `json:"campaign_id,omitempty" example:"1"`
	AidType          string  `json:"aid_type" example:"food"`
	Amount           float64 `json:"amount" example:"500"`
	Description      string  `json:"description,omitempty"`
	Quantity         *int    `json:"quantity,omitempty" example:"10"`
	DistributionDate string  `json:"distribution_date" example:"2024-09-01"`
	Remarks          string  `json:"remarks,omitempty"`
}

func (r AidRequestDTO) ToDomain(beneficiaryID int) (*domain.AidDistribution, error) {
	a := &domain.AidDistribution{
		BeneficiaryID: beneficiaryID,
		CampaignID:    r.CampaignID,
		AidType:       r.AidType,
		Amount:        r.Amount,
		Description:   r.Description,
		Quantity:      r.Quantity,
		Remarks:       r.Remarks,
	}
	if r.DistributionDate != "" {
		date, err := parseDate("distribution_date", r.DistributionDate)
		if err != nil {
			return nil, err
		}
		a.DistributionDate = date
	}
	return a, nil
}

type CreateAidResponseDTO struct {
	Message        string `json:"message" example:"Aid distribution recorded successfully"`
	DistributionID int    `json:"distributionId" example:"1"`
}
