package dto

import "github.com/GlebRadaev/charity/internal/domain"

type DonationRequestDTO struct {
	CampaignID    int     `json:"campaign_id" example:"1"`
	Amount        float64 `json:"amount" example:"2500"`
	PaymentMethod string  `json:"payment_method" example:"upi"`
	TransactionID string  `json:"transaction_id,omitempty" example:"TXN123456"`
	Anonymous     bool    `json:"anonymous"`
	Message       string  `json:"message,omitempty"`
}

func (r DonationRequestDTO) ToDomain() *domain.Donation {
	return &domain.Donation{
		CampaignID:    r.CampaignID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		Anonymous:     r.Anonymous,
		Message:       r.Message,
	}
}

type CreateDonationResponseDTO struct {
	Message       string `json:"message" example:"Donation successful"`
	DonationID    int    `json:"donationId" example:"1"`
	ReceiptNumber string `json:"receiptNumber" example:"RCT17236872000001234"`
}

type DonationsResponseDTO struct {
	Donations []domain.Donation `json:"donations"`
}

type DonationResponseDTO struct {
	Donation *domain.Donation `json:"donation"`
}

type UpdateDonationStatusRequestDTO struct {
	PaymentStatus string `json:"payment_status" example:"refunded"`
}
