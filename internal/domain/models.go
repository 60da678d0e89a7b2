package domain

import "time"

type User struct {
	ID           int       `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	PANNumber    string    `json:"pan_number" db:"pan_number"`
	Address      string    `json:"address" db:"address"`
	City         string    `json:"city" db:"city"`
	State        string    `json:"state" db:"state"`
	Pincode      string    `json:"pincode" db:"pincode"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Campaign struct {
	ID           int        `json:"campaign_id" db:"campaign_id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Category     string     `json:"category" db:"category"`
	TargetAmount float64    `json:"target_amount" db:"target_amount"`
	RaisedAmount float64    `json:"raised_amount" db:"raised_amount"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	EndDate      *time.Time `json:"end_date" db:"end_date"`
	Location     string     `json:"location" db:"location"`
	State        string     `json:"state" db:"state"`
	ImageURL     string     `json:"image_url" db:"image_url"`
	Status       string     `json:"status" db:"status"`
	CreatedBy    *int       `json:"created_by" db:"created_by"`
	CreatorName  string     `json:"creator_name,omitempty" db:"creator_name"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

type CampaignStats struct {
	TotalDonations int `json:"total_donations" db:"total_donations"`
	UniqueDonors   int `json:"unique_donors" db:"unique_donors"`
}

type CampaignSummary struct {
	CampaignID           int     `json:"campaign_id" db:"campaign_id"`
	Title                string  `json:"title" db:"title"`
	Category             string  `json:"category" db:"category"`
	Status               string  `json:"status" db:"status"`
	TargetAmount         float64 `json:"target_amount" db:"target_amount"`
	RaisedAmount         float64 `json:"raised_amount" db:"raised_amount"`
	RemainingAmount      float64 `json:"remaining_amount" db:"remaining_amount"`
	CompletionPercentage float64 `json:"completion_percentage" db:"completion_percentage"`
	TotalDonations       int     `json:"total_donations" db:"total_donations"`
	UniqueDonors         int     `json:"unique_donors" db:"unique_donors"`
}

type Donation struct {
	ID            int       `json:"donation_id" db:"donation_id"`
	DonorID       int       `json:"donor_id" db:"donor_id"`
	CampaignID    int       `json:"campaign_id" db:"campaign_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	ReceiptNumber string    `json:"receipt_number" db:"receipt_number"`
	Anonymous     bool      `json:"anonymous" db:"anonymous"`
	Message       string    `json:"message" db:"message"`
	TaxBenefit    bool      `json:"tax_benefit" db:"tax_benefit"`
	DonationDate  time.Time `json:"donation_date" db:"donation_date"`

	DonorName     string `json:"donor_name,omitempty" db:"donor_name"`
	DonorEmail    string `json:"donor_email,omitempty" db:"donor_email"`
	CampaignTitle string `json:"campaign_title,omitempty" db:"campaign_title"`
	Category      string `json:"category,omitempty" db:"category"`
	FinancialYear string `json:"financial_year,omitempty" db:"financial_year"`
}

type TaxReceipt struct {
	ID            int       `json:"receipt_id" db:"receipt_id"`
	DonationID    int       `json:"donation_id" db:"donation_id"`
	ReceiptNumber string    `json:"receipt_number" db:"receipt_number"`
	FinancialYear string    `json:"financial_year" db:"financial_year"`
	IssuedDate    time.Time `json:"issued_date" db:"issued_date"`
}

type Beneficiary struct {
	ID                int       `json:"beneficiary_id" db:"beneficiary_id"`
	Name              string    `json:"name" db:"name"`
	Age               *int      `json:"age" db:"age"`
	Gender            string    `json:"gender" db:"gender"`
	AadhaarNumber     string    `json:"aadhaar_number" db:"aadhaar_number"`
	Phone             string    `json:"phone" db:"phone"`
	Email             string    `json:"email" db:"email"`
	Address           string    `json:"address" db:"address"`
	City              string    `json:"city" db:"city"`
	State             string    `json:"state" db:"state"`
	Pincode           string    `json:"pincode" db:"pincode"`
	Category          string    `json:"category" db:"category"`
	IncomeLevel       string    `json:"income_level" db:"income_level"`
	FamilyMembers     *int      `json:"family_members" db:"family_members"`
	Description       string    `json:"description" db:"description"`
	Status            string    `json:"status" db:"status"`
	RegisteredBy      *int      `json:"registered_by" db:"registered_by"`
	RegisteredByName  string    `json:"registered_by_name,omitempty" db:"registered_by_name"`
	RegisteredByEmail string    `json:"registered_by_email,omitempty" db:"registered_by_email"`
	RegisteredAt      time.Time `json:"registered_at" db:"registered_at"`
}

type AidDistribution struct {
	ID                int       `json:"distribution_id" db:"distribution_id"`
	BeneficiaryID     int       `json:"beneficiary_id" db:"beneficiary_id"`
	CampaignID        *int      `json:"campaign_id" db:"campaign_id"`
	AidType           string    `json:"aid_type" db:"aid_type"`
	Amount            float64   `json:"amount" db:"amount"`
	Description       string    `json:"description" db:"description"`
	Quantity          *int      `json:"quantity" db:"quantity"`
	DistributionDate  time.Time `json:"distribution_date" db:"distribution_date"`
	DistributedBy     *int      `json:"distributed_by" db:"distributed_by"`
	Remarks           string    `json:"remarks" db:"remarks"`
	CampaignTitle     string    `json:"campaign_title,omitempty" db:"campaign_title"`
	DistributedByName string    `json:"distributed_by_name,omitempty" db:"distributed_by_name"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)
