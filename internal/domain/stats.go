package domain

import "time"

type DonationTotals struct {
	TotalDonations int     `json:"total_donations"`
	TotalAmount    float64 `json:"total_amount"`
	AverageAmount  float64 `json:"average_amount"`
	UniqueDonors   int     `json:"unique_donors"`
}

type MethodTotal struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int     `json:"count"`
	Total         float64 `json:"total"`
}

type MonthlyTotal struct {
	Month     string  `json:"month"`
	Donations int     `json:"donations"`
	Amount    float64 `json:"amount"`
}

type DonationStats struct {
	Total    DonationTotals `json:"total"`
	ByMethod []MethodTotal  `json:"byMethod"`
	Monthly  []MonthlyTotal `json:"monthly"`
}

type BeneficiaryTotals struct {
	TotalBeneficiaries  int `json:"total_beneficiaries"`
	ActiveBeneficiaries int `json:"active_beneficiaries"`
	BPLCount            int `json:"bpl_count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

type BeneficiaryStats struct {
	Total      BeneficiaryTotals `json:"total"`
	ByCategory []CategoryCount   `json:"byCategory"`
	ByState    []StateCount      `json:"byState"`
}

type DashboardCounts struct {
	ActiveCampaigns      int     `json:"active_campaigns"`
	TotalDonors          int     `json:"total_donors"`
	ActiveBeneficiaries  int     `json:"active_beneficiaries"`
	TotalDonationsAmount float64 `json:"total_donations_amount"`
}

type RecentDonation struct {
	DonationID    int       `json:"donation_id"`
	Amount        float64   `json:"amount"`
	DonationDate  time.Time `json:"donation_date"`
	Anonymous     bool      `json:"anonymous"`
	DonorName     string    `json:"donor_name"`
	CampaignTitle string    `json:"campaign_title"`
}

type TopCampaign struct {
	CampaignID           int     `json:"campaign_id"`
	Title                string  `json:"title"`
	Category             string  `json:"category"`
	TargetAmount         float64 `json:"target_amount"`
	RaisedAmount         float64 `json:"raised_amount"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type Dashboard struct {
	Stats           DashboardCounts  `json:"stats"`
	RecentDonations []RecentDonation `json:"recentDonations"`
	TopCampaigns    []TopCampaign    `json:"topCampaigns"`
}

// FinancialFilter narrows the financial report. Zero values mean no restriction;
// the date range applies only when both ends are set.
type FinancialFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CampaignID int
}

type CampaignIncome struct {
	CampaignTitle string  `json:"campaign_title"`
	DonationCount int     `json:"donation_count"`
	TotalAmount   float64 `json:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
}

type ExpenseTotal struct {
	Category     string  `json:"category"`
	ExpenseCount int     `json:"expense_count"`
	TotalAmount  float64 `json:"total_amount"`
}

type IncomeSection struct {
	ByCampaign []CampaignIncome `json:"byCampaign"`
	Total      float64          `json:"total"`
}

type ExpenseSection struct {
	ByCategory []ExpenseTotal `json:"byCategory"`
	Total      float64        `json:"total"`
}

type FinancialReport struct {
	Income     IncomeSection  `json:"income"`
	Expenses   ExpenseSection `json:"expenses"`
	NetBalance float64        `json:"netBalance"`
}

type DonorTotal struct {
	UserID           int        `json:"user_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	State            string     `json:"state"`
	DonationCount    int        `json:"donation_count"`
	TotalDonated     float64    `json:"total_donated"`
	LastDonationDate *time.Time `json:"last_donation_date"`
}

type StateDonors struct {
	State       string  `json:"state"`
	DonorCount  int     `json:"donor_count"`
	TotalAmount float64 `json:"total_amount"`
}

type MonthlyNewDonors struct {
	Month     string `json:"month"`
	NewDonors int    `json:"new_donors"`
}

type DonorReport struct {
	TopDonors        []DonorTotal       `json:"topDonors"`
	DonorsByState    []StateDonors      `json:"donorsByState"`
	NewDonorsMonthly []MonthlyNewDonors `json:"newDonorsMonthly"`
}

type CategoryPerformance struct {
	Category      string  `json:"category"`
	CampaignCount int     `json:"campaign_count"`
	TotalTarget   float64 `json:"total_target"`
	TotalRaised   float64 `json:"total_raised"`
	AvgCompletion float64 `json:"avg_completion"`
}

type CampaignPerformanceReport struct {
	Campaigns  []CampaignSummary     `json:"campaigns"`
	ByCategory []CategoryPerformance `json:"byCategory"`
}

type BeneficiaryCategoryStats struct {
	Category       string `json:"category"`
	TotalCount     int    `json:"total_count"`
	ActiveCount    int    `json:"active_count"`
	CompletedCount int    `json:"completed_count"`
}

type AidByType struct {
	AidType             string  `json:"aid_type"`
	DistributionCount   int     `json:"distribution_count"`
	TotalAmount         float64 `json:"total_amount"`
	UniqueBeneficiaries int     `json:"unique_beneficiaries"`
}

type StateAid struct {
	State            string  `json:"state"`
	BeneficiaryCount int     `json:"beneficiary_count"`
	AidDistributions int     `json:"aid_distributions"`
	TotalAidAmount   float64 `json:"total_aid_amount"`
}

type BeneficiaryReport struct {
	ByCategory      []BeneficiaryCategoryStats `json:"byCategory"`
	AidDistribution []AidByType                `json:"aidDistribution"`
	StateWise       []StateAid                 `json:"stateWise"`
}

type ReceiptEntry struct {
	ReceiptNumber string    `json:"receipt_number"`
	FinancialYear string    `json:"financial_year"`
	IssuedDate    time.Time `json:"issued_date"`
	Amount        float64   `json:"amount"`
	DonorName     string    `json:"donor_name"`
	PANNumber     string    `json:"pan_number"`
	CampaignTitle string    `json:"campaign_title"`
}

type YearTotal struct {
	FinancialYear string  `json:"financial_year"`
	TotalReceipts int     `json:"total_receipts"`
	TotalAmount   float64 `json:"total_amount"`
}

type TaxReceiptReport struct {
	Receipts []ReceiptEntry `json:"receipts"`
	Summary  []YearTotal    `json:"summary"`
}
