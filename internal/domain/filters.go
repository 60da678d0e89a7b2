package domain

type UserFilter struct {
	Role   string
	Status string
}

type CampaignFilter struct {
	Status   string
	Category string
	State    string
}

type DonationFilter struct {
	CampaignID int
	DonorID    int
	Status     string
}

type BeneficiaryFilter struct {
	Status      string
	Category    string
	State       string
	IncomeLevel string
}
