package dto

import "github.com/GlebRadaev/charity/internal/domain"

type CampaignRequestDTO struct {
	Title        string  `json:"title" example:"Flood relief 2024"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category" example:"disaster"`
	TargetAmount float64 `json:"target_amount" example:"100000"`
	StartDate    string  `json:"start_date" example:"2024-07-01"`
	EndDate      string  `json:"end_date,omitempty" example:"2024-12-31"`
	Location     string  `json:"location,omitempty" example:"Wayanad"`
	State        string  `json:"state,omitempty" example:"Kerala"`
	ImageURL     string  `json:"image_url,omitempty"`
	Status       string  `json:"status,omitempty" example:"active"`
}

// ToDomain leaves a missing start date zero so the service reports it as a
// missing field.
func (r CampaignRequestDTO) ToDomain() (*domain.Campaign, error) {
	c := &domain.Campaign{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		TargetAmount: r.TargetAmount,
		Location:     r.Location,
		State:        r.State,
		ImageURL:     r.ImageURL,
		Status:       r.Status,
	}
	if r.StartDate != "" {
		start, err := parseDate("start_date", r.StartDate)
		if err != nil {
			return nil, err
		}
		c.StartDate = start
	}
	end, err := parseOptionalDate("end_date", r.EndDate)
	if err != nil {
		return nil, err
	}
	c.EndDate = end
	return c, nil
}

type CampaignsResponseDTO struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

type CampaignResponseDTO struct {
	Campaign *domain.Campaign      `json:"campaign"`
	Stats    *domain.CampaignStats `json:"stats"`
}

type CampaignSummaryResponseDTO struct {
	Summary *domain.CampaignSummary `json:"summary"`
}

type CreateCampaignResponseDTO struct {
	Message    string `json:"message" example:"Campaign created successfully"`
	CampaignID int    `json:"campaignId" example:"1"`
}
