package dto

import "github.com/GlebRadaev/charity/internal/domain"

type ReceiptResponseDTO struct {
	Receipt *domain.ReceiptEntry `json:"receipt"`
}

// FinancialQuery carries the raw financial report query parameters.
type FinancialQuery struct {
	StartDate  string
	EndDate    string
	CampaignID int
}

func (q FinancialQuery) ToDomain() (domain.FinancialFilter, error) {
	var (
		f   = domain.FinancialFilter{CampaignID: q.CampaignID}
		err error
	)
	if f.StartDate, err = parseOptionalDate("start_date", q.StartDate); err != nil {
		return f, err
	}
	if f.EndDate, err = parseOptionalDate("end_date", q.EndDate); err != nil {
		return f, err
	}
	return f, nil
}
