package dto

import (
	"time"

	"github.com/GlebRadaev/charity/internal/domain"
)

const dateLayout = "2006-01-02"

type MessageResponseDTO struct {
	Message string `json:"message"`
}

type HealthResponseDTO struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"Charity Management System API is running"`
	Timestamp string `json:"timestamp" example:"2024-08-15T10:30:00Z"`
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(field, s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.Validation("Invalid " + field)
	}
	return t, nil
}

func parseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
