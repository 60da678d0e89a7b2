package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/charity/internal/domain"
)

func TestCampaignRequestToDomain(t *testing.T) {
	tests := []struct {
		name      string
		req       CampaignRequestDTO
		wantStart time.Time
		wantEnd   bool
		wantErr   string
	}{
		{
			name:      "Calendar dates",
			req:       CampaignRequestDTO{Title: "A", StartDate: "2024-07-01", EndDate: "2024-12-31"},
			wantStart: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   true,
		},
		{
			name:      "Timestamp",
			req:       CampaignRequestDTO{Title: "A", StartDate: "2024-07-01T00:00:00Z"},
			wantStart: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Missing start stays zero",
			req:  CampaignRequestDTO{Title: "A"},
		},
		{
			name:    "Bad start",
			req:     CampaignRequestDTO{Title: "A", StartDate: "01/07/2024"},
			wantErr: "Invalid start_date",
		},
		{
			name:    "Bad end",
			req:     CampaignRequestDTO{Title: "A", StartDate: "2024-07-01", EndDate: "soon"},
			wantErr: "Invalid end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.req.ToDomain()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(c.StartDate))
			assert.Equal(t, tt.wantEnd, c.EndDate != nil)
		})
	}
}

func TestAidRequestToDomain(t *testing.T) {
	a, err := AidRequestDTO{AidType: "food", DistributionDate: "2024-09-01"}.ToDomain(4)
	require.NoError(t, err)
	assert.Equal(t, 4, a.BeneficiaryID)
	assert.Equal(t, 2024, a.DistributionDate.Year())

	_, err = AidRequestDTO{AidType: "food", DistributionDate: "yesterday"}.ToDomain(4)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFinancialQueryToDomain(t *testing.T) {
	f, err := FinancialQuery{StartDate: "2024-01-01", EndDate: "2024-12-31", CampaignID: 2}.ToDomain()
	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, 2, f.CampaignID)

	f, err = FinancialQuery{}.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, f.StartDate)

	_, err = FinancialQuery{EndDate: "x"}.ToDomain()
	assert.EqualError(t, err, "Invalid end_date")
}

func TestNewLoginResponse(t *testing.T) {
	resp := NewLoginResponse("tok", &domain.User{ID: 3, Name: "Asha", Email: "a@x.com", Role: domain.RoleDonor, PasswordHash: "h"})
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, 3, resp.User.UserID)
	assert.Equal(t, domain.RoleDonor, resp.User.Role)
}
