package beneficiaryservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Beneficiary with aid history", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Beneficiary{ID: 1, Name: "Ravi"}, nil)
		repo.EXPECT().AidHistory(gomock.Any(), 1).Return([]domain.AidDistribution{{ID: 3, AidType: "food"}}, nil)

		b, history, err := service.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Ravi", b.Name)
		assert.Len(t, history, 1)
	})

	t.Run("Empty history is not nil", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Beneficiary{ID: 1}, nil)
		repo.EXPECT().AidHistory(gomock.Any(), 1).Return(nil, nil)

		_, history, err := service.Get(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, history)
	})

	t.Run("Missing beneficiary", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 9).Return(nil, nil)
		repo.EXPECT().AidHistory(gomock.Any(), 9).Return(nil, nil)

		_, _, err := service.Get(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Beneficiary not found")
	})

	t.Run("History failure", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Beneficiary{ID: 1}, nil).AnyTimes()
		repo.EXPECT().AidHistory(gomock.Any(), 1).Return(nil, errors.New("database error"))

		_, _, err := service.Get(ctx, 1)
		assert.EqualError(t, err, "database error")
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	negative := -1

	tests := []struct {
		name        string
		beneficiary *domain.Beneficiary
		prepareMock func(repo *MockRepo)
		expectedID  int
		expectedErr string
	}{
		{
			name:        "Registered by volunteer",
			beneficiary: &domain.Beneficiary{Name: "Ravi", Category: "education", IncomeLevel: "BPL"},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Beneficiary) (int, error) {
					require.NotNil(t, b.RegisteredBy)
					assert.Equal(t, 7, *b.RegisteredBy)
					assert.Equal(t, domain.StatusActive, b.Status)
					return 11, nil
				})
			},
			expectedID: 11,
		},
		{
			name:        "Missing category",
			beneficiary: &domain.Beneficiary{Name: "Ravi"},
			prepareMock: func(repo *MockRepo) {},
			expectedErr: "Name and category are required",
		},
		{
			name:        "Blank name",
			beneficiary: &domain.Beneficiary{Name: "   ", Category: "health"},
			prepareMock: func(repo *MockRepo) {},
			expectedErr: "Name and category are required",
		},
		{
			name:        "Negative age",
			beneficiary: &domain.Beneficiary{Name: "Ravi", Category: "health", Age: &negative},
			prepareMock: func(repo *MockRepo) {},
			expectedErr: "Age must not be negative",
		},
		{
			name:        "Repository failure",
			beneficiary: &domain.Beneficiary{Name: "Ravi", Category: "health"},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(0, errors.New("database error"))
			},
			expectedErr: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			id, err := service.Register(ctx, tt.beneficiary, 7)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deactivate", func(t *testing.T) {
		service, repo := NewMock(t)
		b := &domain.Beneficiary{ID: 1, Name: "Ravi", Category: "health", Status: domain.StatusInactive}
		repo.EXPECT().Update(ctx, b).Return(nil)
		assert.NoError(t, service.Update(ctx, b))
	})

	t.Run("Unknown status", func(t *testing.T) {
		service, _ := NewMock(t)
		b := &domain.Beneficiary{ID: 1, Name: "Ravi", Category: "health", Status: "archived"}
		assert.ErrorIs(t, service.Update(ctx, b), domain.ErrValidation)
	})

	t.Run("Missing beneficiary", func(t *testing.T) {
		service, repo := NewMock(t)
		b := &domain.Beneficiary{ID: 9, Name: "Ravi", Category: "health"}
		repo.EXPECT().Update(ctx, b).Return(domain.NotFound("Beneficiary not found"))
		assert.ErrorIs(t, service.Update(ctx, b), domain.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().Delete(ctx, 1).Return(nil)
	assert.NoError(t, service.Delete(ctx, 1))

	repo.EXPECT().Delete(ctx, 2).Return(domain.NotFound("Beneficiary not found"))
	assert.ErrorIs(t, service.Delete(ctx, 2), domain.ErrNotFound)
}

func TestRecordAid(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		aid         *domain.AidDistribution
		prepareMock func(repo *MockRepo)
		expectedID  int
		expectedErr error
	}{
		{
			name: "Recorded",
			aid:  &domain.AidDistribution{BeneficiaryID: 1, AidType: "food", Amount: 500, DistributionDate: date},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetByID(ctx, 1).Return(&domain.Beneficiary{ID: 1}, nil)
				repo.EXPECT().CreateAid(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.AidDistribution) (int, error) {
					require.NotNil(t, a.DistributedBy)
					assert.Equal(t, 7, *a.DistributedBy)
					return 21, nil
				})
			},
			expectedID: 21,
		},
		{
			name:        "Missing date",
			aid:         &domain.AidDistribution{BeneficiaryID: 1, AidType: "food"},
			prepareMock: func(repo *MockRepo) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Missing aid type",
			aid:         &domain.AidDistribution{BeneficiaryID: 1, DistributionDate: date},
			prepareMock: func(repo *MockRepo) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "Unknown beneficiary",
			aid:  &domain.AidDistribution{BeneficiaryID: 9, AidType: "food", DistributionDate: date},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetByID(ctx, 9).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Unknown campaign",
			aid:  &domain.AidDistribution{BeneficiaryID: 1, AidType: "food", DistributionDate: date},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetByID(ctx, 1).Return(&domain.Beneficiary{ID: 1}, nil)
				repo.EXPECT().CreateAid(ctx, gomock.Any()).Return(0, domain.NotFound("Campaign not found"))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			id, err := service.RecordAid(ctx, tt.aid, 7)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().Totals(gomock.Any()).Return(&domain.BeneficiaryTotals{TotalBeneficiaries: 5, ActiveBeneficiaries: 4, BPLCount: 2}, nil)
	repo.EXPECT().ActiveByCategory(gomock.Any()).Return([]domain.CategoryCount{{Category: "health", Count: 4}}, nil)
	repo.EXPECT().TopStates(gomock.Any()).Return([]domain.StateCount{{State: "Kerala", Count: 3}}, nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total.BPLCount)
	assert.Equal(t, "health", stats.ByCategory[0].Category)
	assert.Equal(t, "Kerala", stats.ByState[0].State)
}
