package campaignrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/charity/internal/domain"
)

var campaignCols = []string{"campaign_id", "title", "description", "category", "target_amount", "raised_amount",
	"start_date", "end_date", "location", "state", "image_url", "status", "created_by", "created_at"}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Now()

	tests := []struct {
		name      string
		filter    domain.CampaignFilter
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name:   "All filters",
			filter: domain.CampaignFilter{Status: "active", Category: "health", State: "KA"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c WHERE c.status = $1 AND c.category = $2 AND c.state = $3 ORDER BY c.created_at DESC")).
					WithArgs("active", "health", "KA").
					WillReturnRows(pgxmock.NewRows(campaignCols).
						AddRow(1, "C1", "", "health", 10000.0, 2500.0, start, nil, "", "KA", "", "active", nil, created))
			},
			expectLen: 1,
		},
		{
			name:   "No filters",
			filter: domain.CampaignFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c ORDER BY c.created_at DESC")).
					WillReturnRows(pgxmock.NewRows(campaignCols))
			},
			expectLen: 0,
		},
		{
			name:   "Database error",
			filter: domain.CampaignFilter{Category: "health"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c WHERE c.category = $1")).
					WithArgs("health").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tt.expectLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	creator := 2
	cols := append(append([]string{}, campaignCols...), "creator_name")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.campaign_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(1, "C1", "desc", "health", 10000.0, 0.0, start, nil, "", "", "", "active", &creator, start, "Admin"))

	c, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Admin", c.CreatorName)
	assert.Equal(t, 10000.0, c.TargetAmount)
	require.NotNil(t, c.CreatedBy)
	assert.Equal(t, 2, *c.CreatedBy)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.campaign_id = $1")).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	c, err = repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_StatsAndSummary(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE campaign_id = $1 AND payment_status = $2")).
		WithArgs(1, "completed").
		WillReturnRows(pgxmock.NewRows([]string{"total_donations", "unique_donors"}).AddRow(3, 2))

	stats, err := repo.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.CampaignStats{TotalDonations: 3, UniqueDonors: 2}, stats)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_summary WHERE campaign_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_id", "title", "category", "status", "target_amount",
			"raised_amount", "remaining_amount", "completion_percentage", "total_donations", "unique_donors"}).
			AddRow(1, "C1", "health", "active", 10000.0, 2500.0, 7500.0, 25.0, 1, 1))

	summary, err := repo.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, summary.RemainingAmount)
	assert.Equal(t, 25.0, summary.CompletionPercentage)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_summary WHERE campaign_id = $1")).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)

	summary, err = repo.Summary(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	creator := 1
	c := &domain.Campaign{Title: "C1", Category: "health", TargetAmount: 10000, StartDate: time.Now(), CreatedBy: &creator}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
		WithArgs("C1", "", "health", 10000.0, pgxmock.AnyArg(), pgxmock.AnyArg(), "", "", "", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_id"}).AddRow(7))

	id, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO campaigns")).
		WithArgs(anyArgs(10)...).
		WillReturnError(errors.New("database error"))

	_, err = repo.Create(context.Background(), c)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateDelete(t *testing.T) {
	repo, mock := NewMock(t)
	c := &domain.Campaign{ID: 4, Title: "C", Category: "health", TargetAmount: 500, StartDate: time.Now(), Status: "closed"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
		WithArgs("C", "", "health", 500.0, pgxmock.AnyArg(), pgxmock.AnyArg(), "", "", "", "closed", 4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), c))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
		WithArgs("C", "", "health", 500.0, pgxmock.AnyArg(), pgxmock.AnyArg(), "", "", "", "closed", 4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), c), domain.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE campaign_id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 4))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE campaign_id = $1")).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 5), domain.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE campaign_id = $1")).
		WithArgs(6).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), 6))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE campaign_id = $1")).
		WithArgs(8).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "donations_campaign_id_fkey"})
	err := repo.Delete(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Campaign has donations", err.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}
