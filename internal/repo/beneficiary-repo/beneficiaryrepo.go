package beneficiaryrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
)

const beneficiaryColumns = `b.beneficiary_id, b.name, b.age, COALESCE(b.gender, ''), COALESCE(b.aadhaar_number, ''),
	COALESCE(b.phone, ''), COALESCE(b.email, ''), COALESCE(b.address, ''), COALESCE(b.city, ''),
	COALESCE(b.state, ''), COALESCE(b.pincode, ''), b.category, COALESCE(b.income_level, ''),
	b.family_members, COALESCE(b.description, ''), b.status, b.registered_by, b.registered_at,
	COALESCE(u.name, '')`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func beneficiaryFields(b *domain.Beneficiary) []any {
	return []any{&b.ID, &b.Name, &b.Age, &b.Gender, &b.AadhaarNumber, &b.Phone, &b.Email, &b.Address,
		&b.City, &b.State, &b.Pincode, &b.Category, &b.IncomeLevel, &b.FamilyMembers, &b.Description,
		&b.Status, &b.RegisteredBy, &b.RegisteredAt, &b.RegisteredByName}
}

func (r *Repository) List(ctx context.Context, filter domain.BeneficiaryFilter) ([]domain.Beneficiary, error) {
	f := pg.NewFilter().
		EqIfSet("b.status", filter.Status).
		EqIfSet("b.category", filter.Category).
		EqIfSet("b.state", filter.State).
		EqIfSet("b.income_level", filter.IncomeLevel)
	query := "SELECT " + beneficiaryColumns + `
		FROM beneficiaries b
		LEFT JOIN users u ON b.registered_by = u.user_id` + f.Where() + " ORDER BY b.registered_at DESC"

	rows, err := r.db.Query(ctx, query, f.Args()...)
	if err != nil {
		zap.L().Error("can't get beneficiaries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	beneficiaries := []domain.Beneficiary{}
	for rows.Next() {
		var b domain.Beneficiary
		if err := rows.Scan(beneficiaryFields(&b)...); err != nil {
			zap.L().Error("can't scan beneficiary row", zap.Error(err))
			return nil, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, rows.Err()
}

// GetByID returns nil without error for an unknown id.
func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Beneficiary, error) {
	query := "SELECT " + beneficiaryColumns + `, COALESCE(u.email, '')
		FROM beneficiaries b
		LEFT JOIN users u ON b.registered_by = u.user_id
		WHERE b.beneficiary_id = $1`

	var b domain.Beneficiary
	err := r.db.QueryRow(ctx, query, id).Scan(append(beneficiaryFields(&b), &b.RegisteredByEmail)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find beneficiary", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, b *domain.Beneficiary) (int, error) {
	query := `
		INSERT INTO beneficiaries (name, age, gender, aadhaar_number, phone, email, address, city, state,
			pincode, category, income_level, family_members, description, registered_by)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, NULLIF($12, ''), $13, NULLIF($14, ''), $15)
		RETURNING beneficiary_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, b.Name, b.Age, b.Gender, b.AadhaarNumber, b.Phone, b.Email, b.Address,
		b.City, b.State, b.Pincode, b.Category, b.IncomeLevel, b.FamilyMembers, b.Description, b.RegisteredBy).Scan(&id)
	if err != nil {
		zap.L().Error("can't save beneficiary", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, b *domain.Beneficiary) error {
	query := `
		UPDATE beneficiaries
		SET name = $1, age = $2, gender = NULLIF($3, ''), aadhaar_number = NULLIF($4, ''), phone = NULLIF($5, ''),
			email = NULLIF($6, ''), address = NULLIF($7, ''), city = NULLIF($8, ''), state = NULLIF($9, ''),
			pincode = NULLIF($10, ''), category = $11, income_level = NULLIF($12, ''), family_members = $13,
			description = NULLIF($14, ''), status = $15
		WHERE beneficiary_id = $16
	`
	tag, err := r.db.Exec(ctx, query, b.Name, b.Age, b.Gender, b.AadhaarNumber, b.Phone, b.Email, b.Address,
		b.City, b.State, b.Pincode, b.Category, b.IncomeLevel, b.FamilyMembers, b.Description, b.Status, b.ID)
	if err != nil {
		zap.L().Error("can't update beneficiary", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Beneficiary not found")
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM beneficiaries WHERE beneficiary_id = $1", id)
	if err != nil {
		zap.L().Error("can't delete beneficiary", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Beneficiary not found")
	}
	return nil
}

func (r *Repository) AidHistory(ctx context.Context, beneficiaryID int) ([]domain.AidDistribution, error) {
	query := `
		SELECT ad.distribution_id, ad.beneficiary_id, ad.campaign_id, ad.aid_type, COALESCE(ad.amount, 0),
			COALESCE(ad.description, ''), ad.quantity, ad.distribution_date, ad.distributed_by,
			COALESCE(ad.remarks, ''), COALESCE(c.title, ''), COALESCE(u.name, '')
		FROM aid_distribution ad
		LEFT JOIN campaigns c ON ad.campaign_id = c.campaign_id
		LEFT JOIN users u ON ad.distributed_by = u.user_id
		WHERE ad.beneficiary_id = $1
		ORDER BY ad.distribution_date DESC
	`
	rows, err := r.db.Query(ctx, query, beneficiaryID)
	if err != nil {
		zap.L().Error("can't get aid history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	history := []domain.AidDistribution{}
	for rows.Next() {
		var a domain.AidDistribution
		err := rows.Scan(&a.ID, &a.BeneficiaryID, &a.CampaignID, &a.AidType, &a.Amount, &a.Description, &a.Quantity,
			&a.DistributionDate, &a.DistributedBy, &a.Remarks, &a.CampaignTitle, &a.DistributedByName)
		if err != nil {
			zap.L().Error("can't scan aid row", zap.Error(err))
			return nil, err
		}
		history = append(history, a)
	}
	return history, rows.Err()
}

// CreateAid maps a missing beneficiary or campaign to a not found error.
func (r *Repository) CreateAid(ctx context.Context, a *domain.AidDistribution) (int, error) {
	query := `
		INSERT INTO aid_distribution (beneficiary_id, campaign_id, aid_type, amount, description, quantity,
			distribution_date, distributed_by, remarks)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''))
		RETURNING distribution_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, a.BeneficiaryID, a.CampaignID, a.AidType, a.Amount, a.Description, a.Quantity,
		a.DistributionDate, a.DistributedBy, a.Remarks).Scan(&id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			if strings.Contains(pg.ConstraintName(err), "campaign") {
				return 0, domain.NotFound("Campaign not found")
			}
			return 0, domain.NotFound("Beneficiary not found")
		}
		zap.L().Error("can't save aid distribution", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) Totals(ctx context.Context) (*domain.BeneficiaryTotals, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE income_level = 'BPL')
		FROM beneficiaries
	`
	var t domain.BeneficiaryTotals
	if err := r.db.QueryRow(ctx, query).Scan(&t.TotalBeneficiaries, &t.ActiveBeneficiaries, &t.BPLCount); err != nil {
		zap.L().Error("can't get beneficiary totals", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ActiveByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM beneficiaries
		WHERE status = $1
		GROUP BY category
		ORDER BY category
	`
	rows, err := r.db.Query(ctx, query, domain.StatusActive)
	if err != nil {
		zap.L().Error("can't get beneficiaries by category", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TopStates returns the ten states with the most active beneficiaries.
func (r *Repository) TopStates(ctx context.Context) ([]domain.StateCount, error) {
	query := `
		SELECT state, COUNT(*) AS cnt
		FROM beneficiaries
		WHERE status = $1 AND state IS NOT NULL
		GROUP BY state
		ORDER BY cnt DESC
		LIMIT 10
	`
	rows, err := r.db.Query(ctx, query, domain.StatusActive)
	if err != nil {
		zap.L().Error("can't get beneficiaries by state", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := []domain.StateCount{}
	for rows.Next() {
		var c domain.StateCount
		if err := rows.Scan(&c.State, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
