package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/pg"
)

const userColumns = `user_id, name, email, COALESCE(phone, ''), password_hash, role,
	COALESCE(pan_number, ''), COALESCE(address, ''), COALESCE(city, ''),
	COALESCE(state, ''), COALESCE(pincode, ''), status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.Role,
		&user.PANNumber, &user.Address, &user.City, &user.State, &user.Pincode, &user.Status, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns nil without error when no user has the email.
func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindActiveByEmail ignores inactive accounts.
func (repo *Repository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = $1 AND status = $2"
	user, err := scanUser(repo.db.QueryRow(ctx, query, email, domain.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find active user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE user_id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Create maps a duplicate email to a conflict error.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, phone, password_hash, role, pan_number, address, city, state, pincode, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)
		RETURNING user_id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Email, user.Phone, user.PasswordHash, string(user.Role),
		user.PANNumber, user.Address, user.City, user.State, user.Pincode, user.Status).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.Conflict("Email already registered")
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	f := pg.NewFilter().
		EqIfSet("role", filter.Role).
		EqIfSet("status", filter.Status)
	query := "SELECT " + userColumns + " FROM users" + f.Where() + " ORDER BY created_at DESC"

	rows, err := repo.db.Query(ctx, query, f.Args()...)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update replaces the profile, role and status of an existing user.
func (repo *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, phone = NULLIF($3, ''), role = $4, pan_number = NULLIF($5, ''),
			address = NULLIF($6, ''), city = NULLIF($7, ''), state = NULLIF($8, ''), pincode = NULLIF($9, ''), status = $10
		WHERE user_id = $11
	`
	tag, err := repo.db.Exec(ctx, query, user.Name, user.Email, user.Phone, string(user.Role), user.PANNumber,
		user.Address, user.City, user.State, user.Pincode, user.Status, user.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return domain.Conflict("Email already registered")
		}
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("User not found")
	}
	return nil
}
