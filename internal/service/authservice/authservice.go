package authservice

import (
	"context"
	"net/mail"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/auth"
)

const minPasswordLen = 8

var ErrInvalidCredentials = domain.NewError(domain.ErrAuth, "Invalid credentials")

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type Metrics interface {
	UserRegistered(role string)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	metrics     Metrics
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, metrics Metrics) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		metrics:     metrics,
	}
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Validation("Invalid email address")
	}
	return nil
}

// Register creates an active account. Only donor and volunteer may be chosen
// by the caller; an empty role means donor.
func (s *Service) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user.Name == "" || user.Email == "" || password == "" {
		return nil, domain.Validation("Name, email and password are required")
	}
	if err := validateEmail(user.Email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLen {
		return nil, domain.Validation("Password must be at least 8 characters")
	}
	if user.Role == "" {
		user.Role = domain.RoleDonor
	}
	if !user.Role.SelfRegistrable() {
		return nil, domain.Validation("Role must be donor or volunteer")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("email already registered", zap.String("email", user.Email))
		return nil, domain.Conflict("Email already registered")
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hashedPassword
	user.Status = domain.StatusActive

	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	s.metrics.UserRegistered(newUser.Role.String())
	zap.L().Info("user successfully registered", zap.String("email", newUser.Email), zap.Int("user_id", newUser.ID))
	return newUser, nil
}

// Authenticate only admits active users.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.Validation("Email and password are required")
	}
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user, time.Now().Add(auth.TokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates an active admin with the given credentials unless the
// email is already registered. Empty credentials are a no-op.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role != domain.RoleAdmin {
			zap.L().Warn("bootstrap admin email belongs to a non-admin account", zap.String("email", email))
		}
		return nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
	}
	if _, err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	zap.L().Info("bootstrap admin created", zap.String("email", email))
	return nil
}

func (s *Service) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if filter.Role != "" {
		if _, ok := domain.ParseRole(filter.Role); !ok {
			return nil, domain.Validation("Invalid role")
		}
	}
	return s.userRepo.List(ctx, filter)
}

// UpdateUser is the only path that changes a user's role or status.
func (s *Service) UpdateUser(ctx context.Context, user *domain.User) error {
	if user.Name == "" || user.Email == "" {
		return domain.Validation("Name and email are required")
	}
	if err := validateEmail(user.Email); err != nil {
		return err
	}
	if !user.Role.Valid() {
		return domain.Validation("Invalid role")
	}
	switch user.Status {
	case domain.StatusActive, domain.StatusInactive:
	default:
		return domain.Validation("Status must be active or inactive")
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	zap.L().Info("user updated", zap.Int("user_id", user.ID), zap.String("role", user.Role.String()))
	return nil
}
