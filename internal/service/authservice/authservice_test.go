package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/auth"
)

type mocks struct {
	repo    *MockRepo
	hash    *auth.MockHashServiceInterface
	jwt     *auth.MockJWTServiceInterface
	metrics *MockMetrics
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		hash:    auth.NewMockHashServiceInterface(ctrl),
		jwt:     auth.NewMockJWTServiceInterface(ctrl),
		metrics: NewMockMetrics(ctrl),
	}
	return New(m.repo, m.hash, m.jwt, m.metrics), m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		user        *domain.User
		password    string
		prepareMock func(m mocks)
		expectedErr error
		checkUser   func(t *testing.T, u *domain.User)
	}{
		{
			name:     "Successful registration defaults to donor",
			user:     &domain.User{Name: "A", Email: "a@x.com"},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("pw123456").Return("hashed", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					u.ID = 1
					return u, nil
				})
				m.metrics.EXPECT().UserRegistered("donor")
			},
			checkUser: func(t *testing.T, u *domain.User) {
				assert.Equal(t, 1, u.ID)
				assert.Equal(t, domain.RoleDonor, u.Role)
				assert.Equal(t, "hashed", u.PasswordHash)
				assert.Equal(t, domain.StatusActive, u.Status)
			},
		},
		{
			name:     "Volunteer may self register",
			user:     &domain.User{Name: "V", Email: "v@x.com", Role: domain.RoleVolunteer},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "v@x.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("pw123456").Return("hashed", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					u.ID = 2
					return u, nil
				})
				m.metrics.EXPECT().UserRegistered("volunteer")
			},
			checkUser: func(t *testing.T, u *domain.User) {
				assert.Equal(t, domain.RoleVolunteer, u.Role)
			},
		},
		{
			name:        "Admin role rejected",
			user:        &domain.User{Name: "A", Email: "a@x.com", Role: domain.RoleAdmin},
			password:    "pw123456",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Unknown role rejected",
			user:        &domain.User{Name: "A", Email: "a@x.com", Role: domain.Role("root")},
			password:    "pw123456",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Missing name",
			user:        &domain.User{Email: "a@x.com"},
			password:    "pw123456",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Short password",
			user:        &domain.User{Name: "A", Email: "a@x.com"},
			password:    "short",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Malformed email",
			user:        &domain.User{Name: "A", Email: "not-an-email"},
			password:    "pw123456",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:     "Email already registered",
			user:     &domain.User{Name: "A", Email: "a@x.com"},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name:     "Duplicate caught by unique constraint",
			user:     &domain.User{Name: "A", Email: "a@x.com"},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("pw123456").Return("hashed", nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, domain.Conflict("Email already registered"))
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name:     "Error hashing password",
			user:     &domain.User{Name: "A", Email: "a@x.com"},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("pw123456").Return("", errors.New("hashing error"))
			},
			expectedErr: errors.New("hashing error"),
		},
		{
			name:     "Error finding user",
			user:     &domain.User{Name: "A", Email: "a@x.com"},
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Register(ctx, tt.user, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(err, tt.expectedErr) {
					return
				}
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}
			require.NoError(t, err)
			tt.checkUser(t, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	active := &domain.User{ID: 1, Email: "a@x.com", PasswordHash: "hashed", Role: domain.RoleDonor, Status: domain.StatusActive}

	tests := []struct {
		name        string
		email       string
		password    string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name:     "Valid credentials",
			email:    "a@x.com",
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindActiveByEmail(ctx, "a@x.com").Return(active, nil)
				m.hash.EXPECT().ComparePassword("hashed", "pw123456").Return(true)
			},
		},
		{
			name:     "Unknown or inactive user",
			email:    "gone@x.com",
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindActiveByEmail(ctx, "gone@x.com").Return(nil, nil)
			},
			expectedErr: domain.ErrAuth,
		},
		{
			name:     "Wrong password",
			email:    "a@x.com",
			password: "wrong-password",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindActiveByEmail(ctx, "a@x.com").Return(active, nil)
				m.hash.EXPECT().ComparePassword("hashed", "wrong-password").Return(false)
			},
			expectedErr: domain.ErrAuth,
		},
		{
			name:        "Missing password",
			email:       "a@x.com",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:     "Repository failure is not an auth error",
			email:    "a@x.com",
			password: "pw123456",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindActiveByEmail(ctx, "a@x.com").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Authenticate(ctx, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, user)
				if !errors.Is(err, tt.expectedErr) {
					assert.EqualError(t, err, tt.expectedErr.Error())
					assert.NotErrorIs(t, err, domain.ErrAuth)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, active, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	user := &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleDonor}

	m.jwt.EXPECT().GenerateJWT(user, gomock.Any()).DoAndReturn(func(_ *domain.User, exp time.Time) (string, error) {
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
		return "token", nil
	})
	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	m.jwt.EXPECT().GenerateJWT(user, gomock.Any()).Return("", errors.New("no secret"))
	_, err = service.GenerateToken(user)
	assert.Error(t, err)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("No credentials configured", func(t *testing.T) {
		service, _ := NewMock(t)
		assert.NoError(t, service.EnsureAdmin(ctx, "", ""))
	})

	t.Run("Creates admin once", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByEmail(ctx, "admin@x.com").Return(nil, nil)
		m.hash.EXPECT().HashPassword("adminpass").Return("hashed", nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.Equal(t, domain.StatusActive, u.Status)
			assert.Equal(t, "hashed", u.PasswordHash)
			return u, nil
		})

		assert.NoError(t, service.EnsureAdmin(ctx, "admin@x.com", "adminpass"))
	})

	t.Run("Existing account untouched", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByEmail(ctx, "admin@x.com").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		assert.NoError(t, service.EnsureAdmin(ctx, "admin@x.com", "adminpass"))
	})

	t.Run("Repository failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByEmail(ctx, "admin@x.com").Return(nil, errors.New("database error"))

		assert.Error(t, service.EnsureAdmin(ctx, "admin@x.com", "adminpass"))
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.repo.EXPECT().List(ctx, domain.UserFilter{Role: "volunteer"}).Return([]domain.User{{ID: 2}}, nil)
	users, err := service.ListUsers(ctx, domain.UserFilter{Role: "volunteer"})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = service.ListUsers(ctx, domain.UserFilter{Role: "root"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		user        *domain.User
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name: "Promote to admin",
			user: &domain.User{ID: 2, Name: "V", Email: "v@x.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:        "Invalid role",
			user:        &domain.User{ID: 2, Name: "V", Email: "v@x.com", Role: "root", Status: domain.StatusActive},
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Invalid status",
			user:        &domain.User{ID: 2, Name: "V", Email: "v@x.com", Role: domain.RoleDonor, Status: "banned"},
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Missing name",
			user:        &domain.User{ID: 2, Email: "v@x.com", Role: domain.RoleDonor, Status: domain.StatusActive},
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "Unknown user",
			user: &domain.User{ID: 99, Name: "V", Email: "v@x.com", Role: domain.RoleDonor, Status: domain.StatusInactive},
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Update(ctx, gomock.Any()).Return(domain.NotFound("User not found"))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.UpdateUser(ctx, tt.user)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
