package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/internal/dto"
	"github.com/GlebRadaev/charity/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedID    int
	}{
		{
			name: "Successful registration",
			body: `{"name":"Asha","email":"asha@example.org","password":"password123","city":"Kochi"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any(), "password123").
					DoAndReturn(func(_ context.Context, u *domain.User, _ string) (*domain.User, error) {
						assert.Equal(t, "asha@example.org", u.Email)
						assert.Equal(t, "Kochi", u.City)
						u.ID = 1
						return u, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedID:   1,
		},
		{
			name: "Email already registered",
			body: `{"name":"Asha","email":"asha@example.org","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any(), "password123").
					Return(nil, domain.Conflict("Email already registered"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email already registered",
		},
		{
			name: "Admin role requested",
			body: `{"name":"Asha","email":"asha@example.org","password":"password123","role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any(), "password123").
					Return(nil, domain.Validation("Role must be donor or volunteer"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Role must be donor or volunteer",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Store failure",
			body: `{"name":"Asha","email":"asha@example.org","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any(), "password123").
					Return(nil, errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.RegisterResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedID, resp.UserID)
			assert.Equal(t, "User registered successfully", resp.Message)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: 1, Name: "Asha", Email: "asha@example.org", Role: domain.RoleDonor, PasswordHash: "hashed"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"asha@example.org","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asha@example.org", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"asha@example.org","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asha@example.org", "wrongpassword").
					Return(nil, domain.NewError(domain.ErrAuth, "Invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Missing password",
			body: `{"email":"asha@example.org"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asha@example.org", "").
					Return(nil, domain.Validation("Email and password are required"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email and password are required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"asha@example.org","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asha@example.org", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.NotContains(t, rr.Body.String(), "hashed")
			var resp dto.LoginResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, 1, resp.User.UserID)
			assert.Equal(t, domain.RoleDonor, resp.User.Role)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}
