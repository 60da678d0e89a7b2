package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/charity/internal/domain"
)

func tokenFor(t *testing.T, svc *JWTService, role domain.Role, exp time.Time) string {
	t.Helper()
	token, err := svc.GenerateJWT(&domain.User{ID: 7, Email: "u@x.com", Role: role}, exp)
	require.NoError(t, err)
	return token
}

func newGatedRouter(svc *JWTService) http.Handler {
	ok := func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(claims.Role.String()))
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(Middleware(svc))
		r.Get("/any", ok)
		r.With(RequireAdmin()).Get("/admin", ok)
		r.With(RequireAdminOrVolunteer()).Get("/staff", ok)
	})
	return r
}

func TestMiddleware(t *testing.T) {
	svc := NewJWTService(testSecret)
	router := newGatedRouter(svc)

	tests := []struct {
		name         string
		path         string
		header       string
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "No token",
			path:         "/any",
			expectedCode: http.StatusForbidden,
			expectedMsg:  "No token provided",
		},
		{
			name:         "Bearer without token",
			path:         "/any",
			header:       "Bearer ",
			expectedCode: http.StatusForbidden,
			expectedMsg:  "No token provided",
		},
		{
			name:         "Garbage token",
			path:         "/any",
			header:       "Bearer garbage",
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Malformed token",
		},
		{
			name:         "Expired token",
			path:         "/any",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleDonor, time.Now().Add(-time.Minute)),
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Token has expired",
		},
		{
			name:         "Foreign signature",
			path:         "/any",
			header:       "Bearer " + tokenFor(t, NewJWTService("other"), domain.RoleAdmin, time.Now().Add(time.Hour)),
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid token signature",
		},
		{
			name:         "Donor on authenticated route",
			path:         "/any",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleDonor, time.Now().Add(time.Hour)),
			expectedCode: http.StatusOK,
		},
		{
			name:         "Donor on admin route",
			path:         "/admin",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleDonor, time.Now().Add(time.Hour)),
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Insufficient role",
		},
		{
			name:         "Volunteer on admin route",
			path:         "/admin",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleVolunteer, time.Now().Add(time.Hour)),
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Insufficient role",
		},
		{
			name:         "Admin on admin route",
			path:         "/admin",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleAdmin, time.Now().Add(time.Hour)),
			expectedCode: http.StatusOK,
		},
		{
			name:         "Donor on staff route",
			path:         "/staff",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleDonor, time.Now().Add(time.Hour)),
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Insufficient role",
		},
		{
			name:         "Volunteer on staff route",
			path:         "/staff",
			header:       "Bearer " + tokenFor(t, svc, domain.RoleVolunteer, time.Now().Add(time.Hour)),
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMsg, body["error"])
			}
		})
	}
}

func TestRequireRoles_WithoutClaims(t *testing.T) {
	handler := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClaimsFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)

	ctx := WithClaims(req.Context(), &Claims{UserID: 3, Role: domain.RoleVolunteer})
	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, claims.UserID)
}
