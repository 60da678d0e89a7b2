package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/charity/internal/domain"
	"github.com/GlebRadaev/charity/pkg/utils"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok && claims != nil
}

// Middleware verifies the bearer token. A missing token is answered with 403,
// a token that fails verification with 401.
func Middleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)

			claims, err := validator.ValidateToken(token)
			if err != nil {
				msg, _ := domain.Message(err)
				if msg == "" {
					msg = "Invalid or expired token"
				}
				if errors.Is(err, ErrNoToken) {
					utils.RespondWithError(w, http.StatusForbidden, msg)
					return
				}
				utils.RespondWithError(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRoles admits callers whose role is in roles. It must run after Middleware.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusForbidden, ErrNoToken.Error())
				return
			}
			if !hasRole(claims.Role, roles) {
				utils.RespondWithError(w, http.StatusForbidden, ErrInsufficient.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

func RequireAdminOrVolunteer() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleVolunteer)
}

func hasRole(role domain.Role, allowed []domain.Role) bool {
	if !role.Valid() {
		return false
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
