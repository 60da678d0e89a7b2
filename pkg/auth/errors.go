package auth

import "github.com/GlebRadaev/charity/internal/domain"

// Each failure is a distinct value so callers can tell them apart with errors.Is;
// all of them also match domain.ErrAuth.
var (
	ErrNoToken        = domain.NewError(domain.ErrAuth, "No token provided")
	ErrTokenMalformed = domain.NewError(domain.ErrAuth, "Malformed token")
	ErrTokenSignature = domain.NewError(domain.ErrAuth, "Invalid token signature")
	ErrTokenExpired   = domain.NewError(domain.ErrAuth, "Token has expired")
	ErrTokenClaims    = domain.NewError(domain.ErrAuth, "Invalid token claims")
	ErrInsufficient   = domain.Forbidden("Insufficient role")
)
