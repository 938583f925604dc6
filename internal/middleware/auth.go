package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// TokenValidator is the interface that wraps access token validation
type TokenValidator interface {
	// ValidateAccessToken validates an access token
	//
	// "token" is the raw bearer token.
	//
	// Returns the user ID, the role and an error if the token is invalid.
	ValidateAccessToken(token string) (int, int, error)
}

// AuthMiddleware validates the bearer access token and stores the principal in the request context
func AuthMiddleware(validator TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, apperrors.KindUnauthenticated, "authentication required")
				return
			}

			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.Debug("rejected access token",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err),
				)
				writeError(w, http.StatusUnauthorized, apperrors.KindUnauthenticated, "invalid or expired token")
				return
			}

			principal := models.Principal{UserID: userID, Role: models.Role(role)}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole rejects authenticated requests whose role is not one of roles
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, apperrors.KindUnauthenticated, "authentication required")
				return
			}
			if !slices.Contains(roles, principal.Role) {
				writeError(w, http.StatusForbidden, apperrors.KindForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithPrincipal returns a copy of ctx carrying the principal
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal retrieves the authenticated principal from context
func GetPrincipal(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(models.Principal)
	return principal, ok
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
