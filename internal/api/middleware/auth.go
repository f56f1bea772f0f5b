package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
)

// authFailedMessage is the single message sent for every rejected token.
const authFailedMessage = "Authentication failed!"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token in the Authorization header and
// stores the caller in the request context. Preflight OPTIONS requests pass
// through unauthenticated.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, authFailedMessage, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, authFailedMessage, err)
			return
		}

		ctx := shared.WithRequestContext(r.Context(), shared.RequestContext{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		log := logger.FromContext(ctx).With(slog.String("user_id", claims.UserID.String()))
		ctx = logger.WithContext(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", auth.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrMissingToken
	}
	return token, nil
}
