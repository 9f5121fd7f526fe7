package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/lucasmoraes-dev/habitflow/internal/config"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

var ErrNoClaims = errors.New("no user claims in context")

// ContextWithClaims attaches resolved claims to ctx. The middleware uses it
// on every authenticated request; tests use it to impersonate a caller.
func ContextWithClaims(ctx context.Context, claims *UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*UserClaims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// AuthMiddleware resolves the session cookie into user claims for API routes.
// A missing, malformed or expired token yields 401 and clears the cookie.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := ValidateJWT(cookie.Value)
		if err != nil {
			log.WithError(err).Debug("Rejected session token")
			ClearAuthCookie(w)
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
