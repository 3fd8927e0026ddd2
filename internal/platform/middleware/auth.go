package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"rolodex/internal/user/models"
)

// TokenResolver resolves a presented X-API-TOKEN value to its user. The user
// service implements this.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

type contextKeyUser struct{}

// ContextKeyUser is exported for tests that need to inject a user directly.
var ContextKeyUser = contextKeyUser{}

// UserFromContext retrieves the authenticated user, or nil outside the auth
// middleware.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser injects a user into the context. Useful for handler unit tests
// that don't run the full middleware chain.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}

// RequireAuth rejects requests whose X-API-TOKEN header is missing or does
// not resolve to a user. Rejection happens before any handler runs, so
// protected routes never touch storage for unauthenticated callers.
func RequireAuth(resolver TokenResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := r.Header.Get("X-API-TOKEN")
			if token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
					"path", r.URL.Path,
				)
				writeUnauthorized(w)
				return
			}

			user, err := resolver.ResolveToken(ctx, token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", GetRequestID(ctx),
					"path", r.URL.Path,
				)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"errors":"unauthorized"}`))
}
