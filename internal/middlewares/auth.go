package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// TokenVerifier extracts and verifies bearer access tokens.
type TokenVerifier interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ValidateAccess(ctx context.Context, tokenString string) (int64, error)
}

// UserValidator resolves a token subject to a stored user.
type UserValidator interface {
	ValidateUserByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var userIDKey = contextKey{}

// AuthMiddleware returns a middleware that identifies the caller from a
// bearer access token. Any failure along the chain (missing or malformed
// header, bad signature, expired token, unknown subject) leaves the request
// anonymous instead of rejecting it; rejection is enforced per route by
// RequireAuth.
func AuthMiddleware(tokens TokenVerifier, users UserValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokens.ValidateAccess(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("access token rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.ValidateUserByID(ctx, userID)
			if err != nil {
				logger.Log.Debugw("token subject not resolvable", "user_id", userID, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, user.ID)))
		})
	}
}

// RequireAuth rejects requests that AuthMiddleware left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id from the context.
// The second return value is false for anonymous requests.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
