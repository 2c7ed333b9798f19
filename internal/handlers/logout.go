package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID int64) error
}

// LogoutResponse represents a successful logout.
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Always true on success
	Success bool `json:"success"`
	// Human-readable confirmation
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that clears the caller's stored
// refresh-token hash. Idempotent.
// @Summary Log out
// @Description Invalidates the caller's refresh token. Calling it again is a no-op.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Logout successful"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid bearer token"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(LogoutResponse{
			Success: true,
			Message: "Logout successful",
		})
	}
}
