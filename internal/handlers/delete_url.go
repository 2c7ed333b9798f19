package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/middlewares"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

// UserURLDeleter defines the interface that the URL deleting service must
// implement.
type UserURLDeleter interface {
	Delete(ctx context.Context, id uuid.UUID, userID int64) (*models.URLDB, error)
}

// NewDeleteURLHandler returns an HTTP handler that soft-deletes an owned URL.
// The short link keeps resolving; the URL just leaves the owner's list.
// @Summary Delete an owned URL
// @Description Soft-deletes an owned URL. URLs owned by other users look nonexistent.
// @Tags user-urls
// @Produce json
// @Security BearerAuth
// @Param id path string true "URL id" format(uuid)
// @Success 200 {object} models.URLDB "Deleted URL returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid bearer token"
// @Failure 404 {object} handlers.ErrorResponse "URL not found"
// @Router /user-operations/urls/{id} [delete]
func NewDeleteURLHandler(svc UserURLDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "URL not found"})
			return
		}

		url, err := svc.Delete(r.Context(), id, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrURLNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "URL not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(url)
	}
}
