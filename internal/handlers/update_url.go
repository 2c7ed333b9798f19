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

// UserURLUpdater defines the interface that the URL updating service must
// implement.
type UserURLUpdater interface {
	Update(ctx context.Context, id uuid.UUID, userID int64, originalURL string) (*models.URLDB, error)
}

// UpdateURLRequest represents the JSON body for retargeting a short link.
// swagger:model UpdateURLRequest
type UpdateURLRequest struct {
	// New target URL
	// required: true
	OriginalURL string `json:"originalUrl" validate:"required"`
}

// NewUpdateURLHandler returns an HTTP handler that retargets an owned URL.
// The short code stays the same.
// @Summary Update an owned URL
// @Description Points an owned short link at a new destination. URLs owned by other users look nonexistent.
// @Tags user-urls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "URL id" format(uuid)
// @Param updateURLRequest body handlers.UpdateURLRequest true "New destination"
// @Success 200 {object} models.URLDB "Updated URL returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid bearer token"
// @Failure 404 {object} handlers.ErrorResponse "URL not found"
// @Router /user-operations/urls/{id} [patch]
func NewUpdateURLHandler(svc UserURLUpdater) http.HandlerFunc {
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

		var req UpdateURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error:   "validation failed",
				Details: validationDetails(err),
			})
			return
		}

		url, err := svc.Update(r.Context(), id, userID, req.OriginalURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOriginalURLRequired):
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Original URL cannot be empty"})
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
