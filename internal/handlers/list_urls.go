package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/middlewares"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// UserURLLister defines the interface that the URL listing service must
// implement.
type UserURLLister interface {
	List(ctx context.Context, userID int64) ([]models.URLDB, int64, error)
}

// ListURLsResponse represents the caller's URLs with an aggregate click count.
// swagger:model ListURLsResponse
type ListURLsResponse struct {
	// URLs owned by the caller, oldest first
	URLs []models.URLDB `json:"urls"`
	// Sum of clicks across the listed URLs
	TotalClicks int64 `json:"totalClicks"`
}

// NewListURLsHandler returns an HTTP handler that lists the caller's URLs.
// @Summary List own URLs
// @Description Returns every non-deleted URL owned by the caller plus the total click count.
// @Tags user-urls
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ListURLsResponse "URLs returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid bearer token"
// @Router /user-operations/urls [get]
func NewListURLsHandler(svc UserURLLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		urls, totalClicks, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if urls == nil {
			urls = []models.URLDB{}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ListURLsResponse{
			URLs:        urls,
			TotalClicks: totalClicks,
		})
	}
}
