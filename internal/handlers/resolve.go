package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

// Resolver defines the interface that the resolving service must implement.
type Resolver interface {
	Resolve(ctx context.Context, shortCode string) (string, error)
}

// ResolveResponse represents a resolved short code.
// swagger:model ResolveResponse
type ResolveResponse struct {
	// Target URL the short code points to
	OriginalURL string `json:"originalUrl"`
}

// NewResolveHandler returns an HTTP handler that resolves a short code to its
// original URL without redirecting. Every resolution counts as a click.
// @Summary Resolve a short code
// @Description Returns the original URL for a short code. Increments the click counter.
// @Tags url
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} handlers.ResolveResponse "Original URL returned"
// @Failure 404 {object} handlers.ErrorResponse "Short code not found"
// @Router /resolve/{shortCode} [get]
func NewResolveHandler(svc Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		shortCode := chi.URLParam(r, "shortCode")

		originalURL, err := svc.Resolve(r.Context(), shortCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrShortCodeNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Short URL not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ResolveResponse{OriginalURL: originalURL})
	}
}
