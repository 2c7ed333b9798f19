package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

// NewRedirectHandler returns an HTTP handler that redirects a short link to
// its original URL. Shares the Resolver with the JSON endpoint, so the click
// counter moves here too.
// @Summary Follow a short link
// @Description Redirects to the original URL. Increments the click counter.
// @Tags url
// @Param shortCode path string true "Short code"
// @Success 302 {string} string "Redirect to the original URL"
// @Failure 404 {object} handlers.ErrorResponse "Short code not found"
// @Router /{shortCode} [get]
func NewRedirectHandler(svc Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shortCode := chi.URLParam(r, "shortCode")

		originalURL, err := svc.Resolve(r.Context(), shortCode)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
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

		http.Redirect(w, r, originalURL, http.StatusFound)
	}
}
