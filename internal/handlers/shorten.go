package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/middlewares"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

// Shortener defines the interface that the shortening service must implement.
type Shortener interface {
	Shorten(ctx context.Context, originalURL string, userID *int64) (string, error)
}

// ShortenRequest represents the JSON body for shortening a URL.
// swagger:model ShortenRequest
type ShortenRequest struct {
	// Target URL
	// required: true
	OriginalURL string `json:"originalUrl" validate:"required"`
}

// ShortenResponse represents a successful shortening.
// swagger:model ShortenResponse
type ShortenResponse struct {
	// Fully qualified short link
	ShortURL string `json:"shortUrl"`
}

// NewShortenHandler returns an HTTP handler that shortens a URL. When the
// request carries a valid bearer token the URL is bound to the caller;
// otherwise it is created unowned.
// @Summary Shorten a URL
// @Description Generates a 6-character short code for the target URL. Authentication is optional; authenticated callers own the resulting URL.
// @Tags url
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shortenRequest body handlers.ShortenRequest true "URL to shorten"
// @Success 201 {object} handlers.ShortenResponse "URL shortened"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /url [post]
func NewShortenHandler(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req ShortenRequest
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

		var userID *int64
		if id, ok := middlewares.UserIDFromContext(r.Context()); ok {
			userID = &id
		}

		shortURL, err := svc.Shorten(r.Context(), req.OriginalURL, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOriginalURLEmpty):
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Original URL cannot be empty"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(ShortenResponse{ShortURL: shortURL})
	}
}
