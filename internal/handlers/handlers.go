// Package handlers contains one HTTP handler per endpoint. Each handler owns
// its request/response types, validates the body explicitly before invoking
// the service, and maps service errors to status codes.
package handlers

import (
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// validate is the shared request validator. Handlers invoke it explicitly on
// decoded bodies; there is no declarative validation layer.
var validate = validator.New()

// ErrorResponse is the uniform error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
	// Per-field validation failures, present on 400 responses only
	Details []string `json:"details,omitempty"`
}

// AuthResponse is returned by register, login and refresh.
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed access token
	AccessToken string `json:"accessToken"`
	// Signed refresh token
	RefreshToken string `json:"refreshToken"`
	// Public user projection
	User models.UserPublic `json:"user"`
}

func toAuthResponse(result *models.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	}
}

// validationDetails flattens validator errors into human-readable strings.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return details
}
