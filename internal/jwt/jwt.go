// Package jwt issues and verifies the two token classes used by the service:
// short-lived access tokens and longer-lived refresh tokens. Each class is
// signed with its own secret and expiration. The package is stateless; the
// only payload is the subject's user id.
package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error variables
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrNoAuthHeader      = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrUnexpectedSignAlg = errors.New("unexpected signing method")
)

// Claims carries the subject's user id on top of the registered claims.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT signs and verifies access/refresh token pairs.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExp     time.Duration
	refreshExp    time.Duration
}

// New creates a JWT service with distinct secrets and expirations for the
// access and refresh token classes.
func New(accessSecret string, accessExp time.Duration, refreshSecret string, refreshExp time.Duration) *JWT {
	return &JWT{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExp:     accessExp,
		refreshExp:    refreshExp,
	}
}

// GeneratePair signs a new access/refresh token pair for the given user.
func (j *JWT) GeneratePair(ctx context.Context, userID int64) (accessToken, refreshToken string, err error) {
	accessToken, err = j.sign(userID, j.accessSecret, j.accessExp)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = j.sign(userID, j.refreshSecret, j.refreshExp)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ValidateAccess verifies an access token and returns the embedded user id.
func (j *JWT) ValidateAccess(ctx context.Context, tokenString string) (int64, error) {
	return j.verify(tokenString, j.accessSecret)
}

// ValidateRefresh verifies a refresh token and returns the embedded user id.
func (j *JWT) ValidateRefresh(ctx context.Context, tokenString string) (int64, error) {
	return j.verify(tokenString, j.refreshSecret)
}

// GetTokenFromRequest extracts the bearer token from the Authorization
// header. The header must consist of exactly two space-separated parts with a
// case-insensitive "Bearer" scheme.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}

func (j *JWT) sign(userID int64, secret []byte, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (j *JWT) verify(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSignAlg
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
