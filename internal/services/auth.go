package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyInUse  = errors.New("this email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrRegistration       = errors.New("error registering user")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error)
	UpdateRefreshTokenHash(ctx context.Context, userID int64, hash *string) error
}

// TokenPairGenerator issues and verifies access/refresh token pairs.
type TokenPairGenerator interface {
	GeneratePair(ctx context.Context, userID int64) (accessToken, refreshToken string, err error)
	ValidateRefresh(ctx context.Context, tokenString string) (int64, error)
}

// AuthService handles registration, login and the refresh-token rotation
// protocol. At most one refresh token is valid per user at any time: each
// issue overwrites the stored hash, which invalidates the predecessor.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenPairGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenPairGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user and logs it in. Fails with ErrEmailAlreadyInUse
// when the normalized email is already stored.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	email = NormalizeEmail(email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrRegistration, err)
	}

	user, err := svc.writer.Save(ctx, name, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrRegistration, err)
	}

	return svc.issuePair(ctx, user)
}

// Login authenticates a user by email and password. The previously issued
// refresh token, if any, is invalidated by the overwrite.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := svc.reader.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return svc.issuePair(ctx, user)
}

// Refresh exchanges a valid refresh token for a brand-new pair. The presented
// token must both verify cryptographically and match the stored hash; the
// overwrite makes it unusable the instant this completes.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	userID, err := svc.tokens.ValidateRefresh(ctx, refreshToken)
	if err != nil {
		return nil, ErrAccessDenied
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil || user.RefreshTokenHash == nil {
		return nil, ErrAccessDenied
	}

	presented := hashToken(refreshToken)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(*user.RefreshTokenHash)) != 1 {
		return nil, ErrAccessDenied
	}

	return svc.issuePair(ctx, user)
}

// Logout clears the stored refresh-token hash unconditionally. Idempotent.
func (svc *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := svc.writer.UpdateRefreshTokenHash(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear refresh token hash", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// ValidateUserByID resolves a token subject to a stored user. Fails with
// ErrUserNotFound when the id does not resolve.
func (svc *AuthService) ValidateUserByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// issuePair generates a token pair for the user and rotates the stored
// refresh-token hash.
func (svc *AuthService) issuePair(ctx context.Context, user *models.UserDB) (*models.AuthResult, error) {
	accessToken, refreshToken, err := svc.tokens.GeneratePair(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "user_id", user.ID, "err", err)
		return nil, err
	}

	hash := hashToken(refreshToken)
	if err := svc.writer.UpdateRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		logger.Log.Errorw("failed to store refresh token hash", "user_id", user.ID, "err", err)
		return nil, err
	}

	return &models.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// NormalizeEmail lower-cases and trims an email for storage and lookup, so
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken produces the stored one-way digest of a refresh token. SHA-256 is
// used instead of bcrypt because signed tokens exceed bcrypt's 72-byte input
// limit; the comparison in Refresh is constant-time.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
