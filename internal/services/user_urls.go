package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// Error variables
var (
	// ErrURLNotFound covers both a missing URL and one owned by somebody
	// else, so existence is never leaked to non-owners.
	ErrURLNotFound = errors.New("URL not found or does not belong to user")

	ErrOriginalURLRequired = errors.New("the originalUrl field is required")
)

// OwnedURLReader defines owner-scoped read operations for shortened URLs.
type OwnedURLReader interface {
	GetOwned(ctx context.Context, id uuid.UUID, userID int64) (*models.URLDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.URLDB, error)
}

// OwnedURLWriter defines owner-scoped write operations for shortened URLs.
type OwnedURLWriter interface {
	UpdateOriginalURL(ctx context.Context, id uuid.UUID, originalURL string) (*models.URLDB, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*models.URLDB, error)
}

// URLCacheInvalidator drops cached resolve entries. May be nil.
type URLCacheInvalidator interface {
	Invalidate(ctx context.Context, shortCode string) error
}

// UserURLService implements the owner-scoped list/update/delete operations.
type UserURLService struct {
	reader OwnedURLReader
	writer OwnedURLWriter
	cache  URLCacheInvalidator
}

// NewUserURLService creates a new UserURLService. cache is optional.
func NewUserURLService(reader OwnedURLReader, writer OwnedURLWriter, cache URLCacheInvalidator) *UserURLService {
	return &UserURLService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns the caller's non-deleted URLs and the sum of their clicks.
func (svc *UserURLService) List(ctx context.Context, userID int64) ([]models.URLDB, int64, error) {
	urls, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user urls", "user_id", userID, "err", err)
		return nil, 0, err
	}

	var totalClicks int64
	for _, url := range urls {
		totalClicks += url.Clicks
	}

	return urls, totalClicks, nil
}

// Update replaces the target of a URL owned by the caller.
func (svc *UserURLService) Update(ctx context.Context, id uuid.UUID, userID int64, originalURL string) (*models.URLDB, error) {
	if strings.TrimSpace(originalURL) == "" {
		return nil, ErrOriginalURLRequired
	}

	url, err := svc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, err := svc.writer.UpdateOriginalURL(ctx, id, originalURL)
	if err != nil {
		logger.Log.Errorw("failed to update url", "id", id, "err", err)
		return nil, err
	}

	svc.invalidate(ctx, url.ShortCode)

	return updated, nil
}

// Delete soft-deletes a URL owned by the caller. The short code stays
// reserved forever.
func (svc *UserURLService) Delete(ctx context.Context, id uuid.UUID, userID int64) (*models.URLDB, error) {
	url, err := svc.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	deleted, err := svc.writer.SoftDelete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete url", "id", id, "err", err)
		return nil, err
	}

	svc.invalidate(ctx, url.ShortCode)

	return deleted, nil
}

func (svc *UserURLService) getOwned(ctx context.Context, id uuid.UUID, userID int64) (*models.URLDB, error) {
	url, err := svc.reader.GetOwned(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to get url", "id", id, "err", err)
		return nil, err
	}
	if url == nil {
		return nil, ErrURLNotFound
	}
	return url, nil
}

func (svc *UserURLService) invalidate(ctx context.Context, shortCode string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, shortCode); err != nil {
		logger.Log.Warnw("failed to invalidate url cache", "short_code", shortCode, "err", err)
	}
}
