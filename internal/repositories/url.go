package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

const urlColumns = `id, original_url, short_code, user_id, clicks, created_at, updated_at, deleted_at`

// URLReadRepository provides read access to the urls table.
type URLReadRepository struct {
	db *sqlx.DB
}

// NewURLReadRepository creates a new URLReadRepository instance.
func NewURLReadRepository(db *sqlx.DB) *URLReadRepository {
	return &URLReadRepository{db: db}
}

// GetByCode returns the URL with the given short code or nil when no such
// code exists. Soft-deleted rows are returned too: public resolution does not
// filter them.
func (r *URLReadRepository) GetByCode(ctx context.Context, shortCode string) (*models.URLDB, error) {
	const query = `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE short_code = $1
	`

	var url models.URLDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &url, query, shortCode)

	logger.Log.Debugw("urls query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shortCode},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &url, nil
}

// GetOwned returns the non-deleted URL with the given id belonging to the
// given user, or nil when it does not exist or belongs to somebody else.
// Existence and ownership are checked together on purpose.
func (r *URLReadRepository) GetOwned(ctx context.Context, id uuid.UUID, userID int64) (*models.URLDB, error) {
	const query = `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	var url models.URLDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &url, query, id, userID)

	logger.Log.Debugw("urls query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &url, nil
}

// ListByUser returns all non-deleted URLs owned by the given user.
func (r *URLReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.URLDB, error) {
	const query = `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	urls := []models.URLDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &urls, query, userID)

	logger.Log.Debugw("urls query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return urls, nil
}

// URLWriteRepository provides write access to the urls table.
type URLWriteRepository struct {
	db *sqlx.DB
}

// NewURLWriteRepository creates a new URLWriteRepository instance.
func NewURLWriteRepository(db *sqlx.DB) *URLWriteRepository {
	return &URLWriteRepository{db: db}
}

// Save inserts a new URL row. A short-code collision surfaces as the store's
// unique-violation error; the caller decides whether to retry.
func (r *URLWriteRepository) Save(ctx context.Context, url *models.URLDB) error {
	const query = `
		INSERT INTO urls (id, original_url, short_code, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, url.ID, url.OriginalURL, url.ShortCode, url.UserID)

	logger.Log.Debugw("urls insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{url.ID, url.ShortCode},
		"error", err,
	)

	return err
}

// IncrementClicks atomically bumps the click counter for the given short
// code. The increment happens in a single statement so concurrent resolutions
// cannot under-count.
func (r *URLWriteRepository) IncrementClicks(ctx context.Context, shortCode string) error {
	const query = `
		UPDATE urls
		SET clicks = clicks + 1, updated_at = NOW()
		WHERE short_code = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, shortCode)

	logger.Log.Debugw("urls update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{shortCode},
		"error", err,
	)

	return err
}

// UpdateOriginalURL replaces the target of the given URL and returns the
// updated row.
func (r *URLWriteRepository) UpdateOriginalURL(ctx context.Context, id uuid.UUID, originalURL string) (*models.URLDB, error) {
	const query = `
		UPDATE urls
		SET original_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + urlColumns + `
	`

	var url models.URLDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &url, query, id, originalURL)

	logger.Log.Debugw("urls update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &url, nil
}

// SoftDelete sets the deletion timestamp on the given URL and returns the
// updated row. The row is never physically removed and its short code stays
// reserved.
func (r *URLWriteRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*models.URLDB, error) {
	const query = `
		UPDATE urls
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + urlColumns + `
	`

	var url models.URLDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &url, query, id)

	logger.Log.Debugw("urls update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &url, nil
}
