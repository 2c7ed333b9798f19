package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

// Error variables
var (
	ErrOriginalURLEmpty   = errors.New("original URL cannot be empty")
	ErrShortCodeNotFound  = errors.New("URL not found")
	ErrShortCodeExhausted = errors.New("could not generate a unique short code")
)

const (
	// shortCodeLength is fixed; codes are unguessable and permanent.
	shortCodeLength = 6

	// shortCodeAlphabet is URL-safe. Its size is a power of two, so masking
	// random bytes introduces no modulo bias.
	shortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

	// maxGenerateAttempts bounds the retry loop on short-code collisions.
	maxGenerateAttempts = 5
)

// URLReader defines read operations for shortened URLs.
type URLReader interface {
	GetByCode(ctx context.Context, shortCode string) (*models.URLDB, error)
}

// URLWriter defines write operations for shortened URLs.
type URLWriter interface {
	Save(ctx context.Context, url *models.URLDB) error
	IncrementClicks(ctx context.Context, shortCode string) error
}

// URLCache caches code-to-target lookups for the resolve path. May be nil.
type URLCache interface {
	GetOriginalURL(ctx context.Context, shortCode string) (string, error)
	SetOriginalURL(ctx context.Context, shortCode, originalURL string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// URLService shortens URLs and resolves short codes.
type URLService struct {
	reader      URLReader
	writer      URLWriter
	cache       URLCache
	kafkaWriter KafkaWriter
	baseURL     string
}

// NewURLService creates a new URLService. cache and kafkaWriter are optional;
// pass nil to run without a cache or without click-event publishing.
func NewURLService(reader URLReader, writer URLWriter, cache URLCache, kafkaWriter KafkaWriter, baseURL string) *URLService {
	return &URLService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Shorten persists a new short code for the given target and returns the
// fully qualified short link. userID is nil for anonymous callers. A
// collision with an existing code is retried with a fresh code up to
// maxGenerateAttempts times.
func (svc *URLService) Shorten(ctx context.Context, originalURL string, userID *int64) (string, error) {
	originalURL = strings.TrimSpace(originalURL)
	if originalURL == "" {
		return "", ErrOriginalURLEmpty
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		shortCode, err := generateShortCode()
		if err != nil {
			return "", err
		}

		url := &models.URLDB{
			ID:          uuid.New(),
			OriginalURL: originalURL,
			ShortCode:   shortCode,
			UserID:      userID,
		}

		err = svc.writer.Save(ctx, url)
		if err == nil {
			return svc.baseURL + "/" + shortCode, nil
		}
		if !isUniqueViolation(err) {
			logger.Log.Errorw("failed to save url", "short_code", shortCode, "err", err)
			return "", err
		}

		logger.Log.Infow("short code collision, retrying", "short_code", shortCode, "attempt", attempt+1)
	}

	return "", ErrShortCodeExhausted
}

// Resolve returns the target for the given short code and bumps its click
// counter. Soft-deleted URLs still resolve. The increment and the click event
// are best-effort: once the target is known, their failure does not fail the
// resolution.
func (svc *URLService) Resolve(ctx context.Context, shortCode string) (string, error) {
	originalURL, cached := svc.fromCache(ctx, shortCode)
	if !cached {
		url, err := svc.reader.GetByCode(ctx, shortCode)
		if err != nil {
			return "", err
		}
		if url == nil {
			return "", ErrShortCodeNotFound
		}
		originalURL = url.OriginalURL

		if svc.cache != nil {
			if err := svc.cache.SetOriginalURL(ctx, shortCode, originalURL); err != nil {
				logger.Log.Warnw("failed to cache url", "short_code", shortCode, "err", err)
			}
		}
	}

	if err := svc.writer.IncrementClicks(ctx, shortCode); err != nil {
		logger.Log.Errorw("failed to increment clicks", "short_code", shortCode, "err", err)
	}

	svc.publishClick(ctx, shortCode)

	return originalURL, nil
}

func (svc *URLService) fromCache(ctx context.Context, shortCode string) (string, bool) {
	if svc.cache == nil {
		return "", false
	}
	originalURL, err := svc.cache.GetOriginalURL(ctx, shortCode)
	if err != nil {
		return "", false
	}
	return originalURL, true
}

// publishClick publishes a click event to Kafka, best-effort.
func (svc *URLService) publishClick(ctx context.Context, shortCode string) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.ClickEvent{
		EventID:    uuid.NewString(),
		ShortCode:  shortCode,
		OccurredAt: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal click event", "short_code", shortCode, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(shortCode),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish click event", "short_code", shortCode, "err", err)
	}
}

// generateShortCode draws a fixed-length code from the URL-safe alphabet
// using a cryptographically strong random source.
func generateShortCode() (string, error) {
	buf := make([]byte, shortCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, shortCodeLength)
	for i, b := range buf {
		code[i] = shortCodeAlphabet[b&0x3f]
	}

	return string(code), nil
}

// isUniqueViolation reports whether err is the store's unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
