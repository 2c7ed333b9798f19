package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-url-shortener/internal/models"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
}

func TestURLService_Shorten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockURLReader(ctrl)
	mockWriter := services.NewMockURLWriter(ctrl)

	svc := services.NewURLService(mockReader, mockWriter, nil, nil, "http://sho.rt/")

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := int64(1)

		var savedCode string
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, url *models.URLDB) error {
				assert.Equal(t, "https://example.com/page", url.OriginalURL)
				require.NotNil(t, url.UserID)
				assert.Equal(t, userID, *url.UserID)
				assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", url.ID.String())
				savedCode = url.ShortCode
				return nil
			})

		shortURL, err := svc.Shorten(ctx, "https://example.com/page", &userID)
		require.NoError(t, err)

		// trailing slash on the base is trimmed once
		assert.Equal(t, "http://sho.rt/"+savedCode, shortURL)
		assert.Len(t, savedCode, 6)
		for _, c := range savedCode {
			assert.Contains(t, codeAlphabet, string(c))
		}
	})

	t.Run("anonymous caller", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, url *models.URLDB) error {
				assert.Nil(t, url.UserID)
				return nil
			})

		_, err := svc.Shorten(ctx, "https://example.com", nil)
		assert.NoError(t, err)
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := svc.Shorten(ctx, "   ", nil)
		assert.ErrorIs(t, err, services.ErrOriginalURLEmpty)
	})

	t.Run("collision retried with fresh code", func(t *testing.T) {
		var codes []string
		gomock.InOrder(
			mockWriter.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, url *models.URLDB) error {
					codes = append(codes, url.ShortCode)
					return uniqueViolation()
				}),
			mockWriter.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, url *models.URLDB) error {
					codes = append(codes, url.ShortCode)
					return nil
				}),
		)

		shortURL, err := svc.Shorten(ctx, "https://example.com", nil)
		require.NoError(t, err)
		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.True(t, strings.HasSuffix(shortURL, codes[1]))
	})

	t.Run("exhausted after repeated collisions", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(uniqueViolation()).
			Times(5)

		_, err := svc.Shorten(ctx, "https://example.com", nil)
		assert.ErrorIs(t, err, services.ErrShortCodeExhausted)
	})

	t.Run("non-collision error is not retried", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := svc.Shorten(ctx, "https://example.com", nil)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrShortCodeExhausted)
	})
}

func TestURLService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockURLReader(ctrl)
	mockWriter := services.NewMockURLWriter(ctrl)

	svc := services.NewURLService(mockReader, mockWriter, nil, nil, "http://sho.rt")

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByCode(gomock.Any(), "Ab3x_9").
			Return(&models.URLDB{OriginalURL: "https://example.com"}, nil)

		mockWriter.EXPECT().
			IncrementClicks(gomock.Any(), "Ab3x_9").
			Return(nil)

		originalURL, err := svc.Resolve(ctx, "Ab3x_9")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByCode(gomock.Any(), "zzzzzz").
			Return(nil, nil)

		_, err := svc.Resolve(ctx, "zzzzzz")
		assert.ErrorIs(t, err, services.ErrShortCodeNotFound)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByCode(gomock.Any(), "Ab3x_9").
			Return(nil, errors.New("db error"))

		_, err := svc.Resolve(ctx, "Ab3x_9")
		assert.Error(t, err)
	})

	t.Run("increment failure does not fail resolution", func(t *testing.T) {
		mockReader.EXPECT().
			GetByCode(gomock.Any(), "Ab3x_9").
			Return(&models.URLDB{OriginalURL: "https://example.com"}, nil)

		mockWriter.EXPECT().
			IncrementClicks(gomock.Any(), "Ab3x_9").
			Return(errors.New("db error"))

		originalURL, err := svc.Resolve(ctx, "Ab3x_9")
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})
}

func TestURLService_Resolve_WithCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockURLReader(ctrl)
	mockWriter := services.NewMockURLWriter(ctrl)
	mockCache := services.NewMockURLCache(ctrl)

	svc := services.NewURLService(mockReader, mockWriter, mockCache, nil, "http://sho.rt")

	ctx := context.Background()

	t.Run("miss populates cache", func(t *testing.T) {
		mockCache.EXPECT().
			GetOriginalURL(gomock.Any(), "Ab3x_9").
			Return("", errors.New("cache miss"))

		mockReader.EXPECT().
			GetByCode(gomock.Any(), "Ab3x_9").
			Return(&models.URLDB{OriginalURL: "https://example.com"}, nil)

		mockCache.EXPECT().
			SetOriginalURL(gomock.Any(), "Ab3x_9", "https://example.com").
			Return(nil)

		mockWriter.EXPECT().
			IncrementClicks(gomock.Any(), "Ab3x_9").
			Return(nil)

		originalURL, err := svc.Resolve(ctx, "Ab3x_9")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})

	t.Run("hit skips the database read but still counts the click", func(t *testing.T) {
		mockCache.EXPECT().
			GetOriginalURL(gomock.Any(), "Ab3x_9").
			Return("https://example.com", nil)

		mockWriter.EXPECT().
			IncrementClicks(gomock.Any(), "Ab3x_9").
			Return(nil)

		originalURL, err := svc.Resolve(ctx, "Ab3x_9")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})
}

func TestURLService_Resolve_PublishesClickEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockURLReader(ctrl)
	mockWriter := services.NewMockURLWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewURLService(mockReader, mockWriter, nil, mockKafka, "http://sho.rt")

	ctx := context.Background()

	mockReader.EXPECT().
		GetByCode(gomock.Any(), "Ab3x_9").
		Return(&models.URLDB{OriginalURL: "https://example.com"}, nil)

	mockWriter.EXPECT().
		IncrementClicks(gomock.Any(), "Ab3x_9").
		Return(nil)

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("Ab3x_9"), msgs[0].Key)

			var event models.ClickEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "Ab3x_9", event.ShortCode)
			assert.NotEmpty(t, event.EventID)
			assert.NotZero(t, event.OccurredAt)
			return nil
		})

	_, err := svc.Resolve(ctx, "Ab3x_9")
	assert.NoError(t, err)
}
