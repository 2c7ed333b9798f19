package models

import (
	"time"

	"github.com/google/uuid"
)

// URLDB represents a shortened URL record in the database.
type URLDB struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OriginalURL string     `json:"originalUrl" db:"original_url"`
	ShortCode   string     `json:"shortCode" db:"short_code"`
	UserID      *int64     `json:"userId,omitempty" db:"user_id"` // nil when the URL is unowned
	Clicks      int64      `json:"clicks" db:"clicks"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // soft-delete marker
}

// ClickEvent is published to Kafka each time a short code is resolved.
type ClickEvent struct {
	EventID    string `json:"event_id"`
	ShortCode  string `json:"short_code"`
	OccurredAt int64  `json:"occurred_at"`
}
