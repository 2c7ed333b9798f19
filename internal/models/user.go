package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Email            string     `json:"email" db:"email"` // stored lower-cased
	PasswordHash     string     `json:"-" db:"password_hash"`
	RefreshTokenHash *string    `json:"-" db:"refresh_token_hash"` // nil when logged out
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserPublic is the projection of a user that is safe to return to clients.
type UserPublic struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-facing projection of the user.
func (u *UserDB) Public() UserPublic {
	return UserPublic{ID: u.ID, Name: u.Name, Email: u.Email}
}
