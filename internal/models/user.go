package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/credentials"
)

// UserDB represents a user record in the database.
// Salt and HashedPassword are only ever set together through SetCredential.
type UserDB struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	HashedPassword   string    `db:"hashed_password" json:"-"`
	Salt             string    `db:"salt" json:"-"`
	About            string    `db:"about"`
	PhotoContentType string    `db:"photo_content_type"`
	PhotoSize        int64     `db:"photo_size"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// SetCredential replaces the salt and derives the matching hash from plaintext.
func (u *UserDB) SetCredential(plaintext string) {
	u.Salt = credentials.GenerateSalt()
	u.HashedPassword = credentials.DeriveHash(plaintext, u.Salt)
}

// Authenticate reports whether plaintext matches the stored credential.
func (u *UserDB) Authenticate(plaintext string) bool {
	return credentials.Verify(plaintext, u.Salt, u.HashedPassword)
}

// Public strips credentials and returns the shape exposed to clients.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		About:     u.About,
		Photo:     photoInfo(u.PhotoContentType, u.PhotoSize),
		Following: []uuid.UUID{},
		Followers: []uuid.UUID{},
		Created:   u.CreatedAt,
		Updated:   u.UpdatedAt,
	}
}

// User is a public user profile. It never carries credential fields.
// swagger:model User
type User struct {
	ID        uuid.UUID   `json:"_id" example:"8b0f6a4e-2c1d-4a8e-9d3f-1a2b3c4d5e6f"`
	Name      string      `json:"name" example:"Jane Doe"`
	Email     string      `json:"email" example:"jane@example.com"`
	About     string      `json:"about,omitempty"`
	Photo     *PhotoInfo  `json:"photo,omitempty"`
	Following []uuid.UUID `json:"following"`
	Followers []uuid.UUID `json:"followers"`
	Created   time.Time   `json:"created"`
	Updated   time.Time   `json:"updated"`
}

// UserSummary is the list projection of a user.
// swagger:model UserSummary
type UserSummary struct {
	ID      uuid.UUID `json:"_id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Email   string    `json:"email" db:"email"`
	Created time.Time `json:"created" db:"created_at"`
	Updated time.Time `json:"updated" db:"updated_at"`
}

// UserUpdate holds the fields a profile update may change. Nil means unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	About    *string
	Password *string
	Photo    *PhotoInfo
}
