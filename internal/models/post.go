package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a post row joined with its author's name.
type PostDB struct {
	ID               uuid.UUID `db:"id"`
	AuthorID         uuid.UUID `db:"author_id"`
	AuthorName       string    `db:"author_name"`
	Text             string    `db:"text"`
	PhotoContentType string    `db:"photo_content_type"`
	PhotoSize        int64     `db:"photo_size"`
	CreatedAt        time.Time `db:"created_at"`
}

// LikeDB is one row of the like set of a post.
type LikeDB struct {
	PostID uuid.UUID `db:"post_id"`
	UserID uuid.UUID `db:"user_id"`
}

// CommentDB is a comment row joined with its author's name.
type CommentDB struct {
	ID        uuid.UUID `db:"id"`
	PostID    uuid.UUID `db:"post_id"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  string    `db:"user_name"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// Author identifies who posted a post or comment.
// swagger:model Author
type Author struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

// Comment is a single comment on a post.
// swagger:model Comment
type Comment struct {
	ID       uuid.UUID `json:"_id"`
	Text     string    `json:"text"`
	PostedBy Author    `json:"postedBy"`
	Created  time.Time `json:"created"`
}

// Post is a post with its likes and comments, as returned to clients.
// swagger:model Post
type Post struct {
	ID       uuid.UUID   `json:"_id"`
	Text     string      `json:"text"`
	Photo    *PhotoInfo  `json:"photo,omitempty"`
	PostedBy Author      `json:"postedBy"`
	Likes    []uuid.UUID `json:"likes"`
	Comments []Comment   `json:"comments"`
	Created  time.Time   `json:"created"`
}

// NewPost builds a Post from its row with empty like and comment lists.
func NewPost(p PostDB) *Post {
	return &Post{
		ID:       p.ID,
		Text:     p.Text,
		Photo:    photoInfo(p.PhotoContentType, p.PhotoSize),
		PostedBy: Author{ID: p.AuthorID, Name: p.AuthorName},
		Likes:    []uuid.UUID{},
		Comments: []Comment{},
		Created:  p.CreatedAt,
	}
}

// HasPhoto reports whether the post row carries a photo.
func (p PostDB) HasPhoto() bool {
	return p.PhotoContentType != ""
}
