package models

import "github.com/google/uuid"

// UpdateUserRequest is the JSON body of a profile update.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	About    *string `json:"about,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ToUpdate converts the body into a UserUpdate.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{Name: r.Name, Email: r.Email, About: r.About, Password: r.Password}
}

// FollowRequest is the body of follow and unfollow.
// swagger:model FollowRequest
type FollowRequest struct {
	FollowID uuid.UUID `json:"followId"`
}

// CreatePostRequest is the JSON body of a new post.
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Text string `json:"text" example:"Hello world"`
}

// CommentInput is the comment part of a comment or uncomment body.
// swagger:model CommentInput
type CommentInput struct {
	ID   *uuid.UUID `json:"_id,omitempty"`
	Text string     `json:"text,omitempty"`
}

// PostActionRequest is the body of like, unlike, comment and uncomment.
// swagger:model PostActionRequest
type PostActionRequest struct {
	UserID  *uuid.UUID    `json:"userId,omitempty"`
	PostID  uuid.UUID     `json:"postId"`
	Comment *CommentInput `json:"comment,omitempty"`
}
