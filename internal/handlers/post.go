package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=post.go -destination=mock_post.go -package=handlers

// PostManager defines the post, feed, like and comment operations the post handlers need.
type PostManager interface {
	Create(ctx context.Context, authorID, requester uuid.UUID, text string, photo *models.Photo) (*models.Post, error)
	Delete(ctx context.Context, postID, requester uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error)
	ListFeed(ctx context.Context, userID, requester uuid.UUID) ([]*models.Post, error)
	Like(ctx context.Context, postID, userID uuid.UUID) (*models.Post, error)
	Unlike(ctx context.Context, postID, userID uuid.UUID) (*models.Post, error)
	Comment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.Post, error)
	Uncomment(ctx context.Context, postID, commentID, requester uuid.UUID) (*models.Post, error)
	GetPhoto(ctx context.Context, postID uuid.UUID) (*models.Photo, error)
}

// NewCreatePostHandler returns an HTTP handler publishing a post for the caller.
// The body is JSON {text} or multipart form data with "text" and an optional "photo" file.
// @Summary Create post
// @Tags posts
// @Accept json,mpfd
// @Produce json
// @Param userId path string true "Author ID"
// @Param createPostRequest body models.CreatePostRequest false "Post text"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Router /posts/new/{userId} [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostManager, maxPhotoBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}
		authorID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		if requester != authorID {
			writeError(w, apperr.ErrForbidden)
			return
		}

		var (
			text  string
			photo *models.Photo
		)

		if isMultipart(r) {
			fields, p, err := parseMultipart(w, r, maxPhotoBytes)
			if err != nil {
				writeError(w, err)
				return
			}
			text = fields["text"]
			photo = p
		} else {
			var req models.CreatePostRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeBadRequest(w, "Invalid request body")
				return
			}
			text = req.Text
		}

		post, err := svc.Create(r.Context(), authorID, requester, text, photo)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, post)
	}
}

// NewListUserPostsHandler returns an HTTP handler listing the posts of one user.
// @Summary List posts by user
// @Tags posts
// @Produce json
// @Param userId path string true "Author ID"
// @Success 200 {array} models.Post
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /posts/by/{userId} [get]
// @Security BearerAuth
func NewListUserPostsHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		posts, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writePosts(w, posts)
	}
}

// NewFeedHandler returns an HTTP handler with the caller's feed, newest first.
// @Summary Get feed
// @Description Posts by the user and everyone the user follows
// @Tags posts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Post
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Router /posts/feed/{userId} [get]
// @Security BearerAuth
func NewFeedHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		posts, err := svc.ListFeed(r.Context(), userID, requester)
		if err != nil {
			writeError(w, err)
			return
		}
		writePosts(w, posts)
	}
}

// NewGetPostPhotoHandler returns an HTTP handler serving a post's photo bytes.
// @Summary Get post photo
// @Tags posts
// @Produce image/jpeg,image/png,image/gif
// @Param postId path string true "Post ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/{postId}/photo [get]
// @Security BearerAuth
func NewGetPostPhotoHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := pathID(w, r, "postId")
		if !ok {
			return
		}

		photo, err := svc.GetPhoto(r.Context(), postID)
		if err != nil {
			writeError(w, err)
			return
		}
		writePhoto(w, photo)
	}
}

// NewDeletePostHandler returns an HTTP handler deleting one of the caller's posts.
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/{postId} [delete]
// @Security BearerAuth
func NewDeletePostHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}
		postID, ok := pathID(w, r, "postId")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), postID, requester); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Post deleted"})
	}
}

// NewLikeHandler returns an HTTP handler liking a post as the caller.
// @Summary Like post
// @Tags posts
// @Accept json
// @Produce json
// @Param postActionRequest body models.PostActionRequest true "Post to like"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/like [put]
// @Security BearerAuth
func NewLikeHandler(svc PostManager) http.HandlerFunc {
	return newPostActionHandler(func(ctx context.Context, userID uuid.UUID, req models.PostActionRequest) (*models.Post, error) {
		return svc.Like(ctx, req.PostID, userID)
	})
}

// NewUnlikeHandler returns an HTTP handler removing the caller's like.
// @Summary Unlike post
// @Tags posts
// @Accept json
// @Produce json
// @Param postActionRequest body models.PostActionRequest true "Post to unlike"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/unlike [put]
// @Security BearerAuth
func NewUnlikeHandler(svc PostManager) http.HandlerFunc {
	return newPostActionHandler(func(ctx context.Context, userID uuid.UUID, req models.PostActionRequest) (*models.Post, error) {
		return svc.Unlike(ctx, req.PostID, userID)
	})
}

// NewCommentHandler returns an HTTP handler commenting on a post as the caller.
// @Summary Comment post
// @Tags posts
// @Accept json
// @Produce json
// @Param postActionRequest body models.PostActionRequest true "Post and comment text"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/comment [put]
// @Security BearerAuth
func NewCommentHandler(svc PostManager) http.HandlerFunc {
	return newPostActionHandler(func(ctx context.Context, userID uuid.UUID, req models.PostActionRequest) (*models.Post, error) {
		if req.Comment == nil {
			return nil, apperr.Validation("text", "Text is required")
		}
		return svc.Comment(ctx, req.PostID, userID, req.Comment.Text)
	})
}

// NewUncommentHandler returns an HTTP handler removing one of the caller's comments.
// @Summary Uncomment post
// @Tags posts
// @Accept json
// @Produce json
// @Param postActionRequest body models.PostActionRequest true "Post and comment id"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /posts/uncomment [put]
// @Security BearerAuth
func NewUncommentHandler(svc PostManager) http.HandlerFunc {
	return newPostActionHandler(func(ctx context.Context, userID uuid.UUID, req models.PostActionRequest) (*models.Post, error) {
		if req.Comment == nil || req.Comment.ID == nil {
			return nil, apperr.Validation("comment._id", "Comment id is required")
		}
		return svc.Uncomment(ctx, req.PostID, *req.Comment.ID, userID)
	})
}

type postAction func(ctx context.Context, userID uuid.UUID, req models.PostActionRequest) (*models.Post, error)

// newPostActionHandler decodes a PostActionRequest and runs op as the caller.
// A userId in the body must name the caller.
func newPostActionHandler(op postAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}

		var req models.PostActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}
		if req.UserID != nil && *req.UserID != requester {
			writeError(w, apperr.ErrForbidden)
			return
		}
		if req.PostID == uuid.Nil {
			writeError(w, apperr.Validation("postId", "postId is required"))
			return
		}

		post, err := op(r.Context(), requester, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func writePosts(w http.ResponseWriter, posts []*models.Post) {
	if posts == nil {
		posts = []*models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}
