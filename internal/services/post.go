package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/facades"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=post.go -destination=mock_post.go -package=services

// PostReader defines read-only operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Post, error)
	ListFeed(ctx context.Context, userID uuid.UUID) ([]*models.Post, error)
	GetComment(ctx context.Context, postID, commentID uuid.UUID) (*models.CommentDB, error)
}

// PostWriter defines write operations for posts, likes and comments.
type PostWriter interface {
	Create(ctx context.Context, id, authorID uuid.UUID, text string, photo *models.PhotoInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, postID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error
	AddComment(ctx context.Context, id, postID, userID uuid.UUID, text string) error
	RemoveComment(ctx context.Context, commentID uuid.UUID) error
}

// PostService handles posts, the feed, likes and comments.
type PostService struct {
	reader    PostReader
	writer    PostWriter
	photos    PhotoStore
	sanitizer TextSanitizer
	events    EventPublisher
}

// NewPostService creates a new PostService.
func NewPostService(reader PostReader, writer PostWriter, photos PhotoStore, sanitizer TextSanitizer, events EventPublisher) *PostService {
	return &PostService{
		reader:    reader,
		writer:    writer,
		photos:    photos,
		sanitizer: sanitizer,
		events:    events,
	}
}

// Create publishes a new post for authorID. Only the author may post as themselves.
func (s *PostService) Create(ctx context.Context, authorID, requester uuid.UUID, text string, photo *models.Photo) (*models.Post, error) {
	if requester != authorID {
		logger.Log.Warnw("post create denied", "userID", authorID, "requester", requester)
		return nil, apperr.ErrForbidden
	}

	text = s.sanitizer.Text(text)
	if text == "" {
		return nil, apperr.Validation("text", "Text is required")
	}
	if err := validatePhoto(photo); err != nil {
		return nil, err
	}

	id := uuid.New()
	var info *models.PhotoInfo
	if photo != nil {
		info = &models.PhotoInfo{ContentType: photo.ContentType, Size: int64(len(photo.Data))}
	}

	if err := s.writer.Create(ctx, id, authorID, text, info); err != nil {
		logger.Log.Errorw("failed to create post", "userID", authorID, "error", err)
		return nil, err
	}

	if photo != nil {
		key := facades.PostPhotoKey(id)
		if err := s.photos.Put(ctx, key, *photo); err != nil {
			return nil, err
		}
		middlewares.AfterRollback(ctx, func() {
			if err := s.photos.Delete(ctx, key); err != nil {
				logger.Log.Warnw("failed to delete photo of rolled back post", "postID", id, "error", err)
			}
		})
	}

	s.publish(ctx, models.NewEvent(models.EventPostCreated, authorID, id))

	return s.reader.GetByID(ctx, id)
}

// Delete removes a post. Only its author may delete it.
func (s *PostService) Delete(ctx context.Context, postID, requester uuid.UUID) error {
	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.PostedBy.ID != requester {
		logger.Log.Warnw("post delete denied", "postID", postID, "requester", requester)
		return apperr.ErrForbidden
	}

	if err := s.writer.Delete(ctx, postID); err != nil {
		logger.Log.Errorw("failed to delete post", "postID", postID, "error", err)
		return err
	}

	middlewares.AfterCommit(ctx, func() {
		if post.Photo != nil {
			if err := s.photos.Delete(ctx, facades.PostPhotoKey(postID)); err != nil {
				logger.Log.Warnw("failed to delete photo of removed post", "postID", postID, "error", err)
			}
		}
		s.events.Publish(ctx, models.NewEvent(models.EventPostDeleted, requester, postID))
	})
	return nil
}

// ListByUser returns the posts of userID, newest first.
func (s *PostService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	posts, err := s.reader.ListByAuthor(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "userID", userID, "error", err)
		return nil, err
	}
	return posts, nil
}

// ListFeed returns the feed of userID. Only userID may read it.
func (s *PostService) ListFeed(ctx context.Context, userID, requester uuid.UUID) ([]*models.Post, error) {
	if requester != userID {
		logger.Log.Warnw("feed read denied", "userID", userID, "requester", requester)
		return nil, apperr.ErrForbidden
	}

	posts, err := s.reader.ListFeed(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list feed", "userID", userID, "error", err)
		return nil, err
	}
	return posts, nil
}

// Like adds userID to the likes of a post. Liking twice has no further effect.
func (s *PostService) Like(ctx context.Context, postID, userID uuid.UUID) (*models.Post, error) {
	if err := s.writer.AddLike(ctx, postID, userID); err != nil {
		logger.Log.Errorw("failed to like post", "postID", postID, "userID", userID, "error", err)
		return nil, err
	}

	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.NewEvent(models.EventPostLiked, userID, postID))
	return post, nil
}

// Unlike removes userID from the likes of a post.
func (s *PostService) Unlike(ctx context.Context, postID, userID uuid.UUID) (*models.Post, error) {
	if err := s.writer.RemoveLike(ctx, postID, userID); err != nil {
		logger.Log.Errorw("failed to unlike post", "postID", postID, "userID", userID, "error", err)
		return nil, err
	}

	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.NewEvent(models.EventPostUnliked, userID, postID))
	return post, nil
}

// Comment appends a comment by userID to a post.
func (s *PostService) Comment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.Post, error) {
	text = s.sanitizer.Text(text)
	if text == "" {
		return nil, apperr.Validation("text", "Text is required")
	}

	commentID := uuid.New()
	if err := s.writer.AddComment(ctx, commentID, postID, userID, text); err != nil {
		logger.Log.Errorw("failed to comment post", "postID", postID, "userID", userID, "error", err)
		return nil, err
	}

	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.NewEvent(models.EventPostCommented, userID, commentID))
	return post, nil
}

// Uncomment removes a comment. Only the comment's author may remove it.
func (s *PostService) Uncomment(ctx context.Context, postID, commentID, requester uuid.UUID) (*models.Post, error) {
	comment, err := s.reader.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != requester {
		logger.Log.Warnw("uncomment denied", "commentID", commentID, "requester", requester)
		return nil, apperr.ErrForbidden
	}

	if err := s.writer.RemoveComment(ctx, commentID); err != nil {
		logger.Log.Errorw("failed to remove comment", "commentID", commentID, "error", err)
		return nil, err
	}

	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.NewEvent(models.EventPostUncommented, requester, commentID))
	return post, nil
}

// GetPhoto returns the photo attached to a post.
func (s *PostService) GetPhoto(ctx context.Context, postID uuid.UUID) (*models.Photo, error) {
	post, err := s.reader.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Photo == nil {
		return nil, apperr.ErrNotFound
	}
	return s.photos.Get(ctx, facades.PostPhotoKey(postID))
}

// publish sends e once the surrounding transaction commits.
func (s *PostService) publish(ctx context.Context, e models.Event) {
	middlewares.AfterCommit(ctx, func() {
		s.events.Publish(ctx, e)
	})
}
