package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/sbilibin2017/gw-social/internal/sanitizer"
	"github.com/sbilibin2017/gw-social/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postMocks struct {
	reader *services.MockPostReader
	writer *services.MockPostWriter
	photos *services.MockPhotoStore
	events *services.MockEventPublisher
}

func newPostService(t *testing.T) (*services.PostService, postMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := postMocks{
		reader: services.NewMockPostReader(ctrl),
		writer: services.NewMockPostWriter(ctrl),
		photos: services.NewMockPhotoStore(ctrl),
		events: services.NewMockEventPublisher(ctrl),
	}
	return services.NewPostService(m.reader, m.writer, m.photos, sanitizer.New(), m.events), m
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("forbidden for another user", func(t *testing.T) {
		svc, _ := newPostService(t)
		_, err := svc.Create(ctx, author, uuid.New(), "hello", nil)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("text required after sanitizing", func(t *testing.T) {
		svc, _ := newPostService(t)
		_, err := svc.Create(ctx, author, author, "<script>alert(1)</script>", nil)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("with photo", func(t *testing.T) {
		svc, m := newPostService(t)
		photo := &models.Photo{Data: []byte{1, 2, 3}, ContentType: "image/jpeg"}

		var postID uuid.UUID
		m.writer.EXPECT().Create(ctx, gomock.Any(), author, "hello", &models.PhotoInfo{ContentType: "image/jpeg", Size: 3}).
			DoAndReturn(func(_ context.Context, id, _ uuid.UUID, _ string, _ *models.PhotoInfo) error {
				postID = id
				return nil
			})
		m.photos.EXPECT().Put(ctx, gomock.Any(), *photo).DoAndReturn(func(_ context.Context, key string, _ models.Photo) error {
			assert.Equal(t, "posts/"+postID.String()+"/photo", key)
			return nil
		})
		m.events.EXPECT().Publish(ctx, gomock.Any())
		m.reader.EXPECT().GetByID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			assert.Equal(t, postID, id)
			return &models.Post{ID: id, Text: "hello"}, nil
		})

		post, err := svc.Create(ctx, author, author, "  hello ", photo)
		require.NoError(t, err)
		assert.Equal(t, "hello", post.Text)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	postID := uuid.New()
	post := &models.Post{
		ID:       postID,
		PostedBy: models.Author{ID: author},
		Photo:    &models.PhotoInfo{ContentType: "image/png", Size: 1},
	}

	t.Run("only the author", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, postID).Return(post, nil)

		assert.ErrorIs(t, svc.Delete(ctx, postID, uuid.New()), apperr.ErrForbidden)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, postID).Return(nil, apperr.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, postID, author), apperr.ErrNotFound)
	})

	t.Run("removes post and photo", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetByID(ctx, postID).Return(post, nil)
		m.writer.EXPECT().Delete(ctx, postID).Return(nil)
		m.photos.EXPECT().Delete(ctx, "posts/"+postID.String()+"/photo").Return(nil)
		m.events.EXPECT().Publish(ctx, gomock.Any())

		assert.NoError(t, svc.Delete(ctx, postID, author))
	})
}

func TestPostService_ListFeed(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	t.Run("owner only", func(t *testing.T) {
		svc, _ := newPostService(t)
		_, err := svc.ListFeed(ctx, user, uuid.New())
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("owner", func(t *testing.T) {
		svc, m := newPostService(t)
		posts := []*models.Post{{ID: uuid.New()}}
		m.reader.EXPECT().ListFeed(ctx, user).Return(posts, nil)

		got, err := svc.ListFeed(ctx, user, user)
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})
}

func TestPostService_ListByUser(t *testing.T) {
	ctx := context.Background()
	svc, m := newPostService(t)
	user := uuid.New()

	m.reader.EXPECT().ListByAuthor(ctx, user).Return([]*models.Post{}, nil)

	got, err := svc.ListByUser(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostService_LikeTwice(t *testing.T) {
	ctx := context.Background()
	svc, m := newPostService(t)
	postID, user := uuid.New(), uuid.New()
	liked := &models.Post{ID: postID, Likes: []uuid.UUID{user}}

	m.writer.EXPECT().AddLike(ctx, postID, user).Return(nil).Times(2)
	m.reader.EXPECT().GetByID(ctx, postID).Return(liked, nil).Times(2)
	m.events.EXPECT().Publish(ctx, gomock.Any()).Times(2)

	for i := 0; i < 2; i++ {
		got, err := svc.Like(ctx, postID, user)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{user}, got.Likes)
	}
}

func TestPostService_Unlike(t *testing.T) {
	ctx := context.Background()
	svc, m := newPostService(t)
	postID, user := uuid.New(), uuid.New()

	m.writer.EXPECT().RemoveLike(ctx, postID, user).Return(nil)
	m.reader.EXPECT().GetByID(ctx, postID).Return(nil, apperr.ErrNotFound)

	_, err := svc.Unlike(ctx, postID, user)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostService_Comment(t *testing.T) {
	ctx := context.Background()
	postID, user := uuid.New(), uuid.New()

	t.Run("empty", func(t *testing.T) {
		svc, _ := newPostService(t)
		_, err := svc.Comment(ctx, postID, user, "   ")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("appends", func(t *testing.T) {
		svc, m := newPostService(t)
		m.writer.EXPECT().AddComment(ctx, gomock.Any(), postID, user, "nice").Return(nil)
		m.reader.EXPECT().GetByID(ctx, postID).Return(&models.Post{ID: postID, Comments: []models.Comment{{Text: "nice"}}}, nil)
		m.events.EXPECT().Publish(ctx, gomock.Any())

		got, err := svc.Comment(ctx, postID, user, "nice")
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
	})
}

func TestPostService_Uncomment(t *testing.T) {
	ctx := context.Background()
	postID, commentID, author := uuid.New(), uuid.New(), uuid.New()

	t.Run("not the comment author", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetComment(ctx, postID, commentID).Return(&models.CommentDB{ID: commentID, UserID: author}, nil)

		_, err := svc.Uncomment(ctx, postID, commentID, uuid.New())
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("unknown comment", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetComment(ctx, postID, commentID).Return(nil, apperr.ErrNotFound)

		_, err := svc.Uncomment(ctx, postID, commentID, author)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("author removes", func(t *testing.T) {
		svc, m := newPostService(t)
		m.reader.EXPECT().GetComment(ctx, postID, commentID).Return(&models.CommentDB{ID: commentID, UserID: author}, nil)
		m.writer.EXPECT().RemoveComment(ctx, commentID).Return(nil)
		m.reader.EXPECT().GetByID(ctx, postID).Return(&models.Post{ID: postID, Comments: []models.Comment{}}, nil)
		m.events.EXPECT().Publish(ctx, gomock.Any())

		got, err := svc.Uncomment(ctx, postID, commentID, author)
		require.NoError(t, err)
		assert.Empty(t, got.Comments)
	})
}

func TestPostService_GetPhoto(t *testing.T) {
	ctx := context.Background()
	svc, m := newPostService(t)
	postID := uuid.New()

	m.reader.EXPECT().GetByID(ctx, postID).Return(&models.Post{ID: postID}, nil)

	_, err := svc.GetPhoto(ctx, postID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
