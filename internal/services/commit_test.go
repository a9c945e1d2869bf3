package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveInTx runs fn as a handler behind TxMiddleware. fn returns the response status.
func serveInTx(t *testing.T, commit bool, fn func(ctx context.Context) int) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(fn(r.Context()))
	})
	middlewares.TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Follow_CacheAndEventsWaitForCommit(t *testing.T) {
	me, other := uuid.New(), uuid.New()

	t.Run("committed", func(t *testing.T) {
		svc, m := newUserService(t)
		handlerDone := false

		m.writer.EXPECT().Follow(gomock.Any(), me, other).Return(nil)
		m.reader.EXPECT().GetByID(gomock.Any(), other).Return(&models.User{ID: other}, nil)
		m.cache.EXPECT().Delete(gomock.Any(), me, other).DoAndReturn(func(context.Context, ...uuid.UUID) error {
			assert.True(t, handlerDone)
			return nil
		})
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e models.Event) {
			assert.True(t, handlerDone)
			assert.Equal(t, models.EventUserFollowed, e.Type)
		})

		serveInTx(t, true, func(ctx context.Context) int {
			_, err := svc.Follow(ctx, me, other)
			require.NoError(t, err)
			handlerDone = true
			return http.StatusOK
		})
	})

	t.Run("rolled back", func(t *testing.T) {
		svc, m := newUserService(t)

		m.writer.EXPECT().Follow(gomock.Any(), me, other).Return(nil)
		m.reader.EXPECT().GetByID(gomock.Any(), other).Return(&models.User{ID: other}, nil)

		serveInTx(t, false, func(ctx context.Context) int {
			_, err := svc.Follow(ctx, me, other)
			require.NoError(t, err)
			return http.StatusInternalServerError
		})
	})
}

func TestUserService_DeleteProfile_KeepsPhotosOnRollback(t *testing.T) {
	svc, m := newUserService(t)
	id := uuid.New()

	m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.User{
		ID:    id,
		Photo: &models.PhotoInfo{ContentType: "image/png", Size: 1},
	}, nil)
	m.writer.EXPECT().Delete(gomock.Any(), id).Return(nil, nil)

	serveInTx(t, false, func(ctx context.Context) int {
		require.NoError(t, svc.DeleteProfile(ctx, id, id))
		return http.StatusInternalServerError
	})
}

func TestPostService_Create_RemovesPhotoOnRollback(t *testing.T) {
	svc, m := newPostService(t)
	author := uuid.New()
	photo := &models.Photo{Data: []byte{1, 2, 3}, ContentType: "image/jpeg"}

	var key string
	m.writer.EXPECT().Create(gomock.Any(), gomock.Any(), author, "hello", gomock.Any()).Return(nil)
	m.photos.EXPECT().Put(gomock.Any(), gomock.Any(), *photo).DoAndReturn(func(_ context.Context, k string, _ models.Photo) error {
		key = k
		return nil
	})
	m.reader.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.Post{Text: "hello"}, nil)
	m.photos.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, keys ...string) error {
		assert.Equal(t, []string{key}, keys)
		return nil
	})

	serveInTx(t, false, func(ctx context.Context) int {
		_, err := svc.Create(ctx, author, author, "hello", photo)
		require.NoError(t, err)
		return http.StatusInternalServerError
	})
}

func TestPostService_Like_PublishesAfterCommit(t *testing.T) {
	svc, m := newPostService(t)
	postID, userID := uuid.New(), uuid.New()
	handlerDone := false

	m.writer.EXPECT().AddLike(gomock.Any(), postID, userID).Return(nil)
	m.reader.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e models.Event) {
		assert.True(t, handlerDone)
		assert.Equal(t, models.EventPostLiked, e.Type)
	})

	serveInTx(t, true, func(ctx context.Context) int {
		_, err := svc.Like(ctx, postID, userID)
		require.NoError(t, err)
		handlerDone = true
		return http.StatusOK
	})
}
