package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"NoRows", sql.ErrNoRows, apperr.ErrNotFound},
		{"Unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, apperr.ErrConflict},
		{"ForeignKey", &pgconn.PgError{Code: "23503"}, apperr.ErrNotFound},
		{"OtherPg", &pgconn.PgError{Code: "57014"}, apperr.ErrInternal},
		{"Other", errors.New("connection reset"), apperr.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err, "user"), tt.target)
		})
	}

	assert.NoError(t, translateError(nil, "user"))
}

func TestExecutor_PrefersTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, nil))
	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, func(context.Context) *sqlx.Tx { return nil }))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	got := executor(ctx, db, func(context.Context) *sqlx.Tx { return tx })
	assert.Equal(t, sqlx.ExtContext(tx), got)

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create_EmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user, err := repo.Create(context.Background(), "Jane", "jane@example.com", "secret1")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create_ValidationBeforeIO(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	_, err := repo.Create(context.Background(), "", "not-an-email", "123")

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name is required", verr.Fields["name"])
	assert.Equal(t, "Please fill a valid email address", verr.Fields["email"])
	assert.Equal(t, "Password must be at least 6 characters.", verr.Fields["password"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	id := uuid.New()

	mock.ExpectQuery("SELECT id FROM posts").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM users").WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_StorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").WithArgs(id).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostWriteRepository_RemoveComment_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostWriteRepository(db, nil)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM post_comments").WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.RemoveComment(context.Background(), id), apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
