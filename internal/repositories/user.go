package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/sbilibin2017/gw-social/internal/validation"
)

const userColumns = `id, name, email, hashed_password, salt, about, photo_content_type, photo_size, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the public profile of a user with its follow lists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	exec := executor(ctx, r.db, r.txGetter)

	var row models.UserDB
	err := sqlx.GetContext(ctx, exec, &row, query, id)
	logQuery(query, []any{id}, row.ID, err)
	if err != nil {
		return nil, translateError(err, "user")
	}

	user := row.Public()

	const followingQuery = `SELECT following_id FROM follows WHERE follower_id = $1 ORDER BY created_at`
	err = sqlx.SelectContext(ctx, exec, &user.Following, followingQuery, id)
	logQuery(followingQuery, []any{id}, len(user.Following), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	const followersQuery = `SELECT follower_id FROM follows WHERE following_id = $1 ORDER BY created_at`
	err = sqlx.SelectContext(ctx, exec, &user.Followers, followersQuery, id)
	logQuery(followersQuery, []any{id}, len(user.Followers), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// GetByEmail returns the full record including credentials. Only authentication should use it.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	email = normalizeEmail(email)

	var row models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, email)
	logQuery(query, []any{email}, row.ID, err)
	if err != nil {
		return nil, translateError(err, "user")
	}

	return &row, nil
}

// List returns every user in creation order, projected to summary fields.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY created_at, id
	`

	users := []models.UserSummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	now      func() time.Time
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter, now: time.Now}
}

// Create validates and inserts a new user. The email must not be taken.
func (r *UserWriteRepository) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if err := validation.User(name, email, &password); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	user := models.UserDB{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.SetCredential(password)

	const query = `
		INSERT INTO users (id, name, email, hashed_password, salt, about, photo_content_type, photo_size, created_at, updated_at)
		VALUES (:id, :name, :email, :hashed_password, :salt, :about, :photo_content_type, :photo_size, :created_at, :updated_at)
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)
	logQuery(query, []any{user.ID, user.Name, user.Email}, rowsAffected(res), err)
	if err != nil {
		return nil, translateError(err, "user")
	}

	return user.Public(), nil
}

// Update merges upd into the stored record, re-validates it and persists it.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	exec := executor(ctx, r.db, r.txGetter)

	const selectQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	var user models.UserDB
	err := sqlx.GetContext(ctx, exec, &user, selectQuery, id)
	logQuery(selectQuery, []any{id}, user.ID, err)
	if err != nil {
		return nil, translateError(err, "user")
	}

	if upd.Name != nil {
		user.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		user.Email = normalizeEmail(*upd.Email)
	}
	if upd.About != nil {
		user.About = strings.TrimSpace(*upd.About)
	}
	if upd.Photo != nil {
		user.PhotoContentType = upd.Photo.ContentType
		user.PhotoSize = upd.Photo.Size
	}

	if err := validation.User(user.Name, user.Email, upd.Password); err != nil {
		return nil, err
	}
	if upd.Password != nil {
		user.SetCredential(*upd.Password)
	}
	user.UpdatedAt = r.now().UTC()

	const updateQuery = `
		UPDATE users
		SET name = :name,
		    email = :email,
		    hashed_password = :hashed_password,
		    salt = :salt,
		    about = :about,
		    photo_content_type = :photo_content_type,
		    photo_size = :photo_size,
		    updated_at = :updated_at
		WHERE id = :id
	`

	res, err := sqlx.NamedExecContext(ctx, exec, updateQuery, user)
	logQuery(updateQuery, []any{user.ID, user.Name, user.Email}, rowsAffected(res), err)
	if err != nil {
		return nil, translateError(err, "user")
	}

	return user.Public(), nil
}

// Delete removes the user and, by cascade, their follows, posts, likes and comments.
// It returns the ids of the user's posts that had photos.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	exec := executor(ctx, r.db, r.txGetter)

	const photosQuery = `SELECT id FROM posts WHERE author_id = $1 AND photo_content_type <> ''`

	postIDs := []uuid.UUID{}
	err := sqlx.SelectContext(ctx, exec, &postIDs, photosQuery, id)
	logQuery(photosQuery, []any{id}, len(postIDs), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	const deleteQuery = `DELETE FROM users WHERE id = $1`

	res, err := exec.ExecContext(ctx, deleteQuery, id)
	n := rowsAffected(res)
	logQuery(deleteQuery, []any{id}, n, err)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if n == 0 {
		return nil, translateError(sql.ErrNoRows, "user")
	}

	return postIDs, nil
}

// Follow adds followingID to the follow set of followerID. Repeating it is a no-op.
func (r *UserWriteRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	const query = `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`

	args := []any{followerID, followingID, r.now().UTC()}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	return translateError(err, "user")
}

// Unfollow removes followingID from the follow set of followerID. Repeating it is a no-op.
func (r *UserWriteRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	exec := executor(ctx, r.db, r.txGetter)

	const query = `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	res, err := exec.ExecContext(ctx, query, followerID, followingID)
	n := rowsAffected(res)
	logQuery(query, []any{followerID, followingID}, n, err)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return nil
	}

	const existsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err = sqlx.GetContext(ctx, exec, &exists, existsQuery, followingID)
	logQuery(existsQuery, []any{followingID}, exists, err)
	if err != nil {
		return apperr.Internal(err)
	}
	if !exists {
		return translateError(sql.ErrNoRows, "user")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

