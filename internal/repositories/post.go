package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
)

const postSelect = `
	SELECT p.id, p.author_id, u.name AS author_name, p.text, p.photo_content_type, p.photo_size, p.created_at
	FROM posts p
	JOIN users u ON u.id = p.author_id
`

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostReadRepository(db *sqlx.DB, txGetter TxGetter) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns a post with its likes and comments.
func (r *PostReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	exec := executor(ctx, r.db, r.txGetter)

	var row models.PostDB
	err := sqlx.GetContext(ctx, exec, &row, query, id)
	logQuery(query, []any{id}, row.ID, err)
	if err != nil {
		return nil, translateError(err, "post")
	}

	posts, err := r.attach(ctx, exec, []models.PostDB{row})
	if err != nil {
		return nil, err
	}
	return posts[0], nil
}

// ListByAuthor returns the posts of one user, newest first.
func (r *PostReadRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Post, error) {
	query := postSelect + ` WHERE p.author_id = $1 ORDER BY p.created_at DESC, p.id`
	return r.list(ctx, query, authorID)
}

// ListFeed returns the posts of userID and of everyone userID follows, newest first.
func (r *PostReadRepository) ListFeed(ctx context.Context, userID uuid.UUID) ([]*models.Post, error) {
	query := postSelect + `
		WHERE p.author_id = $1
		   OR p.author_id IN (SELECT following_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC, p.id
	`
	return r.list(ctx, query, userID)
}

// GetComment returns one comment of a post.
func (r *PostReadRepository) GetComment(ctx context.Context, postID, commentID uuid.UUID) (*models.CommentDB, error) {
	const query = `
		SELECT c.id, c.post_id, c.user_id, u.name AS user_name, c.text, c.created_at
		FROM post_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1 AND c.id = $2
	`

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &comment, query, postID, commentID)
	logQuery(query, []any{postID, commentID}, comment.ID, err)
	if err != nil {
		return nil, translateError(err, "comment")
	}
	return &comment, nil
}

func (r *PostReadRepository) list(ctx context.Context, query string, id uuid.UUID) ([]*models.Post, error) {
	exec := executor(ctx, r.db, r.txGetter)

	rows := []models.PostDB{}
	err := sqlx.SelectContext(ctx, exec, &rows, query, id)
	logQuery(query, []any{id}, len(rows), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return r.attach(ctx, exec, rows)
}

// attach loads likes and comments for all rows with one query each.
func (r *PostReadRepository) attach(ctx context.Context, exec sqlx.ExtContext, rows []models.PostDB) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(rows))
	if len(rows) == 0 {
		return posts, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	byID := make(map[uuid.UUID]*models.Post, len(rows))
	for _, row := range rows {
		p := models.NewPost(row)
		posts = append(posts, p)
		ids = append(ids, row.ID)
		byID[row.ID] = p
	}

	likesQuery, args, err := sqlx.In(`SELECT post_id, user_id FROM post_likes WHERE post_id IN (?) ORDER BY created_at, user_id`, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	likesQuery = exec.Rebind(likesQuery)

	likes := []models.LikeDB{}
	err = sqlx.SelectContext(ctx, exec, &likes, likesQuery, args...)
	logQuery(likesQuery, args, len(likes), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, l := range likes {
		if p, ok := byID[l.PostID]; ok {
			p.Likes = append(p.Likes, l.UserID)
		}
	}

	commentsQuery, args, err := sqlx.In(`
		SELECT c.id, c.post_id, c.user_id, u.name AS user_name, c.text, c.created_at
		FROM post_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id IN (?)
		ORDER BY c.seq
	`, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	commentsQuery = exec.Rebind(commentsQuery)

	comments := []models.CommentDB{}
	err = sqlx.SelectContext(ctx, exec, &comments, commentsQuery, args...)
	logQuery(commentsQuery, args, len(comments), err)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, c := range comments {
		if p, ok := byID[c.PostID]; ok {
			p.Comments = append(p.Comments, models.Comment{
				ID:       c.ID,
				Text:     c.Text,
				PostedBy: models.Author{ID: c.UserID, Name: c.UserName},
				Created:  c.CreatedAt,
			})
		}
	}

	return posts, nil
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	now      func() time.Time
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter, now: time.Now}
}

// Create inserts a post. An unknown author fails with apperr.ErrNotFound.
func (r *PostWriteRepository) Create(ctx context.Context, id, authorID uuid.UUID, text string, photo *models.PhotoInfo) error {
	const query = `
		INSERT INTO posts (id, author_id, text, photo_content_type, photo_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var contentType string
	var size int64
	if photo != nil {
		contentType, size = photo.ContentType, photo.Size
	}

	args := []any{id, authorID, text, contentType, size, r.now().UTC()}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{id, authorID, contentType, size}, rowsAffected(res), err)

	return translateError(err, "user")
}

// Delete removes a post with its likes and comments.
func (r *PostWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM posts WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	n := rowsAffected(res)
	logQuery(query, []any{id}, n, err)
	if err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AddLike adds userID to the like set of a post. Repeating it is a no-op.
func (r *PostWriteRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	const query = `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	args := []any{postID, userID, r.now().UTC()}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	return translateError(err, "post")
}

// RemoveLike removes userID from the like set of a post. Removing a missing like is a no-op.
func (r *PostWriteRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	const query = `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, postID, userID)
	logQuery(query, []any{postID, userID}, rowsAffected(res), err)
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// AddComment appends a comment to a post.
func (r *PostWriteRepository) AddComment(ctx context.Context, id, postID, userID uuid.UUID, text string) error {
	const query = `
		INSERT INTO post_comments (id, post_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	args := []any{id, postID, userID, text, r.now().UTC()}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{id, postID, userID}, rowsAffected(res), err)

	return translateError(err, "post")
}

// RemoveComment deletes one comment.
func (r *PostWriteRepository) RemoveComment(ctx context.Context, commentID uuid.UUID) error {
	const query = `DELETE FROM post_comments WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, commentID)
	n := rowsAffected(res)
	logQuery(query, []any{commentID}, n, err)
	if err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
