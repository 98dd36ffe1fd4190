package postgres

import (
	"context"
	"database/sql"
	"errors"

	"trekadmin/models"
	"trekadmin/ports"

	apperrors "trekadmin/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostRepositoryImpl implements PostRepository for PostgreSQL
type PostRepositoryImpl struct {
	db *sqlx.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sqlx.DB) ports.PostRepository {
	return &PostRepositoryImpl{db: db}
}

// CreatePost stores a new post
func (r *PostRepositoryImpl) CreatePost(ctx context.Context, post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO posts (id, title, author, body, published, created_at, updated_at)
		VALUES (:id, :title, :author, :body, :published, NOW(), NOW())
	`, post)
	return err
}

// GetPostByID retrieves a post by its ID
func (r *PostRepositoryImpl) GetPostByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.GetContext(ctx, &post, `
		SELECT id, title, author, body, published, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, postID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("post")
		}
		return nil, err
	}

	return &post, nil
}

// ListPosts returns all posts, newest first
func (r *PostRepositoryImpl) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.SelectContext(ctx, &posts, `
		SELECT id, title, author, body, published, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
	`)
	return posts, err
}

// UpdatePost replaces the editable fields of a post
func (r *PostRepositoryImpl) UpdatePost(ctx context.Context, post *models.Post) error {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE posts
		SET title = :title, author = :author, body = :body,
			published = :published, updated_at = NOW()
		WHERE id = :id
	`, post)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("post")
	}
	return nil
}

// DeletePost removes a post
func (r *PostRepositoryImpl) DeletePost(ctx context.Context, postID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("post")
	}
	return nil
}
