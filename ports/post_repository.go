package ports

import (
	"context"

	"trekadmin/models"

	"github.com/google/uuid"
)

// PostRepository defines the interface for blog post operations
type PostRepository interface {
	// CreatePost stores a new post
	CreatePost(ctx context.Context, post *models.Post) error

	// GetPostByID retrieves a post by its ID
	GetPostByID(ctx context.Context, postID uuid.UUID) (*models.Post, error)

	// ListPosts returns all posts, newest first
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// UpdatePost replaces the editable fields of a post
	UpdatePost(ctx context.Context, post *models.Post) error

	// DeletePost removes a post
	DeletePost(ctx context.Context, postID uuid.UUID) error
}
