package ports

import (
	"context"

	"trekadmin/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetUserByID retrieves a user by their ID
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// ListUsersWithStats returns all users with booking totals for the
	// admin user table
	ListUsersWithStats(ctx context.Context) ([]*models.UserWithStats, error)

	// CountUsers returns the total number of users
	CountUsers(ctx context.Context) (int, error)
}
