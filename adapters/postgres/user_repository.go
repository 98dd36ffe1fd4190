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

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetUserByID retrieves a user by their ID
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, phone, is_active, created_at
		FROM users
		WHERE id = $1
	`, userID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, err
	}

	return &user, nil
}

// ListUsersWithStats returns all users with booking totals
func (r *UserRepositoryImpl) ListUsersWithStats(ctx context.Context) ([]*models.UserWithStats, error) {
	var users []*models.UserWithStats
	err := r.db.SelectContext(ctx, &users, `
		SELECT u.id, u.name, u.email, u.phone, u.is_active, u.created_at,
			COUNT(bk.id) AS booking_count,
			COALESCE(SUM(bk.amount) FILTER (WHERE bk.status = 'confirmed'), 0) AS total_spent
		FROM users u
		LEFT JOIN bookings bk ON bk.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`)
	return users, err
}

// CountUsers returns the total number of users
func (r *UserRepositoryImpl) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}
