package postgres

import (
	"context"
	"time"

	"trekadmin/models"
	"trekadmin/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BookingRepositoryImpl implements BookingRepository for PostgreSQL
type BookingRepositoryImpl struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new PostgreSQL booking repository
func NewBookingRepository(db *sqlx.DB) ports.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

const bookingDetailColumns = `
	bk.id, bk.batch_id, t.name AS trek_name, u.name AS user_name, u.email AS user_email,
	bk.participants, bk.amount, bk.status, b.start_date, bk.created_at
`

// ListBookingsByBatch returns all bookings on a batch with user and trek context
func (r *BookingRepositoryImpl) ListBookingsByBatch(ctx context.Context, batchID uuid.UUID) ([]*models.BookingDetail, error) {
	var bookings []*models.BookingDetail
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT `+bookingDetailColumns+`
		FROM bookings bk
		JOIN batches b ON b.id = bk.batch_id
		JOIN treks t ON t.id = b.trek_id
		JOIN users u ON u.id = bk.user_id
		WHERE bk.batch_id = $1
		ORDER BY bk.created_at DESC
	`, batchID)
	return bookings, err
}

// ListRecentBookings returns the newest bookings across all treks
func (r *BookingRepositoryImpl) ListRecentBookings(ctx context.Context, limit int) ([]*models.BookingDetail, error) {
	var bookings []*models.BookingDetail
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT `+bookingDetailColumns+`
		FROM bookings bk
		JOIN batches b ON b.id = bk.batch_id
		JOIN treks t ON t.id = b.trek_id
		JOIN users u ON u.id = bk.user_id
		ORDER BY bk.created_at DESC
		LIMIT $1
	`, limit)
	return bookings, err
}

// CountBookings returns the total number of non-cancelled bookings
func (r *BookingRepositoryImpl) CountBookings(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM bookings WHERE status <> $1
	`, models.BookingStatusCancelled)
	return count, err
}

// TotalRevenue sums confirmed booking amounts
func (r *BookingRepositoryImpl) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = $1
	`, models.BookingStatusConfirmed)
	return total, err
}

// MonthlyRevenue returns confirmed revenue grouped by month since the given time
func (r *BookingRepositoryImpl) MonthlyRevenue(ctx context.Context, since time.Time) ([]*models.RevenuePoint, error) {
	var points []*models.RevenuePoint
	err := r.db.SelectContext(ctx, &points, `
		SELECT date_trunc('month', created_at) AS month,
			COALESCE(SUM(amount), 0) AS revenue,
			COUNT(*) AS count
		FROM bookings
		WHERE status = $1 AND created_at >= $2
		GROUP BY month
		ORDER BY month
	`, models.BookingStatusConfirmed, since)
	return points, err
}
