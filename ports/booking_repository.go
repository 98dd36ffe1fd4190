package ports

import (
	"context"
	"time"

	"trekadmin/models"

	"github.com/google/uuid"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// ListBookingsByBatch returns all bookings on a batch with user and
	// trek context
	ListBookingsByBatch(ctx context.Context, batchID uuid.UUID) ([]*models.BookingDetail, error)

	// ListRecentBookings returns the newest bookings across all treks
	ListRecentBookings(ctx context.Context, limit int) ([]*models.BookingDetail, error)

	// CountBookings returns the total number of non-cancelled bookings
	CountBookings(ctx context.Context) (int, error)

	// TotalRevenue sums confirmed booking amounts
	TotalRevenue(ctx context.Context) (float64, error)

	// MonthlyRevenue returns confirmed revenue grouped by month since
	// the given time
	MonthlyRevenue(ctx context.Context, since time.Time) ([]*models.RevenuePoint, error)
}
