package app

import (
	"context"

	"trekadmin/models"
	"trekadmin/ports"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the admin landing-page summary
type DashboardService struct {
	treks    ports.TrekRepository
	bookings ports.BookingRepository
	users    ports.UserRepository
}

// NewDashboardService creates a dashboard service
func NewDashboardService(treks ports.TrekRepository, bookings ports.BookingRepository, users ports.UserRepository) *DashboardService {
	return &DashboardService{treks: treks, bookings: bookings, users: users}
}

// DashboardSummary holds the counts and feeds the admin console shows
// on its landing page.
type DashboardSummary struct {
	TrekCount      int                     `json:"trekCount"`
	BookingCount   int                     `json:"bookingCount"`
	UserCount      int                     `json:"userCount"`
	TotalRevenue   float64                 `json:"totalRevenue"`
	RecentBookings []*models.BookingDetail `json:"recentBookings"`
}

// GetSummary fans the independent repository queries out concurrently;
// each touches its own table and no partial summary is ever returned.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		treks, err := s.treks.ListTreks(ctx)
		if err != nil {
			return err
		}
		summary.TrekCount = len(treks)
		return nil
	})

	g.Go(func() error {
		count, err := s.bookings.CountBookings(ctx)
		if err != nil {
			return err
		}
		summary.BookingCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.users.CountUsers(ctx)
		if err != nil {
			return err
		}
		summary.UserCount = count
		return nil
	})

	g.Go(func() error {
		revenue, err := s.bookings.TotalRevenue(ctx)
		if err != nil {
			return err
		}
		summary.TotalRevenue = revenue
		return nil
	})

	g.Go(func() error {
		recent, err := s.bookings.ListRecentBookings(ctx, 5)
		if err != nil {
			return err
		}
		summary.RecentBookings = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if summary.RecentBookings == nil {
		summary.RecentBookings = []*models.BookingDetail{}
	}
	return summary, nil
}
