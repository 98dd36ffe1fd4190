package app

import (
	"context"
	"time"

	"trekadmin/models"
	"trekadmin/ports"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// AnalyticsService computes revenue reporting for the analytics view
type AnalyticsService struct {
	bookings ports.BookingRepository
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(bookings ports.BookingRepository) *AnalyticsService {
	return &AnalyticsService{bookings: bookings}
}

// RevenueSummary describes the distribution and direction of monthly
// revenue over the reporting window.
type RevenueSummary struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	TrendSlope float64 `json:"trendSlope"` // revenue delta per month from a least-squares fit
}

// RevenueReport is the analytics payload: the monthly series plus its
// summary statistics.
type RevenueReport struct {
	Months  []*models.RevenuePoint `json:"months"`
	Summary RevenueSummary         `json:"summary"`
}

// GetRevenueReport returns confirmed revenue per month for the last
// `months` months with summary statistics.
func (s *AnalyticsService) GetRevenueReport(ctx context.Context, months int) (*RevenueReport, error) {
	if months <= 0 {
		months = 12
	}

	since := time.Now().AddDate(0, -months, 0)
	points, err := s.bookings.MonthlyRevenue(ctx, since)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{Months: points}
	if report.Months == nil {
		report.Months = []*models.RevenuePoint{}
	}
	if len(points) == 0 {
		return report, nil
	}

	values := make([]float64, len(points))
	xs := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Revenue
		xs[i] = float64(i)
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	q25, _ := stats.Percentile(values, 25)
	q75, _ := stats.Percentile(values, 75)

	report.Summary = RevenueSummary{
		Mean:   mean,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}

	if len(points) >= 2 {
		_, slope := stat.LinearRegression(xs, values, nil, false)
		report.Summary.TrendSlope = slope
	}

	return report, nil
}
