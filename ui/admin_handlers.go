package ui

import (
	"net/http"
	"strconv"

	"trekadmin/models"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListUsersWithStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if users == nil {
		users = []*models.UserWithStats{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

func (s *Server) handleRecentBookings(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}

	bookings, err := s.bookings.ListRecentBookings(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if bookings == nil {
		bookings = []*models.BookingDetail{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dashboard.GetSummary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleRevenueReport(w http.ResponseWriter, r *http.Request) {
	months, err := strconv.Atoi(r.URL.Query().Get("months"))
	if err != nil {
		months = 12
	}

	report, err := s.analytics.GetRevenueReport(r.Context(), months)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
