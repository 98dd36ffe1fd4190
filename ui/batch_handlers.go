package ui

import (
	"net/http"

	"trekadmin/adapters/excel"
	"trekadmin/models"
)

func (s *Server) handleListBatches(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	batches, err := s.batches.ListBatchesByTrek(r.Context(), trekID)
	if err != nil {
		respondError(w, err)
		return
	}
	if batches == nil {
		batches = []*models.Batch{}
	}
	respondJSON(w, http.StatusOK, batches)
}

func (s *Server) handleStopBooking(w http.ResponseWriter, r *http.Request) {
	s.setBatchStatus(w, r, models.BatchStatusStopped)
}

func (s *Server) handleResumeBooking(w http.ResponseWriter, r *http.Request) {
	s.setBatchStatus(w, r, models.BatchStatusActive)
}

func (s *Server) setBatchStatus(w http.ResponseWriter, r *http.Request, status string) {
	batchID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := s.batches.SetBatchStatus(r.Context(), batchID, status); err != nil {
		respondError(w, err)
		return
	}

	s.logger.Info("batch %s status set to %s", batchID, status)
	respondJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (s *Server) handleBatchBookings(w http.ResponseWriter, r *http.Request) {
	batchID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	bookings, err := s.bookings.ListBookingsByBatch(r.Context(), batchID)
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

// handleExportBookings streams a batch's bookings as a spreadsheet
func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	batchID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	bookings, err := s.bookings.ListBookingsByBatch(r.Context(), batchID)
	if err != nil {
		respondError(w, err)
		return
	}

	data, err := excel.WriteBookingsWorkbook(bookings)
	if err != nil {
		respondError(w, err)
		return
	}

	respondAttachment(w, "batch_bookings_"+batchID.String()+".xlsx", xlsxContentType, data)
}
