package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses as stored
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Booking is one user's reservation on a batch
type Booking struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BatchID      uuid.UUID `json:"batchId" db:"batch_id"`
	UserID       uuid.UUID `json:"userId" db:"user_id"`
	Participants int       `json:"participants" db:"participants"`
	Amount       float64   `json:"amount" db:"amount"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// BookingDetail joins booking rows with user and trek context for the
// admin bookings table and the per-batch export.
type BookingDetail struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BatchID      uuid.UUID `json:"batchId" db:"batch_id"`
	TrekName     string    `json:"trekName" db:"trek_name"`
	UserName     string    `json:"userName" db:"user_name"`
	UserEmail    string    `json:"userEmail" db:"user_email"`
	Participants int       `json:"participants" db:"participants"`
	Amount       float64   `json:"amount" db:"amount"`
	Status       string    `json:"status" db:"status"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RevenuePoint is one month of realized booking revenue
type RevenuePoint struct {
	Month   time.Time `json:"month" db:"month"`
	Revenue float64   `json:"revenue" db:"revenue"`
	Count   int       `json:"count" db:"count"`
}
