package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account as the admin console sees it
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserWithStats augments a user with booking totals for the admin
// user table.
type UserWithStats struct {
	User
	BookingCount int     `json:"bookingCount" db:"booking_count"`
	TotalSpent   float64 `json:"totalSpent" db:"total_spent"`
}
