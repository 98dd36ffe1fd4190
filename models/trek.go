package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchStatus values as stored
const (
	BatchStatusActive  = "active"
	BatchStatusStopped = "stopped"
)

// Trek is the stored, batch-independent description of a guided
// outdoor itinerary product.
type Trek struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Location       string         `json:"location" db:"location"`
	Difficulty     string         `json:"difficulty" db:"difficulty"`
	Category       string         `json:"category" db:"category"`
	FitnessLevel   string         `json:"fitnessLevel" db:"fitness_level"`
	Description    string         `json:"description" db:"description"`
	Highlights     pq.StringArray `json:"highlights" db:"highlights"`
	ThingsToCarry  pq.StringArray `json:"thingsToCarry" db:"things_to_carry"`
	ImportantNotes pq.StringArray `json:"importantNotes" db:"important_notes"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}

// TrekSummary is the list-view projection for the admin trek table
type TrekSummary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Location   string    `json:"location" db:"location"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	Category   string    `json:"category" db:"category"`
	BatchCount int       `json:"batchCount" db:"batch_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Batch is one stored schedule instance of a trek. Itinerary is kept
// as the JSON document the upload pipeline produced.
type Batch struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	TrekID          uuid.UUID       `json:"trekId" db:"trek_id"`
	StartDate       time.Time       `json:"startDate" db:"start_date"`
	EndDate         time.Time       `json:"endDate" db:"end_date"`
	AvailableSlots  int             `json:"availableSlots" db:"available_slots"`
	Price           float64         `json:"price" db:"price"`
	MinAge          *int            `json:"minAge,omitempty" db:"min_age"`
	MaxAge          *int            `json:"maxAge,omitempty" db:"max_age"`
	Duration        string          `json:"duration" db:"duration"`
	MinParticipants *int            `json:"minParticipants,omitempty" db:"min_participants"`
	MaxParticipants *int            `json:"maxParticipants,omitempty" db:"max_participants"`
	Status          string          `json:"status" db:"status"`
	Inclusions      pq.StringArray  `json:"inclusions" db:"inclusions"`
	Exclusions      pq.StringArray  `json:"exclusions" db:"exclusions"`
	Itinerary       json.RawMessage `json:"itinerary" db:"itinerary"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}
