package ports

import (
	"context"

	"trekadmin/models"

	"github.com/google/uuid"
)

// TrekRepository defines the interface for trek data operations
type TrekRepository interface {
	// CreateTrek persists a trek together with its batches in one
	// transaction
	CreateTrek(ctx context.Context, t *models.Trek, batches []*models.Batch) error

	// GetTrekByID retrieves a trek by its ID
	GetTrekByID(ctx context.Context, trekID uuid.UUID) (*models.Trek, error)

	// ListTreks returns summary rows for the admin trek table
	ListTreks(ctx context.Context) ([]*models.TrekSummary, error)

	// UpdateTrek replaces the trek-level fields of an existing trek
	UpdateTrek(ctx context.Context, t *models.Trek) error

	// DeleteTrek removes a trek and its batches
	DeleteTrek(ctx context.Context, trekID uuid.UUID) error

	// ListCategories returns the distinct trek categories in use
	ListCategories(ctx context.Context) ([]string, error)
}
