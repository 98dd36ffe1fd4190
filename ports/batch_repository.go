package ports

import (
	"context"

	"trekadmin/models"

	"github.com/google/uuid"
)

// BatchRepository defines the interface for batch data operations
type BatchRepository interface {
	// ListBatchesByTrek returns a trek's batches ordered by start date
	ListBatchesByTrek(ctx context.Context, trekID uuid.UUID) ([]*models.Batch, error)

	// GetBatchByID retrieves a batch by its ID
	GetBatchByID(ctx context.Context, batchID uuid.UUID) (*models.Batch, error)

	// SetBatchStatus flips the booking status of a batch
	SetBatchStatus(ctx context.Context, batchID uuid.UUID, status string) error
}
