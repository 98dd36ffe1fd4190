package postgres

import (
	"context"
	"database/sql"
	"errors"

	"trekadmin/models"
	"trekadmin/ports"

	apperrors "trekadmin/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BatchRepositoryImpl implements BatchRepository for PostgreSQL
type BatchRepositoryImpl struct {
	db *sqlx.DB
}

// NewBatchRepository creates a new PostgreSQL batch repository
func NewBatchRepository(db *sqlx.DB) ports.BatchRepository {
	return &BatchRepositoryImpl{db: db}
}

// ListBatchesByTrek returns a trek's batches ordered by start date
func (r *BatchRepositoryImpl) ListBatchesByTrek(ctx context.Context, trekID uuid.UUID) ([]*models.Batch, error) {
	var batches []*models.Batch
	err := r.db.SelectContext(ctx, &batches, `
		SELECT id, trek_id, start_date, end_date, available_slots, price,
			min_age, max_age, duration, min_participants, max_participants, status,
			inclusions, exclusions, itinerary, created_at, updated_at
		FROM batches
		WHERE trek_id = $1
		ORDER BY start_date
	`, trekID)
	return batches, err
}

// GetBatchByID retrieves a batch by its ID
func (r *BatchRepositoryImpl) GetBatchByID(ctx context.Context, batchID uuid.UUID) (*models.Batch, error) {
	var batch models.Batch
	err := r.db.GetContext(ctx, &batch, `
		SELECT id, trek_id, start_date, end_date, available_slots, price,
			min_age, max_age, duration, min_participants, max_participants, status,
			inclusions, exclusions, itinerary, created_at, updated_at
		FROM batches
		WHERE id = $1
	`, batchID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("batch")
		}
		return nil, err
	}

	return &batch, nil
}

// SetBatchStatus flips the booking status of a batch
func (r *BatchRepositoryImpl) SetBatchStatus(ctx context.Context, batchID uuid.UUID, status string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE batches SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, batchID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("batch")
	}
	return nil
}
