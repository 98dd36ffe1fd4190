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

// TrekRepositoryImpl implements TrekRepository for PostgreSQL
type TrekRepositoryImpl struct {
	db *sqlx.DB
}

// NewTrekRepository creates a new PostgreSQL trek repository
func NewTrekRepository(db *sqlx.DB) ports.TrekRepository {
	return &TrekRepositoryImpl{db: db}
}

// CreateTrek persists a trek together with its batches in one transaction
func (r *TrekRepositoryImpl) CreateTrek(ctx context.Context, t *models.Trek, batches []*models.Batch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO treks (id, name, location, difficulty, category, fitness_level,
			description, highlights, things_to_carry, important_notes, created_at, updated_at)
		VALUES (:id, :name, :location, :difficulty, :category, :fitness_level,
			:description, :highlights, :things_to_carry, :important_notes, NOW(), NOW())
	`, t)
	if err != nil {
		return err
	}

	for _, batch := range batches {
		if batch.ID == uuid.Nil {
			batch.ID = uuid.New()
		}
		batch.TrekID = t.ID

		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO batches (id, trek_id, start_date, end_date, available_slots, price,
				min_age, max_age, duration, min_participants, max_participants, status,
				inclusions, exclusions, itinerary, created_at, updated_at)
			VALUES (:id, :trek_id, :start_date, :end_date, :available_slots, :price,
				:min_age, :max_age, :duration, :min_participants, :max_participants, :status,
				:inclusions, :exclusions, :itinerary, NOW(), NOW())
		`, batch)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetTrekByID retrieves a trek by its ID
func (r *TrekRepositoryImpl) GetTrekByID(ctx context.Context, trekID uuid.UUID) (*models.Trek, error) {
	var t models.Trek
	err := r.db.GetContext(ctx, &t, `
		SELECT id, name, location, difficulty, category, fitness_level,
			description, highlights, things_to_carry, important_notes, created_at, updated_at
		FROM treks
		WHERE id = $1
	`, trekID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trek")
		}
		return nil, err
	}

	return &t, nil
}

// ListTreks returns summary rows for the admin trek table
func (r *TrekRepositoryImpl) ListTreks(ctx context.Context) ([]*models.TrekSummary, error) {
	var treks []*models.TrekSummary
	err := r.db.SelectContext(ctx, &treks, `
		SELECT t.id, t.name, t.location, t.difficulty, t.category,
			COUNT(b.id) AS batch_count, t.created_at
		FROM treks t
		LEFT JOIN batches b ON b.trek_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`)
	return treks, err
}

// UpdateTrek replaces the trek-level fields of an existing trek
func (r *TrekRepositoryImpl) UpdateTrek(ctx context.Context, t *models.Trek) error {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE treks
		SET name = :name, location = :location, difficulty = :difficulty,
			category = :category, fitness_level = :fitness_level, description = :description,
			highlights = :highlights, things_to_carry = :things_to_carry,
			important_notes = :important_notes, updated_at = NOW()
		WHERE id = :id
	`, t)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("trek")
	}
	return nil
}

// DeleteTrek removes a trek and its batches
func (r *TrekRepositoryImpl) DeleteTrek(ctx context.Context, trekID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM treks WHERE id = $1`, trekID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("trek")
	}
	return nil
}

// ListCategories returns the distinct trek categories in use
func (r *TrekRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories, `
		SELECT DISTINCT category FROM treks
		WHERE category <> ''
		ORDER BY category
	`)
	return categories, err
}
