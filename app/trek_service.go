package app

import (
	"context"
	"encoding/json"
	"time"

	"trekadmin/adapters/excel"
	"trekadmin/domain/trek"
	"trekadmin/internal"
	"trekadmin/internal/errors"
	"trekadmin/models"
	"trekadmin/ports"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// TrekService orchestrates the spreadsheet import pipeline and trek
// persistence.
type TrekService struct {
	treks   ports.TrekRepository
	batches ports.BatchRepository
	logger  *internal.Logger
}

// NewTrekService creates a trek service
func NewTrekService(treks ports.TrekRepository, batches ports.BatchRepository, logger *internal.Logger) *TrekService {
	return &TrekService{treks: treks, batches: batches, logger: logger}
}

// TrekDetail is the stored view of a trek with its batches
type TrekDetail struct {
	models.Trek
	Batches []*models.Batch `json:"batches"`
}

// ImportSpreadsheet runs uploaded spreadsheet bytes through the
// normalization pipeline and returns the aggregated document. Nothing
// is persisted; the admin reviews the preview and submits it as a
// create request.
func (s *TrekService) ImportSpreadsheet(data []byte) (*trek.Document, error) {
	doc, err := excel.ParseTrekUpload(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("spreadsheet import parsed: trek=%q batches=%d", doc.Name, len(doc.Batches))
	return doc, nil
}

// CreateTrek validates an aggregated document and persists it
func (s *TrekService) CreateTrek(ctx context.Context, doc *trek.Document) (*models.Trek, error) {
	if doc.Name == "" {
		return nil, errors.InvalidInput("trek name is required")
	}
	if len(doc.Batches) == 0 {
		return nil, errors.InvalidInput("at least one batch is required")
	}

	t := &models.Trek{
		ID:             uuid.New(),
		Name:           doc.Name,
		Location:       doc.Location,
		Difficulty:     doc.Difficulty,
		Category:       doc.Category,
		FitnessLevel:   doc.FitnessLevel,
		Description:    doc.Description,
		Highlights:     compactList(doc.Highlights),
		ThingsToCarry:  compactList(doc.ThingsToCarry),
		ImportantNotes: compactList(doc.ImportantNotes),
	}

	batches := make([]*models.Batch, 0, len(doc.Batches))
	for _, b := range doc.Batches {
		batch, err := batchFromDocument(b)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	if err := s.treks.CreateTrek(ctx, t, batches); err != nil {
		return nil, errors.Wrap(err, "failed to persist trek")
	}

	s.logger.Info("trek created: id=%s name=%q batches=%d", t.ID, t.Name, len(batches))
	return t, nil
}

// GetTrekDetail returns a trek with its batches
func (s *TrekService) GetTrekDetail(ctx context.Context, trekID uuid.UUID) (*TrekDetail, error) {
	t, err := s.treks.GetTrekByID(ctx, trekID)
	if err != nil {
		return nil, err
	}

	batches, err := s.batches.ListBatchesByTrek(ctx, trekID)
	if err != nil {
		return nil, err
	}

	return &TrekDetail{Trek: *t, Batches: batches}, nil
}

// ListTreks returns summary rows for the admin trek table
func (s *TrekService) ListTreks(ctx context.Context) ([]*models.TrekSummary, error) {
	return s.treks.ListTreks(ctx)
}

// UpdateTrek replaces the trek-level fields of an existing trek
func (s *TrekService) UpdateTrek(ctx context.Context, t *models.Trek) error {
	if t.Name == "" {
		return errors.InvalidInput("trek name is required")
	}
	return s.treks.UpdateTrek(ctx, t)
}

// DeleteTrek removes a trek and its batches
func (s *TrekService) DeleteTrek(ctx context.Context, trekID uuid.UUID) error {
	return s.treks.DeleteTrek(ctx, trekID)
}

// ListCategories returns the distinct trek categories in use
func (s *TrekService) ListCategories(ctx context.Context) ([]string, error) {
	return s.treks.ListCategories(ctx)
}

// batchFromDocument converts one aggregated batch into its stored
// form. The pipeline never rejects rows, so date validation happens
// here: a batch that reaches persistence must carry real dates.
func batchFromDocument(b trek.Batch) (*models.Batch, error) {
	startDate, err := time.Parse(dateLayout, b.StartDate)
	if err != nil {
		return nil, errors.InvalidInput("invalid batch start date: " + b.StartDate)
	}
	endDate, err := time.Parse(dateLayout, b.EndDate)
	if err != nil {
		return nil, errors.InvalidInput("invalid batch end date: " + b.EndDate)
	}

	status := b.BatchStatus
	if status == "" {
		status = models.BatchStatusActive
	}

	itinerary, err := json.Marshal(b.ItineraryDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode itinerary")
	}

	return &models.Batch{
		ID:              uuid.New(),
		StartDate:       startDate,
		EndDate:         endDate,
		AvailableSlots:  b.AvailableSlots,
		Price:           b.Price,
		MinAge:          b.MinAge,
		MaxAge:          b.MaxAge,
		Duration:        b.Duration,
		MinParticipants: b.MinParticipants,
		MaxParticipants: b.MaxParticipants,
		Status:          status,
		Inclusions:      compactList(b.Inclusions),
		Exclusions:      compactList(b.Exclusions),
		Itinerary:       itinerary,
	}, nil
}

// compactList drops the pipeline's single-empty-string sentinel and
// any other blank entries before storage.
func compactList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
