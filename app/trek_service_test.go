package app

import (
	"context"
	"testing"

	"trekadmin/domain/trek"
	"trekadmin/internal"
	apperrors "trekadmin/internal/errors"
	"trekadmin/models"

	"github.com/google/uuid"
)

// stubTrekRepo captures what CreateTrek persists.
type stubTrekRepo struct {
	created        *models.Trek
	createdBatches []*models.Batch
}

func (s *stubTrekRepo) CreateTrek(ctx context.Context, t *models.Trek, batches []*models.Batch) error {
	s.created = t
	s.createdBatches = batches
	return nil
}

func (s *stubTrekRepo) GetTrekByID(ctx context.Context, trekID uuid.UUID) (*models.Trek, error) {
	return nil, apperrors.NotFound("trek")
}

func (s *stubTrekRepo) ListTreks(ctx context.Context) ([]*models.TrekSummary, error) {
	return nil, nil
}

func (s *stubTrekRepo) UpdateTrek(ctx context.Context, t *models.Trek) error { return nil }

func (s *stubTrekRepo) DeleteTrek(ctx context.Context, trekID uuid.UUID) error { return nil }

func (s *stubTrekRepo) ListCategories(ctx context.Context) ([]string, error) { return nil, nil }

type stubBatchRepo struct{}

func (s *stubBatchRepo) ListBatchesByTrek(ctx context.Context, trekID uuid.UUID) ([]*models.Batch, error) {
	return nil, nil
}

func (s *stubBatchRepo) GetBatchByID(ctx context.Context, batchID uuid.UUID) (*models.Batch, error) {
	return nil, apperrors.NotFound("batch")
}

func (s *stubBatchRepo) SetBatchStatus(ctx context.Context, batchID uuid.UUID, status string) error {
	return nil
}

func newTestService() (*TrekService, *stubTrekRepo) {
	repo := &stubTrekRepo{}
	return NewTrekService(repo, &stubBatchRepo{}, internal.NewDefaultLogger()), repo
}

func validDocument() *trek.Document {
	return &trek.Document{
		Name:     "Kudremukh Trek",
		Location: "Karnataka",
		Batches: []trek.Batch{
			{
				StartDate:      "2026-02-13",
				EndDate:        "2026-02-15",
				AvailableSlots: 25,
				Price:          3500,
			},
		},
	}
}

func TestCreateTrek_RequiresNameAndBatches(t *testing.T) {
	// Scenario: documents missing a trek name or carrying no batches
	// are rejected before anything touches the database.
	svc, repo := newTestService()

	doc := validDocument()
	doc.Name = ""
	if _, err := svc.CreateTrek(context.Background(), doc); apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for missing name, got %v", err)
	}

	doc = validDocument()
	doc.Batches = nil
	if _, err := svc.CreateTrek(context.Background(), doc); apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for missing batches, got %v", err)
	}

	if repo.created != nil {
		t.Error("rejected document must not be persisted")
	}
}

func TestCreateTrek_RejectsUnparsedDates(t *testing.T) {
	// Scenario: the pipeline passes unrecognized date strings through
	// unchanged, so a batch can arrive here with "not-a-date". That
	// must fail validation instead of storing a zero date.
	svc, repo := newTestService()

	doc := validDocument()
	doc.Batches[0].StartDate = "not-a-date"

	_, err := svc.CreateTrek(context.Background(), doc)
	if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if repo.created != nil {
		t.Error("batch with an invalid date must not be persisted")
	}
}

func TestCreateTrek_CompactsSentinelLists(t *testing.T) {
	// Scenario: blank delimited cells reach the service as the
	// single-empty-string sentinel. Storage gets an empty array, not
	// an array holding "".
	svc, repo := newTestService()

	doc := validDocument()
	doc.Highlights = []string{""}
	doc.Batches[0].Inclusions = []string{"Meals", "", "Guide"}

	if _, err := svc.CreateTrek(context.Background(), doc); err != nil {
		t.Fatalf("CreateTrek failed: %v", err)
	}

	if len(repo.created.Highlights) != 0 {
		t.Errorf("expected empty highlights, got %v", repo.created.Highlights)
	}
	inclusions := repo.createdBatches[0].Inclusions
	if len(inclusions) != 2 || inclusions[0] != "Meals" || inclusions[1] != "Guide" {
		t.Errorf("expected blanks dropped from inclusions, got %v", inclusions)
	}
}

func TestCreateTrek_DefaultsBatchStatus(t *testing.T) {
	// Scenario: a batch with no status is stored as active.
	svc, repo := newTestService()

	if _, err := svc.CreateTrek(context.Background(), validDocument()); err != nil {
		t.Fatalf("CreateTrek failed: %v", err)
	}

	if got := repo.createdBatches[0].Status; got != models.BatchStatusActive {
		t.Errorf("expected status %q, got %q", models.BatchStatusActive, got)
	}
}

func TestUpdateTrek_RequiresName(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateTrek(context.Background(), &models.Trek{ID: uuid.New()})
	if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
