package ui

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"trekadmin/adapters/excel"
	"trekadmin/domain/trek"
	"trekadmin/internal/errors"
	"trekadmin/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleListTreks(w http.ResponseWriter, r *http.Request) {
	treks, err := s.treks.ListTreks(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"treks": treks,
		"count": len(treks),
	})
}

func (s *Server) handleGetTrek(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	detail, err := s.treks.GetTrekDetail(r.Context(), trekID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCreateTrek(w http.ResponseWriter, r *http.Request) {
	var doc trek.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondError(w, errors.InvalidInput("invalid trek payload"))
		return
	}

	created, err := s.treks.CreateTrek(r.Context(), &doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTrek(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var t models.Trek
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respondError(w, errors.InvalidInput("invalid trek payload"))
		return
	}
	t.ID = trekID

	if err := s.treks.UpdateTrek(r.Context(), &t); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &t)
}

func (s *Server) handleDeleteTrek(w http.ResponseWriter, r *http.Request) {
	trekID, err := parseIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := s.treks.DeleteTrek(r.Context(), trekID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.treks.ListCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// handleImportTrek runs an uploaded spreadsheet through the
// normalization pipeline and returns the aggregated document as a
// preview. Nothing is persisted here.
func (s *Server) handleImportTrek(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, errors.InvalidInput("missing spreadsheet upload field \"file\""))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, errors.FileReadError(err))
		return
	}

	s.logger.Info("spreadsheet upload received: name=%q size=%d", header.Filename, len(data))

	doc, err := s.treks.ImportSpreadsheet(data)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// handleTrekTemplate serves the editable example spreadsheets
func (s *Server) handleTrekTemplate(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = excel.TemplateMulti
	}

	data, err := excel.GenerateTemplate(kind)
	if err != nil {
		respondError(w, err)
		return
	}

	filename := "Trek_Multi_Batch_Template.xlsx"
	if kind == excel.TemplateSingle {
		filename = "Trek_Single_Batch_Template.xlsx"
	}
	respondAttachment(w, filename, xlsxContentType, data)
}

// parseIDParam reads the {id} route parameter as a UUID
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.InvalidInput("invalid id")
	}
	return id, nil
}
