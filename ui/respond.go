package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"trekadmin/internal/errors"
)

// respondJSON writes a JSON response body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[respondJSON] failed to encode response: %v", err)
	}
}

// respondError maps application error codes onto HTTP statuses
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput, errors.CodeParseError, errors.CodeEmptyInput:
		status = http.StatusBadRequest
	case errors.CodeFileReadError:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		log.Printf("[API] internal error: %v", err)
	}

	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

// respondAttachment writes bytes as a downloadable file
func respondAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[respondAttachment] failed to write %s: %v", filename, err)
	}
}
