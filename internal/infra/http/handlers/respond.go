package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the usecase error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var pool *usecase.InsufficientPoolError
	if errors.As(err, &pool) {
		writeJSON(w, http.StatusConflict, struct {
			Success   bool   `json:"success"`
			Message   string `json:"message"`
			Available int    `json:"available"`
		}{false, err.Error(), pool.Available})
		return
	}

	var domain *usecase.DomainError
	if errors.As(err, &domain) {
		status := http.StatusBadRequest
		switch domain.Code {
		case "OPERATOR_NOT_FOUND", "USER_NOT_FOUND":
			status = http.StatusNotFound
		case "INVALID_CREDENTIALS":
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, errorResponse{Success: false, Message: domain.Message, Code: domain.Code})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Message: err.Error()})
}
