package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

// AdminHandler carries the administrative surface: remote store
// configuration, full backup export and the static branch list.
type AdminHandler struct {
	gateway *gateway.Gateway
	backup  *usecase.BackupUseCase
	log     *zap.Logger
}

func NewAdminHandler(gw *gateway.Gateway, backup *usecase.BackupUseCase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{gateway: gw, backup: backup, log: log}
}

type updateConfigRequest struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// HandleUpdateConfig serves PUT /config/database. The new credentials are
// persisted and the remote client is rebuilt in place; no restart needed.
func (h *AdminHandler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	if req.URL == "" || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "url and key are required"})
		return
	}

	if err := h.gateway.UpdateConfig(r.Context(), req.URL, req.Key); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success   bool `json:"success"`
		Connected bool `json:"connected"`
	}{true, h.gateway.Connected()})
}

// HandleBackup serves GET /backup: a point-in-time JSON snapshot of all
// three collections, offered as a download.
func (h *AdminHandler) HandleBackup(w http.ResponseWriter, r *http.Request) {
	out, err := h.backup.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("NazoratHub_Baza_%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// HandleBranches serves GET /branches.
func (h *AdminHandler) HandleBranches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.DefaultBranches())
}
