package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

type UserHandler struct {
	users usecase.UserRepositoryInterface
	log   *zap.Logger
}

func NewUserHandler(users usecase.UserRepositoryInterface, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var u entity.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if validationErrors := usecase.ValidateNewUser(u); len(validationErrors) > 0 {
		msg := "validation failed: "
		for _, e := range validationErrors {
			msg += e.Field + " (" + e.Message + "), "
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: msg})
		return
	}

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := h.users.Save(r.Context(), u); err != nil {
		writeError(w, err)
		return
	}
	h.log.Info("user created", zap.String("id", u.ID), zap.String("role", string(u.Role)))
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var u entity.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	u.ID = userID

	if _, err := h.users.FindByID(r.Context(), userID); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Success: false, Message: "user not found"})
		return
	}

	if err := h.users.Save(r.Context(), u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.users.Delete(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	h.log.Info("user deleted", zap.String("id", userID))
	writeJSON(w, http.StatusOK, errorResponse{Success: true})
}
