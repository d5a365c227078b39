package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/goal-pulse/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.service.Create(r.Context(), dto)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, goal)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, goal)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.service.UpdateFields(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, goal)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Goal deleted successfully",
		"goal_id": id,
	})
}

func (h *Handler) ListProgress(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, dashboard)
}

// WriteError maps service errors to HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		config.Error(w, http.StatusNotFound, "Goal not found")
	case errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "invalid goal id")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrTitleRequired):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
