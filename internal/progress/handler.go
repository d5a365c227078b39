package progress

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
)

type UpdateRequest struct {
	Text string `json:"text"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.HandleUpdate(r.Context(), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		goal.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
