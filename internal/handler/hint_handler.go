package handler

import (
	"errors"
	"net/http"

	"github.com/talmalka/worduel/api/internal/auth"
	"github.com/talmalka/worduel/api/internal/service"
)

// HintHandler handles composite hint endpoints.
type HintHandler struct {
	hintSvc *service.HintService
}

// NewHintHandler creates a HintHandler.
func NewHintHandler(hintSvc *service.HintService) *HintHandler {
	return &HintHandler{hintSvc: hintSvc}
}

// GetHint handles GET /api/v1/matches/{id}/hint?mode=dense|sparse
func (h *HintHandler) GetHint(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	var payload any
	var err error
	switch r.URL.Query().Get("mode") {
	case "", service.HintDense:
		payload, err = h.hintSvc.Dense(r.Context(), matchID, userID)
	case service.HintSparse:
		payload, err = h.hintSvc.Sparse(r.Context(), matchID, userID)
	default:
		writeError(w, http.StatusBadRequest, "mode must be dense or sparse")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "not your match")
		case errors.Is(err, service.ErrMatchNotActive):
			writeError(w, http.StatusConflict, "match is not active")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
