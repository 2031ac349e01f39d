package handler

import (
	"errors"
	"net/http"

	"github.com/talmalka/worduel/api/internal/auth"
	"github.com/talmalka/worduel/api/internal/service"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// MatchHandler handles match lifecycle endpoints.
type MatchHandler struct {
	matchSvc *service.MatchService
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(matchSvc *service.MatchService) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc}
}

// CreateMatch handles POST /api/v1/matches
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	var req struct {
		Language    string `json:"language"`
		Difficulty  string `json:"difficulty,omitempty"`
		BotStrategy string `json:"bot_strategy,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	match, err := h.matchSvc.CreateMatch(r.Context(), userID, req.Language, wordle.Difficulty(req.Difficulty), req.BotStrategy)
	if err != nil {
		if errors.Is(err, service.ErrBadLanguage) {
			writeError(w, http.StatusBadRequest, "unsupported language")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, match)
}

// ListMatches handles GET /api/v1/matches
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	matches, err := h.matchSvc.ListMyMatches(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if matches == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// GetMatch handles GET /api/v1/matches/{id}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	match, err := h.matchSvc.GetMatch(r.Context(), matchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "only the creator can view the match")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// StartMatch handles POST /api/v1/matches/{id}/start
func (h *MatchHandler) StartMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	match, err := h.matchSvc.StartMatch(r.Context(), matchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "only the creator can start the match")
		case errors.Is(err, service.ErrMatchNotWaiting):
			writeError(w, http.StatusConflict, "match already started")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// DeleteMatch handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	if err := h.matchSvc.DeleteMatch(r.Context(), matchID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "only the creator can delete the match")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
