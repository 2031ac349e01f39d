package handler

import (
	"errors"
	"net/http"

	"github.com/talmalka/worduel/api/internal/auth"
	"github.com/talmalka/worduel/api/internal/service"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// GuessHandler handles guess submission and history endpoints.
type GuessHandler struct {
	guessSvc *service.GuessService
}

// NewGuessHandler creates a GuessHandler.
func NewGuessHandler(guessSvc *service.GuessService) *GuessHandler {
	return &GuessHandler{guessSvc: guessSvc}
}

// SubmitGuess handles POST /api/v1/matches/{id}/guesses
func (h *GuessHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	var req struct {
		Word string `json:"word"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	result, err := h.guessSvc.SubmitGuess(r.Context(), matchID, userID, req.Word)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "not your match")
		case errors.Is(err, service.ErrMatchNotActive):
			writeError(w, http.StatusConflict, "match is not active")
		case errors.Is(err, service.ErrWordNotAllowed):
			writeError(w, http.StatusUnprocessableEntity, "word is not in the allowed list")
		case errors.Is(err, wordle.ErrWrongWidth):
			writeError(w, http.StatusBadRequest, "word has the wrong length")
		case errors.Is(err, wordle.ErrOutOfTurn):
			writeError(w, http.StatusConflict, "no guesses left")
		case errors.Is(err, wordle.ErrMatchFinished):
			writeError(w, http.StatusConflict, "match already finished")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListGuesses handles GET /api/v1/matches/{id}/guesses
func (h *GuessHandler) ListGuesses(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	userID := auth.UserIDFromContext(r.Context())

	records, err := h.guessSvc.History(r.Context(), matchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			writeError(w, http.StatusNotFound, "match not found")
		case errors.Is(err, service.ErrNotCreator):
			writeError(w, http.StatusForbidden, "not your match")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	if records == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, records)
}
