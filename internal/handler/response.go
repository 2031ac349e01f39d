package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// writeJSON encodes v as the response body with the given status. Encoding
// failures are logged rather than surfaced; the status line is already gone.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response failed")
	}
}

// writeError writes the API's uniform error envelope: {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes a request body into v, closing the body when done.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
