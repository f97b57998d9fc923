package api

import (
	"encoding/json"
	stderrors "errors"
	"log"
	"net/http"

	"beautybooking/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding response: %v", err)
		}
	}
}

// writeError maps service errors to HTTP responses. Anything that is not an
// HTTPError is logged and reported as a plain 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
